package iffy

const (
	// DefaultBaseURL is the Iffy API root.
	DefaultBaseURL = "https://www.iffy.com/api"

	// ModeratePath is appended to the base URL for moderation requests.
	ModeratePath = "/moderate"

	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 1 << 20
)

// Content item types accepted by the moderation endpoint.
const (
	TypeText     ContentType = "text"
	TypeImageURL ContentType = "image_url"
)

const (
	headerAccept        = "Accept"
	headerContentType   = "Content-Type"
	headerAuthorization = "Authorization"

	mimeJSON     = "application/json"
	bearerPrefix = "Bearer "
)

// Transport error operations.
const (
	OpEncode  = "encode"
	OpRequest = "request"
	OpDo      = "do"
	OpDecode  = "decode"
)
