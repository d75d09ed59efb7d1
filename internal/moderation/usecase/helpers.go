package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"iffy-moderation/internal/moderation"
	"iffy-moderation/pkg/iffy"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// toIffyContent validates the items and converts them to the wire type.
func toIffyContent(items []moderation.ContentInput) ([]iffy.Content, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one content item is required", moderation.ErrInvalidContent)
	}

	out := make([]iffy.Content, 0, len(items))
	for i, item := range items {
		switch item.Type {
		case moderation.ContentTypeText:
			if strings.TrimSpace(item.Text) == "" {
				return nil, fmt.Errorf("%w: item %d: text is required", moderation.ErrInvalidContent, i)
			}
			out = append(out, iffy.Text(item.Text))
		case moderation.ContentTypeImageURL:
			if !isHTTPURL(item.URL) {
				return nil, fmt.Errorf("%w: item %d: url must be an absolute http(s) URL", moderation.ErrInvalidContent, i)
			}
			out = append(out, iffy.ImageURL(item.URL))
		default:
			return nil, fmt.Errorf("%w: item %d: unknown type %q", moderation.ErrInvalidContent, i, item.Type)
		}
	}
	return out, nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// outcome is the Record-shaped view of an iffy.Result.
type outcome struct {
	status     moderation.Status
	flagged    bool
	reasoning  string
	errMessage string
	statusCode int
	err        error
}

func classify(res iffy.Result) outcome {
	switch r := res.(type) {
	case *iffy.Verdict:
		status := moderation.StatusClean
		if r.Flagged() {
			status = moderation.StatusFlagged
		}
		return outcome{status: status, flagged: r.Flagged(), reasoning: r.Reasoning}
	case *iffy.ServerError:
		return outcome{
			status:     moderation.StatusServerError,
			errMessage: r.Message,
			statusCode: r.StatusCode,
			err:        fmt.Errorf("%w: %v", moderation.ErrUpstreamRejected, r),
		}
	default:
		err := iffy.ResultError(res)
		return outcome{
			status:     moderation.StatusTransportError,
			errMessage: err.Error(),
			err:        fmt.Errorf("%w: %v", moderation.ErrUpstreamUnavailable, err),
		}
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
