package iffy

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentType tags a content item.
type ContentType string

// Content is one unit of material submitted for moderation: inline text or an
// image referenced by URL.
type Content struct {
	Type     ContentType `json:"type"`
	Text     string      `json:"text,omitempty"`
	ImageURL *ImageRef   `json:"image_url,omitempty"`
}

// ImageRef wraps the URL of an image content item.
type ImageRef struct {
	URL string `json:"url"`
}

// Text returns a text content item.
func Text(text string) Content {
	return Content{Type: TypeText, Text: text}
}

// ImageURL returns an image_url content item.
func ImageURL(url string) Content {
	return Content{Type: TypeImageURL, ImageURL: &ImageRef{URL: url}}
}

// MarshalJSON emits exactly one of the two wire shapes.
func (c Content) MarshalJSON() ([]byte, error) {
	switch c.Type {
	case TypeText:
		return json.Marshal(struct {
			Type ContentType `json:"type"`
			Text string      `json:"text"`
		}{c.Type, c.Text})
	case TypeImageURL:
		if c.ImageURL == nil {
			return nil, fmt.Errorf("%w: image_url item without url", ErrInvalidContent)
		}
		return json.Marshal(struct {
			Type     ContentType `json:"type"`
			ImageURL ImageRef    `json:"image_url"`
		}{c.Type, *c.ImageURL})
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidContent, c.Type)
	}
}

// Header is a single HTTP header pair.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered list of header pairs.
type Headers []Header

// apply sets every pair on h in order.
func (hs Headers) apply(h http.Header) {
	for _, p := range hs {
		h.Set(p.Name, p.Value)
	}
}

// Result is the outcome of a moderation call. It is one of *Verdict,
// *ServerError or *TransportError.
type Result interface {
	isResult()
}

// Verdict is the service's judgment on the submitted content.
type Verdict struct {
	Iffy      bool   `json:"iffy"`
	Reasoning string `json:"reasoning"`
}

// Flagged reports whether the content was judged to violate policy.
func (v *Verdict) Flagged() bool {
	return v.Iffy
}

func (*Verdict) isResult() {}

// ResultError returns nil for a Verdict and the error value for the other
// variants.
func ResultError(r Result) error {
	switch v := r.(type) {
	case *Verdict:
		return nil
	case *ServerError:
		return v
	case *TransportError:
		return v
	default:
		return &TransportError{Op: OpDecode, Err: ErrUnexpectedResponse}
	}
}

type moderateRequest struct {
	Content []Content `json:"content"`
}

// moderateResponse covers both the verdict and the in-band error shape.
// Pointers distinguish absent fields from zero values.
type moderateResponse struct {
	Iffy      *bool   `json:"iffy"`
	Reasoning *string `json:"reasoning"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}
