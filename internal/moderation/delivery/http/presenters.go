package http

import (
	"iffy-moderation/internal/moderation"
	"iffy-moderation/pkg/response"
)

// --- Request DTOs ---

// contentReq accepts both {"type":"image_url","url":...} and the Iffy wire
// shape {"type":"image_url","image_url":{"url":...}}.
type contentReq struct {
	Type     string       `json:"type" binding:"required,oneof=text image_url"`
	Text     string       `json:"text"`
	URL      string       `json:"url"`
	ImageURL *imageURLReq `json:"image_url"`
}

type imageURLReq struct {
	URL string `json:"url"`
}

type moderateReq struct {
	Content []contentReq `json:"content" binding:"required,min=1,dive"`
}

func (r moderateReq) validate() error { return nil }

func (r moderateReq) toInput() moderation.ModerateInput {
	items := make([]moderation.ContentInput, len(r.Content))
	for i, c := range r.Content {
		url := c.URL
		if url == "" && c.ImageURL != nil {
			url = c.ImageURL.URL
		}
		items[i] = moderation.ContentInput{Type: c.Type, Text: c.Text, URL: url}
	}
	return moderation.ModerateInput{Content: items}
}

// ---

type listReq struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() moderation.ListInput {
	return moderation.ListInput{
		Status: moderation.Status(r.Status),
		Limit:  r.Limit,
	}
}

// --- Response DTOs ---

type contentResp struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
}

type recordResp struct {
	ID         string            `json:"id"`
	Status     string            `json:"status"`
	Iffy       bool              `json:"iffy"`
	Reasoning  string            `json:"reasoning,omitempty"`
	Error      string            `json:"error,omitempty"`
	StatusCode int               `json:"upstream_status,omitempty"`
	Content    []contentResp     `json:"content"`
	LatencyMs  int64             `json:"latency_ms"`
	CreatedAt  response.DateTime `json:"created_at"`
}

func newRecordResp(rec moderation.Record) recordResp {
	content := make([]contentResp, len(rec.Content))
	for i, c := range rec.Content {
		content[i] = contentResp{Type: c.Type, Text: c.Text, URL: c.URL}
	}
	return recordResp{
		ID:         rec.ID,
		Status:     string(rec.Status),
		Iffy:       rec.Flagged,
		Reasoning:  rec.Reasoning,
		Error:      rec.ErrorMessage,
		StatusCode: rec.StatusCode,
		Content:    content,
		LatencyMs:  rec.Latency.Milliseconds(),
		CreatedAt:  response.DateTime(rec.CreatedAt),
	}
}

type moderateResp struct {
	Record recordResp `json:"record"`
}

func (h *handler) newModerateResp(out moderation.ModerateOutput) moderateResp {
	return moderateResp{Record: newRecordResp(out.Record)}
}

type listResp struct {
	Records []recordResp `json:"records"`
	Total   int          `json:"total"`
	Limit   int          `json:"limit"`
}

func (h *handler) newListResp(out moderation.ListOutput) listResp {
	records := make([]recordResp, len(out.Records))
	for i, rec := range out.Records {
		records[i] = newRecordResp(rec)
	}
	return listResp{Records: records, Total: out.Total, Limit: out.Limit}
}

type detailResp struct {
	Record recordResp `json:"record"`
}

func (h *handler) newDetailResp(out moderation.DetailOutput) detailResp {
	return detailResp{Record: newRecordResp(out.Record)}
}
