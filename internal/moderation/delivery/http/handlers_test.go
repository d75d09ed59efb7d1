package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iffy-moderation/internal/middleware"
	"iffy-moderation/internal/moderation/repository/memory"
	"iffy-moderation/internal/moderation/usecase"
	"iffy-moderation/pkg/iffy"
	"iffy-moderation/pkg/log"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type recordEnvelope struct {
	Record recordResp `json:"record"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Content []iffy.Content `json:"content"`
		}
		json.NewDecoder(r.Body).Decode(&req)

		switch {
		case req.Content[0].Text == "upstream_down":
			w.WriteHeader(http.StatusServiceUnavailable)
		case req.Content[0].Type == iffy.TypeImageURL:
			w.Write([]byte(`{"iffy": false, "reasoning": "image of ` + req.Content[0].ImageURL.URL + `"}`))
		case strings.Contains(req.Content[0].Text, "kill"):
			w.Write([]byte(`{"iffy": true, "reasoning": "violence"}`))
		default:
			w.Write([]byte(`{"iffy": false, "reasoning": "benign"}`))
		}
	}))
	t.Cleanup(upstream.Close)

	client, err := iffy.New(iffy.Config{APIKey: "k", BaseURL: upstream.URL})
	require.NoError(t, err)

	l := log.NewNop()
	uc := usecase.New(memory.New(100, 0, l), client, l)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, "token"))
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestModerationRoutes(t *testing.T) {
	r := newTestRouter(t)

	t.Run("Moderate Flagged", func(t *testing.T) {
		w, env := do(r, http.MethodPost, "/api/v1/moderations", `{"content":[{"type":"text","text":"I will kill"}]}`)
		require.Equal(t, http.StatusOK, w.Code)

		var data recordEnvelope
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "flagged", data.Record.Status)
		assert.True(t, data.Record.Iffy)
		assert.Equal(t, "violence", data.Record.Reasoning)

		w, env = do(r, http.MethodGet, "/api/v1/moderations/"+data.Record.ID, "")
		require.Equal(t, http.StatusOK, w.Code)
		var detail recordEnvelope
		require.NoError(t, json.Unmarshal(env.Data, &detail))
		assert.Equal(t, data.Record.ID, detail.Record.ID)
	})

	t.Run("Moderate Image Wire Shape", func(t *testing.T) {
		w, env := do(r, http.MethodPost, "/api/v1/moderations",
			`{"content":[{"type":"image_url","image_url":{"url":"https://x/y.png"}}]}`)
		require.Equal(t, http.StatusOK, w.Code)

		var data recordEnvelope
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "clean", data.Record.Status)
		assert.Equal(t, "image of https://x/y.png", data.Record.Reasoning)
		assert.Equal(t, "https://x/y.png", data.Record.Content[0].URL)
	})

	t.Run("Upstream Failure", func(t *testing.T) {
		w, env := do(r, http.MethodPost, "/api/v1/moderations", `{"content":[{"type":"text","text":"upstream_down"}]}`)
		require.Equal(t, http.StatusBadGateway, w.Code)

		var data recordEnvelope
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "server_error", data.Record.Status)
		assert.Equal(t, http.StatusServiceUnavailable, data.Record.StatusCode)
	})

	t.Run("Bad Requests", func(t *testing.T) {
		bodies := []string{
			`{}`,
			`{"content":[]}`,
			`{"content":[{"type":"video"}]}`,
			`{"content":[{"type":"image_url","url":"not a url"}]}`,
			`not json`,
		}
		for _, body := range bodies {
			w, _ := do(r, http.MethodPost, "/api/v1/moderations", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
	})

	t.Run("List", func(t *testing.T) {
		w, env := do(r, http.MethodGet, "/api/v1/moderations?status=flagged", "")
		require.Equal(t, http.StatusOK, w.Code)

		var data listResp
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, 1, data.Total)
		require.Len(t, data.Records, 1)
		assert.Equal(t, "flagged", data.Records[0].Status)

		w, _ = do(r, http.MethodGet, "/api/v1/moderations?status=bogus", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		w, _ := do(r, http.MethodGet, "/api/v1/moderations/does-not-exist", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/moderations", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
