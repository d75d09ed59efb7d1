package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iffy-moderation/internal/moderation"
	"iffy-moderation/pkg/iffy"
)

func TestModerate(t *testing.T) {
	ctx := context.Background()
	textItem := []moderation.ContentInput{{Type: moderation.ContentTypeText, Text: "hello"}}

	t.Run("Flagged", func(t *testing.T) {
		uc, fake := newTestUseCase(&iffy.Verdict{Iffy: true, Reasoning: "violence"})

		out, err := uc.Moderate(ctx, moderation.ModerateInput{Content: []moderation.ContentInput{
			{Type: moderation.ContentTypeText, Text: "hello"},
			{Type: moderation.ContentTypeImageURL, URL: "https://cdn.example.com/a.png"},
		}})
		require.NoError(t, err)
		assert.Equal(t, moderation.StatusFlagged, out.Record.Status)
		assert.True(t, out.Record.Flagged)
		assert.Equal(t, "violence", out.Record.Reasoning)
		assert.NotEmpty(t, out.Record.ID)

		require.Len(t, fake.calls, 1)
		assert.Equal(t, []iffy.Content{iffy.Text("hello"), iffy.ImageURL("https://cdn.example.com/a.png")}, fake.calls[0])

		got, err := uc.Detail(ctx, out.Record.ID)
		require.NoError(t, err)
		assert.Equal(t, out.Record, got.Record)
	})

	t.Run("Clean", func(t *testing.T) {
		uc, _ := newTestUseCase(&iffy.Verdict{Iffy: false, Reasoning: "benign"})

		out, err := uc.Moderate(ctx, moderation.ModerateInput{Content: textItem})
		require.NoError(t, err)
		assert.Equal(t, moderation.StatusClean, out.Record.Status)
		assert.False(t, out.Record.Flagged)
	})

	t.Run("Server Error Is Recorded", func(t *testing.T) {
		uc, _ := newTestUseCase(&iffy.ServerError{StatusCode: http.StatusUnauthorized, Message: "Invalid API key"})

		out, err := uc.Moderate(ctx, moderation.ModerateInput{Content: textItem})
		require.ErrorIs(t, err, moderation.ErrUpstreamRejected)
		assert.Equal(t, moderation.StatusServerError, out.Record.Status)
		assert.Equal(t, http.StatusUnauthorized, out.Record.StatusCode)
		assert.Equal(t, "Invalid API key", out.Record.ErrorMessage)

		_, err = uc.Detail(ctx, out.Record.ID)
		assert.NoError(t, err)
	})

	t.Run("Transport Error Is Recorded", func(t *testing.T) {
		uc, _ := newTestUseCase(&iffy.TransportError{Op: iffy.OpDo, Err: errors.New("dial tcp: refused")})

		out, err := uc.Moderate(ctx, moderation.ModerateInput{Content: textItem})
		require.ErrorIs(t, err, moderation.ErrUpstreamUnavailable)
		assert.Equal(t, moderation.StatusTransportError, out.Record.Status)
		assert.Contains(t, out.Record.ErrorMessage, "refused")
	})

	t.Run("Invalid Content Skips Upstream", func(t *testing.T) {
		cases := map[string][]moderation.ContentInput{
			"empty":        nil,
			"blank text":   {{Type: moderation.ContentTypeText, Text: "  "}},
			"relative url": {{Type: moderation.ContentTypeImageURL, URL: "/a.png"}},
			"ftp url":      {{Type: moderation.ContentTypeImageURL, URL: "ftp://x/a.png"}},
			"unknown type": {{Type: "video", URL: "https://x/a.mp4"}},
		}
		for name, content := range cases {
			t.Run(name, func(t *testing.T) {
				uc, fake := newTestUseCase(&iffy.Verdict{})

				_, err := uc.Moderate(ctx, moderation.ModerateInput{Content: content})
				assert.ErrorIs(t, err, moderation.ErrInvalidContent)
				assert.Empty(t, fake.calls)
			})
		}
	})
}

func TestDetailAndList(t *testing.T) {
	ctx := context.Background()
	uc, fake := newTestUseCase(&iffy.Verdict{Iffy: true, Reasoning: "spam"})
	item := []moderation.ContentInput{{Type: moderation.ContentTypeText, Text: "buy now"}}

	for i := 0; i < 3; i++ {
		_, err := uc.Moderate(ctx, moderation.ModerateInput{Content: item})
		require.NoError(t, err)
	}
	fake.result = &iffy.Verdict{Iffy: false, Reasoning: "fine"}
	_, err := uc.Moderate(ctx, moderation.ModerateInput{Content: item})
	require.NoError(t, err)

	t.Run("Not Found", func(t *testing.T) {
		_, err := uc.Detail(ctx, "nope")
		assert.ErrorIs(t, err, moderation.ErrRecordNotFound)
	})

	t.Run("Default Limit", func(t *testing.T) {
		out, err := uc.List(ctx, moderation.ListInput{})
		require.NoError(t, err)
		assert.Equal(t, 4, out.Total)
		assert.Equal(t, defaultListLimit, out.Limit)
		assert.Len(t, out.Records, 4)
	})

	t.Run("Filter", func(t *testing.T) {
		out, err := uc.List(ctx, moderation.ListInput{Status: moderation.StatusFlagged, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, out.Total)
		assert.Len(t, out.Records, 2)
		for _, r := range out.Records {
			assert.Equal(t, moderation.StatusFlagged, r.Status)
		}
	})

	t.Run("Limit Capped", func(t *testing.T) {
		out, err := uc.List(ctx, moderation.ListInput{Limit: 1000})
		require.NoError(t, err)
		assert.Equal(t, maxListLimit, out.Limit)
	})

	t.Run("Invalid Status", func(t *testing.T) {
		_, err := uc.List(ctx, moderation.ListInput{Status: "pending"})
		assert.ErrorIs(t, err, moderation.ErrInvalidStatus)
	})
}
