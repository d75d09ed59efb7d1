package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iffy-moderation/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.FixedZone("ICT", 7*3600))

	b, err := json.Marshal(response.DateTime(tm))
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-01 08:30:00"`, string(b))
}

func TestDateTimeUnmarshalJSON(t *testing.T) {
	var d response.DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-01 08:30:00"`), &d))
	assert.Equal(t, time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC), time.Time(d))

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
}
