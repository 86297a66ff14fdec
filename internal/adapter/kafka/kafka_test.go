package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bren-perry/iw-generator/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	issuedAt := time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)
	n := domain.Notification{
		ID:            "notif-1",
		Mode:          domain.ModeStorm,
		Province:      "ON",
		Severity:      3,
		SeverityLabel: "Critical",
		Headline:      "CRITICAL: LARGE HAIL REPORTED",
		Description:   "Critical: High impact threat. Shelter now.",
		IssuedAt:      issuedAt,
	}

	msg, err := serializeToMessage(n)
	require.NoError(t, err)

	assert.Equal(t, []byte("notif-1"), msg.Key)
	assert.Contains(t, string(msg.Value), `"headline":"CRITICAL: LARGE HAIL REPORTED"`)
	assert.Contains(t, string(msg.Value), `"severity":3`)

	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "mode", msg.Headers[0].Key)
	assert.Equal(t, []byte("storm"), msg.Headers[0].Value)
	assert.Equal(t, "severity", msg.Headers[1].Key)
	assert.Equal(t, []byte("3"), msg.Headers[1].Value)
	assert.Equal(t, "issued_at", msg.Headers[2].Key)
	assert.Equal(t, []byte(issuedAt.Format(time.RFC3339)), msg.Headers[2].Value)
}
