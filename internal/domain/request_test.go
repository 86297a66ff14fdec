package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	at := time.Date(2024, time.June, 15, 18, 30, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(at))
	t.Cleanup(func() { SetClock(nil) })

	t.Run("fields agree with the resolved level", func(t *testing.T) {
		n := Compose(Request{
			Mode:                  ModeStorm,
			Province:              "on",
			Hazards:               Selection{Tornado: TornadoDamaging},
			MajorPopulationInPath: true,
		})

		assert.Equal(t, ModeStorm, n.Mode)
		assert.Equal(t, "ON", n.Province)
		assert.Equal(t, 4, n.Severity)
		assert.Equal(t, "Emergency", n.SeverityLabel)
		assert.Equal(t, LevelEmergency.Color(), n.SeverityColor)
		assert.Contains(t, n.Headline, "EMERGENCY:")
		assert.Equal(t, at, n.IssuedAt)
		assert.Empty(t, n.ID, "ID is stamped by the caller")
	})

	t.Run("issue time and description timestamp agree", func(t *testing.T) {
		n := Compose(Request{Mode: ModeStorm, Province: "ON", Location: "Barrie"})
		assert.Contains(t, n.Description, FormatLocalTime(n.IssuedAt, "ON"))
	})

	t.Run("unknown mode defaults to storm", func(t *testing.T) {
		n := Compose(Request{Mode: "broadcast"})
		assert.Equal(t, ModeStorm, n.Mode)
	})

	t.Run("unknown province is dropped", func(t *testing.T) {
		n := Compose(Request{Province: "XX"})
		assert.Empty(t, n.Province)
	})

	t.Run("notification JSON has stable field names", func(t *testing.T) {
		n := Compose(Request{Mode: ModeRegional, Province: "ON", RegionalChoice: RegionalFunnel})
		n.ID = "test-id"

		data, err := json.Marshal(n)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		for _, key := range []string{"id", "mode", "province", "severity", "severity_label", "headline", "description", "issued_at"} {
			assert.Contains(t, m, key)
		}
	})
}

func TestCatalog(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 6)

	for kind, opts := range catalog {
		require.NotEmpty(t, opts, kind)
		first := opts[0]
		assert.Equal(t, "none", first.Value, "%s first option must be the none baseline", kind)
		assert.Zero(t, first.Level, kind)
		for _, opt := range opts[1:] {
			assert.Positive(t, opt.Level, "%s/%s", kind, opt.Value)
			assert.NotEmpty(t, opt.Phrase, "%s/%s", kind, opt.Value)
		}
	}
}
