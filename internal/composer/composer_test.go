package composer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/bren-perry/iw-generator/internal/domain"
	"github.com/bren-perry/iw-generator/internal/observability"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockPublisher struct {
	published []domain.Notification
	err       error
}

func (m *mockPublisher) Publish(_ context.Context, n domain.Notification) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, n)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCompose_StampsIdentity(t *testing.T) {
	c := New(nil, "ON", discardLogger(), observability.NewMetricsForTesting())

	n := c.Compose(context.Background(), domain.Request{Mode: domain.ModeStorm})

	_, err := uuid.Parse(n.ID)
	require.NoError(t, err, "ID should be a valid UUID")
	assert.False(t, n.IssuedAt.IsZero())
}

func TestCompose_AppliesDefaultProvince(t *testing.T) {
	c := New(nil, "MB", discardLogger(), observability.NewMetricsForTesting())

	t.Run("empty province gets the default", func(t *testing.T) {
		n := c.Compose(context.Background(), domain.Request{Mode: domain.ModeStorm})
		assert.Equal(t, "MB", n.Province)
	})

	t.Run("explicit province wins", func(t *testing.T) {
		n := c.Compose(context.Background(), domain.Request{Mode: domain.ModeStorm, Province: "AB"})
		assert.Equal(t, "AB", n.Province)
	})
}

func TestCompose_PublishesWhenConfigured(t *testing.T) {
	pub := &mockPublisher{}
	c := New(pub, "ON", discardLogger(), observability.NewMetricsForTesting())

	n := c.Compose(context.Background(), domain.Request{
		Mode:    domain.ModeStorm,
		Hazards: domain.Selection{Hail: domain.HailLarge},
	})

	require.Len(t, pub.published, 1)
	assert.Equal(t, n.ID, pub.published[0].ID)
	assert.Equal(t, n.Headline, pub.published[0].Headline)
}

func TestCompose_PublishFailureDoesNotFailCompose(t *testing.T) {
	pub := &mockPublisher{err: errors.New("broker unavailable")}
	metrics := observability.NewMetricsForTesting()
	c := New(pub, "ON", discardLogger(), metrics)

	n := c.Compose(context.Background(), domain.Request{Mode: domain.ModeStorm})

	assert.NotEmpty(t, n.Headline, "composition result is returned despite the publish failure")
	assert.NotEmpty(t, n.Description)
}

func TestCompose_NoPublisher(t *testing.T) {
	c := New(nil, "ON", discardLogger(), observability.NewMetricsForTesting())

	n := c.Compose(context.Background(), domain.Request{
		Mode:           domain.ModeRegional,
		RegionalChoice: domain.RegionalFunnel,
	})

	assert.Equal(t, "Prepare: Funnel Cloud Potential", n.Headline)
	assert.Equal(t, 1, n.Severity)
}
