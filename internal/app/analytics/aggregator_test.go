package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TonySyv/yshstob/internal/app/models"
	"github.com/TonySyv/yshstob/internal/app/storage"
)

func newAggregator(t *testing.T) (*Aggregator, *storage.MemoryKV) {
	t.Helper()
	store, err := storage.NewMemoryKV(nil)
	require.NoError(t, err)
	return NewAggregator(store), store
}

func TestAggregator_SnapshotFreshStore(t *testing.T) {
	aggregator, _ := newAggregator(t)
	snapshot, err := aggregator.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), snapshot.TotalRedirects)
	assert.Equal(t, float64(0), snapshot.AverageRedirectMs)
	assert.Equal(t, "v1.000", snapshot.Version)
	assert.Equal(t, "Initial deployment", snapshot.CommitSummary)
	assert.NotEmpty(t, snapshot.DeployTimestamp)
}

func TestAggregator_RecordRedirectIsAdditive(t *testing.T) {
	tests := []struct {
		name        string
		timings     []int64
		wantTotal   int64
		wantAverage float64
	}{
		{
			name:        "Single event",
			timings:     []int64{12},
			wantTotal:   1,
			wantAverage: 12,
		},
		{
			name:        "Several events average with rounding",
			timings:     []int64{1, 2, 4},
			wantTotal:   3,
			wantAverage: 2.333,
		},
		{
			name:        "Zero-duration events still count",
			timings:     []int64{0, 0},
			wantTotal:   2,
			wantAverage: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			aggregator, _ := newAggregator(t)
			for _, timing := range tt.timings {
				require.NoError(t, aggregator.RecordRedirect(ctx, timing))
			}
			snapshot, err := aggregator.Snapshot(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, snapshot.TotalRedirects)
			assert.Equal(t, tt.wantAverage, snapshot.AverageRedirectMs)
		})
	}
}

func TestAggregator_SetDeployMetadata(t *testing.T) {
	ctx := context.Background()
	aggregator, _ := newAggregator(t)
	require.NoError(t, aggregator.RecordRedirect(ctx, 7))

	err := aggregator.SetDeployMetadata(ctx, "v2.000", "2024-01-01T00:00:00Z", "")
	require.NoError(t, err)

	snapshot, err := aggregator.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v2.000", snapshot.Version)
	assert.Equal(t, "2024-01-01T00:00:00Z", snapshot.DeployTimestamp)
	assert.Equal(t, NoCommitMessage, snapshot.CommitSummary)
	assert.Equal(t, int64(1), snapshot.TotalRedirects, "metadata update must not touch the counters")
}

func TestAggregator_SetDeployMetadataKeepsSummary(t *testing.T) {
	ctx := context.Background()
	aggregator, _ := newAggregator(t)
	err := aggregator.SetDeployMetadata(ctx, "v2.000", "2024-01-01T00:00:00Z", "Ship the speedometer")
	require.NoError(t, err)
	snapshot, err := aggregator.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ship the speedometer", snapshot.CommitSummary)
}

func TestPipeline_EmitReachesCounters(t *testing.T) {
	aggregator, _ := newAggregator(t)
	doneChan := make(chan struct{})
	defer close(doneChan)
	pipeline := NewPipeline(aggregator, doneChan)

	pipeline.Emit(models.AnalyticsEvent{Code: "lelelele", LongURL: "https://ya.ru", Timestamp: 1, RedirectTimeMs: 5})
	pipeline.Emit(models.AnalyticsEvent{Code: "lolololo", LongURL: "https://vk.com", Timestamp: 2, RedirectTimeMs: 7})

	assert.Eventually(t, func() bool {
		snapshot, err := aggregator.Snapshot(context.Background())
		return err == nil && snapshot.TotalRedirects == 2 && snapshot.AverageRedirectMs == 6
	}, time.Second, 10*time.Millisecond)
}
