// Package analytics maintains the redirect counters and deploy metadata in
// the key-value store and serves the speedometer snapshot.
package analytics

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/TonySyv/yshstob/internal/app/models"
	"github.com/TonySyv/yshstob/internal/app/storage"
)

// Well-known counter keys.
const (
	keyTotalRedirects  = "analytics:total_redirects"
	keyTotalMs         = "analytics:total_ms"
	keyVersion         = "analytics:version"
	keyDeployTimestamp = "analytics:deploy_timestamp"
	keyCommitSummary   = "analytics:commit_summary"
)

const defaultVersion = "v1.000"
const defaultCommitSummary = "Initial deployment"

// NoCommitMessage is stored when a deploy update omits the summary.
const NoCommitMessage = "No commit message"

// Counters is the durable counter state as read from the store.
type Counters struct {
	TotalRedirects  int64
	TotalMs         int64
	Version         string
	DeployTimestamp string
	CommitSummary   string
}

// Aggregator folds redirect events into the durable counters. The
// read-modify-write is not atomic across concurrent events, so the totals
// may undercount under load.
type Aggregator struct {
	store storage.KVStore
}

// NewAggregator initializes the Aggregator over the given store.
func NewAggregator(store storage.KVStore) *Aggregator {
	return &Aggregator{store: store}
}

func (a *Aggregator) readString(ctx context.Context, key string, fallback string) (string, error) {
	value, err := a.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return fallback, nil
		}
		return "", err
	}
	return value, nil
}

func (a *Aggregator) readInt(ctx context.Context, key string) (int64, error) {
	value, err := a.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return strconv.ParseInt(value, 10, 64)
}

// ReadCounters loads the counter state, substituting defaults for keys that
// were never written.
func (a *Aggregator) ReadCounters(ctx context.Context) (Counters, error) {
	counters := Counters{}
	var err error
	if counters.TotalRedirects, err = a.readInt(ctx, keyTotalRedirects); err != nil {
		return Counters{}, err
	}
	if counters.TotalMs, err = a.readInt(ctx, keyTotalMs); err != nil {
		return Counters{}, err
	}
	if counters.Version, err = a.readString(ctx, keyVersion, defaultVersion); err != nil {
		return Counters{}, err
	}
	defaultTimestamp := time.Now().UTC().Format(time.RFC3339)
	if counters.DeployTimestamp, err = a.readString(ctx, keyDeployTimestamp, defaultTimestamp); err != nil {
		return Counters{}, err
	}
	if counters.CommitSummary, err = a.readString(ctx, keyCommitSummary, defaultCommitSummary); err != nil {
		return Counters{}, err
	}
	return counters, nil
}

// RecordRedirect adds one redirect with the given lookup duration to the
// counters. Events are counted whether or not the code still resolves,
// the aggregator does not cross-validate against the registry.
func (a *Aggregator) RecordRedirect(ctx context.Context, redirectTimeMs int64) error {
	counters, err := a.ReadCounters(ctx)
	if err != nil {
		return err
	}
	err = a.store.Put(ctx, keyTotalRedirects, strconv.FormatInt(counters.TotalRedirects+1, 10))
	if err != nil {
		return err
	}
	return a.store.Put(ctx, keyTotalMs, strconv.FormatInt(counters.TotalMs+redirectTimeMs, 10))
}

// SetDeployMetadata overwrites the three deploy-metadata keys, leaving the
// redirect counters untouched.
func (a *Aggregator) SetDeployMetadata(ctx context.Context, version string, deployTimestamp string, commitSummary string) error {
	if commitSummary == "" {
		commitSummary = NoCommitMessage
	}
	if err := a.store.Put(ctx, keyVersion, version); err != nil {
		return err
	}
	if err := a.store.Put(ctx, keyDeployTimestamp, deployTimestamp); err != nil {
		return err
	}
	return a.store.Put(ctx, keyCommitSummary, commitSummary)
}

// Snapshot returns the read-only speedometer view. The average is rounded
// to 3 decimal places and is 0 while no redirects were recorded.
func (a *Aggregator) Snapshot(ctx context.Context) (models.SpeedometerResponse, error) {
	counters, err := a.ReadCounters(ctx)
	if err != nil {
		return models.SpeedometerResponse{}, err
	}
	var average float64
	if counters.TotalRedirects > 0 {
		average = float64(counters.TotalMs) / float64(counters.TotalRedirects)
	}
	return models.SpeedometerResponse{
		Version:           counters.Version,
		DeployTimestamp:   counters.DeployTimestamp,
		CommitSummary:     counters.CommitSummary,
		TotalRedirects:    counters.TotalRedirects,
		AverageRedirectMs: math.Round(average*1000) / 1000,
	}, nil
}
