package jobs_test

import (
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genzdeliver/internal/jobs"
)

type countingRefresher struct {
	calls atomic.Int64
	err   error
}

func (r *countingRefresher) Refresh() error {
	r.calls.Add(1)
	return r.err
}

func TestTariffRefreshJob_Start_RefreshesImmediately(t *testing.T) {
	refresher := &countingRefresher{}
	job := jobs.NewTariffRefreshJob(refresher, slog.Default())

	err := job.Start()
	defer job.Stop()

	require.NoError(t, err)
	assert.Equal(t, int64(1), refresher.calls.Load())
}

func TestTariffRefreshJob_Start_FailsWhenInitialRefreshFails(t *testing.T) {
	refresher := &countingRefresher{err: errors.New("tariff file unreadable")}
	job := jobs.NewTariffRefreshJob(refresher, slog.Default())

	err := job.Start()

	require.Error(t, err)
	assert.Equal(t, int64(1), refresher.calls.Load())
}

func TestJobManager_StartAll_StopAll(t *testing.T) {
	refresher := &countingRefresher{}
	manager := jobs.NewJobManager(refresher, slog.Default())

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Equal(t, int64(1), refresher.calls.Load())
}

func TestJobManager_StartAll_PropagatesFailure(t *testing.T) {
	refresher := &countingRefresher{err: errors.New("tariff file unreadable")}
	manager := jobs.NewJobManager(refresher, slog.Default())

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start tariff refresh job")
}
