package job

import (
	"context"
	"time"

	"github.com/draftshare/draftshare/internal/service"
)

// SharePurgeJob drops shares that expired longer ago than the retention
// window. Recently expired ones stay so owners can still extend them.
type SharePurgeJob struct {
	shares    *service.ShareService
	retention time.Duration
}

func NewSharePurgeJob(shares *service.ShareService, retention time.Duration) *SharePurgeJob {
	return &SharePurgeJob{shares: shares, retention: retention}
}

func (j *SharePurgeJob) Name() string {
	return "share_purge"
}

func (j *SharePurgeJob) Run(ctx context.Context) error {
	if j.shares == nil || j.retention <= 0 {
		return nil
	}
	_, err := j.shares.PurgeExpired(ctx, j.retention)
	return err
}
