package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/draftshare/draftshare/internal/store"
)

type SnapshotUploader interface {
	Upload(ctx context.Context, key string, data []byte) error
}

// StoreBackupJob writes a timestamped JSON snapshot of the whole share map to
// external storage.
type StoreBackupJob struct {
	store    store.Store
	uploader SnapshotUploader
}

func NewStoreBackupJob(st store.Store, uploader SnapshotUploader) *StoreBackupJob {
	return &StoreBackupJob{store: st, uploader: uploader}
}

func (j *StoreBackupJob) Name() string {
	return "store_backup"
}

func (j *StoreBackupJob) Run(ctx context.Context) error {
	if j.store == nil || j.uploader == nil {
		return nil
	}
	shares, err := j.store.Load(ctx)
	if err != nil {
		return err
	}
	data, err := json.Marshal(shares)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("shares-%s.json", time.Now().UTC().Format("20060102T150405Z"))
	return j.uploader.Upload(ctx, key, data)
}
