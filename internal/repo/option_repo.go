package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/draftshare/draftshare/internal/pkg/dbutil"
	appErr "github.com/draftshare/draftshare/internal/pkg/errors"
)

// OptionRepo reads and writes named blobs in the options table. Each option is
// one row; values are opaque to this layer.
type OptionRepo struct {
	db *sql.DB
}

func NewOptionRepo(db *sql.DB) *OptionRepo {
	return &OptionRepo{db: db}
}

func (r *OptionRepo) Get(ctx context.Context, name string) (string, error) {
	where := map[string]interface{}{"name": name}
	sqlStr, args, err := builder.BuildSelect("options", where, []string{"value"})
	if err != nil {
		return "", err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return "", err
	}
	defer rows.Close()
	if !rows.Next() {
		return "", appErr.ErrNotFound
	}
	var value string
	if err := rows.Scan(&value); err != nil {
		return "", err
	}
	return value, nil
}

func (r *OptionRepo) Set(ctx context.Context, name, value string) error {
	sqlStr := `INSERT INTO options (name, value) VALUES (?, ?) ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value`
	sqlStr, args := dbutil.Finalize(sqlStr, []interface{}{name, value})
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}
