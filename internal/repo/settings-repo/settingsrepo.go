package settingsrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/zinlatt/betmart/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	query := `
        SELECT value
        FROM system_settings
        WHERE key = $1
    `
	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		zap.L().Error("failed to get setting", zap.String("key", key), zap.Error(err))
		return "", err
	}
	return value, nil
}

func (r *Repository) GetAll(ctx context.Context) (map[string]string, error) {
	query := `
        SELECT key, value
        FROM system_settings
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch settings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			zap.L().Error("can't scan setting row", zap.Error(err))
			return nil, err
		}
		settings[key] = value
	}
	return settings, nil
}

func (r *Repository) Upsert(ctx context.Context, key, value string) error {
	query := `
        INSERT INTO system_settings (key, value)
        VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
    `
	_, err := r.db.Exec(ctx, query, key, value)
	if err != nil {
		zap.L().Error("failed to upsert setting", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
