//go:build integration

package integration

import (
	"context"
	"net/url"
	"path/filepath"
	"runtime"

	"gh-pr-mirror/internal/infrastructure/logger"
	"gh-pr-mirror/internal/infrastructure/migrator"
)

func ApplyMigrations(ctx context.Context, dsn string) error {
	log := logger.New("test")
	if parsed, err := url.Parse(dsn); err == nil {
		q := parsed.Query()
		if q.Get("sslmode") == "" {
			q.Set("sslmode", "disable")
			parsed.RawQuery = q.Encode()
			dsn = parsed.String()
		}
	}

	_, thisFile, _, _ := runtime.Caller(0)
	migrationsPath := filepath.Clean(filepath.Join(filepath.Dir(thisFile), "../../..", "migrations"))
	m, err := migrator.NewMigrator(migrationsPath, dsn, log)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()
	return m.Up()
}
