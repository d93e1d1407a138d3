package migrator_test

import (
	"testing"

	"gh-pr-mirror/internal/infrastructure/migrator"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseURL(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"postgresql://u:p@db:5432/ghmirror?sslmode=disable", "pgx5://u:p@db:5432/ghmirror?sslmode=disable"},
		{"postgres://u:p@localhost:5432/ghmirror", "pgx5://u:p@localhost:5432/ghmirror"},
		{"pgx5://u:p@db/ghmirror", "pgx5://u:p@db/ghmirror"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, migrator.DatabaseURL(tt.dsn))
	}
}
