package db

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestOptionsFromEnvOverrides(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "3")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")

	opts := OptionsFromEnv(DefaultServerOptions())
	if opts.MaxOpenConns != 3 {
		t.Fatalf("MaxOpenConns = %d, want 3", opts.MaxOpenConns)
	}
	if opts.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("ConnMaxLifetime = %v, want 30m", opts.ConnMaxLifetime)
	}
	// Untouched fields keep their defaults.
	if opts.MaxIdleConns != DefaultServerOptions().MaxIdleConns {
		t.Fatalf("MaxIdleConns = %d", opts.MaxIdleConns)
	}
}

func TestOptionsFromEnvIgnoresInvalid(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	opts := OptionsFromEnv(DefaultMigrateOptions())
	if opts.MaxOpenConns != DefaultMigrateOptions().MaxOpenConns {
		t.Fatalf("MaxOpenConns = %d, want default", opts.MaxOpenConns)
	}
}

func TestConnectEmptyURL(t *testing.T) {
	_, err := Connect(context.Background(), "  ", DefaultServerOptions())
	if err == nil || !strings.Contains(err.Error(), "DATABASE_URL is empty") {
		t.Fatalf("err = %v", err)
	}
}
