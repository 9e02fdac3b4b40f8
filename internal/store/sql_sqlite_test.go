package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/logger"
)

func TestNewConnectSQLite_CreatesDatabaseFile(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "daybook.sqlite")

	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: dbFile}, logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbFile); err != nil {
		t.Errorf("expected database file to exist: %v", err)
	}
}

func TestNewConnectSQLite_InMemory(t *testing.T) {
	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Errorf("expected in-memory database to be reachable: %v", err)
	}
}

func Test_dbFilePath(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "daybook.sqlite", want: "daybook.sqlite"},
		{dsn: "daybook.sqlite?_foreign_keys=on", want: "daybook.sqlite"},
		{dsn: "/var/lib/daybook/db.sqlite?cache=shared&mode=rwc", want: "/var/lib/daybook/db.sqlite"},
	}

	for _, tt := range tests {
		if got := dbFilePath(tt.dsn); got != tt.want {
			t.Errorf("dbFilePath(%q) = %q, want %q", tt.dsn, got, tt.want)
		}
	}
}
