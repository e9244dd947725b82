package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func TestMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(FS, "*.up.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(ups) == 0 {
		t.Fatalf("expected embedded migrations")
	}
	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		if _, err := fs.Stat(FS, down); err != nil {
			t.Fatalf("missing down migration for %s", up)
		}
	}
}

func TestInitCreatesTables(t *testing.T) {
	raw, err := fs.ReadFile(FS, "001_init.up.sql")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	sql := string(raw)
	for _, want := range []string{"CREATE TABLE IF NOT EXISTS bookings", "CREATE TABLE IF NOT EXISTS user_roles", "'cancelled'"} {
		if !strings.Contains(sql, want) {
			t.Fatalf("expected %q in init migration", want)
		}
	}
}
