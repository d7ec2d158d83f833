// ABOUTME: Tests running the Gateway contract against persistent backends.
// ABOUTME: Both backends must behave identically to the in-memory gateway.
package storage

import (
	"path/filepath"
	"testing"
)

func openBackends(t *testing.T) map[string]Gateway {
	t.Helper()

	badgerGw, err := OpenBadger(filepath.Join(t.TempDir(), "badger"))
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	sqliteGw, err := OpenSQLite(filepath.Join(t.TempDir(), "balance.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}

	gws := map[string]Gateway{
		"badger": badgerGw,
		"sqlite": sqliteGw,
	}
	t.Cleanup(func() {
		for _, gw := range gws {
			gw.Close()
		}
	})
	return gws
}

func TestBackendGatewayContract(t *testing.T) {
	for name, gw := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := gw.Get("missing"); err != nil || ok {
				t.Errorf("Get(missing) = ok=%v err=%v, want absent", ok, err)
			}

			if err := gw.Set("k1", "v1"); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := gw.Set("k1", "v2"); err != nil {
				t.Fatalf("Set() overwrite error = %v", err)
			}
			if v, ok, _ := gw.Get("k1"); !ok || v != "v2" {
				t.Errorf("Get(k1) = %q ok=%v, want v2", v, ok)
			}

			if err := gw.Set("k2", "x"); err != nil {
				t.Fatal(err)
			}
			keys, err := gw.Keys()
			if err != nil {
				t.Fatalf("Keys() error = %v", err)
			}
			if len(keys) != 2 {
				t.Errorf("Keys() = %v, want 2 keys", keys)
			}

			if err := gw.Remove("k1"); err != nil {
				t.Fatalf("Remove() error = %v", err)
			}
			if err := gw.Remove("k1"); err != nil {
				t.Errorf("second Remove() error = %v, want no-op", err)
			}
			if _, ok, _ := gw.Get("k1"); ok {
				t.Error("k1 should be gone")
			}
		})
	}
}

func TestBackendsPersistAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	badgerPath := filepath.Join(dir, "badger")
	gw, err := OpenBadger(badgerPath)
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	if err := gw.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}

	gw, err = OpenBadger(badgerPath)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer gw.Close()
	if v, ok, _ := gw.Get("k"); !ok || v != "v" {
		t.Errorf("Get(k) after reopen = %q ok=%v, want v", v, ok)
	}
}
