package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"radixconv/internal/domain"
	"radixconv/internal/store"
)

func TestPrefs_MissingFileYieldsDefaults(t *testing.T) {
	var ps domain.PreferencesStore = store.NewPrefsFileStore(t.TempDir())

	got, err := ps.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != domain.DefaultPreferences() {
		t.Fatalf("want defaults, got %+v", got)
	}
}

func TestPrefs_SaveLoad_OK(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")
	ps := store.NewPrefsFileStore(home)

	want := domain.Preferences{DefaultFrom: 16, DefaultTo: 36, LogLevel: "debug"}
	if err := ps.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := ps.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("mismatch after load: want %+v, got %+v", want, got)
	}

	fi, err := os.Stat(ps.Path())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Fatalf("want mode 0600, got %v", fi.Mode().Perm())
	}
}

func TestPrefs_PartialFileFilledFromDefaults(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, store.PrefsFileName), []byte("default_to: 8\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := store.NewPrefsFileStore(home).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := domain.Preferences{DefaultFrom: 10, DefaultTo: 8, LogLevel: "info"}
	if got != want {
		t.Fatalf("want %+v, got %+v", want, got)
	}
}

func TestPrefs_InvalidFileFails(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, store.PrefsFileName), []byte("default_from: 99\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.NewPrefsFileStore(home).Load(); err == nil {
		t.Fatal("expected error for out-of-range base")
	}

	if err := os.WriteFile(filepath.Join(home, store.PrefsFileName), []byte("default_from: [\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.NewPrefsFileStore(home).Load(); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestPrefs_SaveRejectsInvalid(t *testing.T) {
	ps := store.NewPrefsFileStore(t.TempDir())
	if err := ps.Save(domain.Preferences{DefaultFrom: 1, DefaultTo: 2, LogLevel: "info"}); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := os.Stat(ps.Path()); !os.IsNotExist(err) {
		t.Fatalf("invalid preferences must not be written, stat err = %v", err)
	}
}
