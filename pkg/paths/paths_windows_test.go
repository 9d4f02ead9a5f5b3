//go:build windows

package paths

import (
	"path/filepath"
	"testing"
)

func TestNew_Windows(t *testing.T) {
	appData := t.TempDir()
	t.Setenv("APPDATA", appData)

	r, err := New(Carto)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if want := filepath.Join(appData, "athlabs", "carto", "data"); r.DataDir() != want {
		t.Errorf("DataDir() = %q, want %q", r.DataDir(), want)
	}
	if want := filepath.Join(appData, "athlabs", "carto", "config"); r.PrefsDir() != want {
		t.Errorf("PrefsDir() = %q, want %q", r.PrefsDir(), want)
	}
}
