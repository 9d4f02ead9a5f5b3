package paths

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromDirs(t *testing.T) {
	data := filepath.Join("/srv", "carto", "data")
	prefs := filepath.Join("/srv", "carto", "prefs")
	r := FromDirs(data, prefs)

	if r.DataDir() != data {
		t.Errorf("DataDir() = %q, want %q", r.DataDir(), data)
	}
	if r.PrefsDir() != prefs {
		t.Errorf("PrefsDir() = %q, want %q", r.PrefsDir(), prefs)
	}
	if want := filepath.Join(prefs, "settings.yaml"); r.PrefsFile() != want {
		t.Errorf("PrefsFile() = %q, want %q", r.PrefsFile(), want)
	}
	if want := filepath.Join(data, "lenses"); r.LensesDir() != want {
		t.Errorf("LensesDir() = %q, want %q", r.LensesDir(), want)
	}
}

func TestNew_RejectsEmptyApplication(t *testing.T) {
	_, err := New(AppID{Qualifier: "com", Organization: "athlabs"})
	if !errors.Is(err, ErrInvalidAppID) {
		t.Fatalf("New() error = %v, want ErrInvalidAppID", err)
	}
}

func TestNew_Deterministic(t *testing.T) {
	a, err := New(Carto)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	b, err := New(Carto)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if *a != *b {
		t.Errorf("New() not deterministic: %+v vs %+v", a, b)
	}
}

func TestNew_DerivedPathsInsideBaseDirs(t *testing.T) {
	r, err := New(Carto)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	for name, path := range map[string]string{
		"DataDir":   r.DataDir(),
		"PrefsDir":  r.PrefsDir(),
		"PrefsFile": r.PrefsFile(),
		"LensesDir": r.LensesDir(),
	} {
		if !filepath.IsAbs(path) {
			t.Errorf("%s = %q is not absolute", name, path)
		}
	}
	if !strings.HasPrefix(r.PrefsFile(), r.PrefsDir()) {
		t.Errorf("PrefsFile %q not inside PrefsDir %q", r.PrefsFile(), r.PrefsDir())
	}
	if !strings.HasPrefix(r.LensesDir(), r.DataDir()) {
		t.Errorf("LensesDir %q not inside DataDir %q", r.LensesDir(), r.DataDir())
	}
}
