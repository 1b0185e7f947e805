package filecheck

import (
	"os"
	"path/filepath"
	"testing"
)

func profileWith(t *testing.T, folders map[string][]string) string {
	t.Helper()
	dir := t.TempDir()
	for folder, files := range folders {
		full := filepath.Join(dir, filepath.FromSlash(folder))
		if err := os.MkdirAll(full, 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		for _, f := range files {
			if err := os.WriteFile(filepath.Join(full, f), []byte("x"), 0644); err != nil {
				t.Fatalf("write: %v", err)
			}
		}
	}
	return dir
}

func TestCheckNoFolderMatches(t *testing.T) {
	dir := profileWith(t, map[string][]string{"AppData/Local/Other": {"a.exe"}})
	res, err := Check(dir, `AppData\Local\8x8*`, `8x8*.exe`)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.Status != StatusNotFound {
		t.Fatalf("expected NOTFOUND, got %v", res.Status)
	}
}

func TestCheckFolderWithoutMatchingFile(t *testing.T) {
	dir := profileWith(t, map[string][]string{"AppData/Local/8x8-work": {"readme.txt"}})
	res, err := Check(dir, `AppData\Local\8x8*`, `8x8*.exe`)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.Status != StatusNotFound {
		t.Fatalf("expected NOTFOUND, got %v", res.Status)
	}
}

func TestCheckFileFound(t *testing.T) {
	dir := profileWith(t, map[string][]string{
		"AppData/Local/8x8-old":  {"readme.txt"},
		"AppData/Local/8x8-work": {"8x8-setup.exe"},
	})
	res, err := Check(dir, `AppData\Local\8x8*`, `8x8*.exe`)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.Status != StatusFound {
		t.Fatalf("expected FOUND, got %v", res.Status)
	}
	if filepath.Base(res.Path) != "8x8-setup.exe" {
		t.Fatalf("unexpected match %s", res.Path)
	}
}

func TestCheckNoUser(t *testing.T) {
	res, err := Check("", `AppData\Local\8x8*`, `8x8*.exe`)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.Status != StatusNoUser {
		t.Fatalf("expected NOUSER, got %v", res.Status)
	}
}

func TestCheckMissingPatternsIsValidationError(t *testing.T) {
	if _, err := Check(t.TempDir(), "", "*.exe"); err == nil {
		t.Fatal("expected error for missing folder pattern")
	}
	if _, err := Check(t.TempDir(), "AppData", ""); err == nil {
		t.Fatal("expected error for missing file pattern")
	}
}

func TestResolveProfileExplicitWins(t *testing.T) {
	dir, ok := ResolveProfile("/srv/users/alice")
	if !ok || dir != "/srv/users/alice" {
		t.Fatalf("unexpected resolution %q %v", dir, ok)
	}
}

func TestCheckMatchIsFileNotFolder(t *testing.T) {
	dir := profileWith(t, map[string][]string{"AppData/Local/8x8/8x8sub.exe": nil})
	res, err := Check(dir, `AppData\Local\8x8*`, `8x8*.exe`)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.Status != StatusNotFound {
		t.Fatalf("directories must not count as matches, got %v", res.Status)
	}
}
