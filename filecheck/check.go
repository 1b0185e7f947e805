// Package filecheck answers whether a file matching a wildcard pattern exists
// inside any folder matching another wildcard pattern under a user profile
// directory. The result is a three-valued type; the numeric exit-code mapping
// an orchestrating scheduler depends on is applied only at the process
// boundary (cmd/filecheck).
package filecheck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Status is the three-valued check outcome.
type Status int

const (
	// StatusFound: a matching file exists in a matching folder.
	StatusFound Status = iota
	// StatusNotFound: profile and folders resolved, but no file matched.
	StatusNotFound
	// StatusNoUser: no profile directory could be resolved.
	StatusNoUser
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "FOUND"
	case StatusNotFound:
		return "NOTFOUND"
	case StatusNoUser:
		return "NOUSER"
	}
	return "UNKNOWN"
}

// Result carries the outcome plus the first matching file when found.
type Result struct {
	Status Status
	Path   string
}

// ResolveProfile returns the profile directory to scan. An explicit dir wins;
// otherwise the current user's home directory is used. Failure to resolve a
// home directory means no logged-on user, which is a non-error outcome.
func ResolveProfile(explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		log.Warnf("[FILECHECK] no profile directory resolvable: %v", err)
		return "", false
	}
	return home, true
}

// Check expands folderPattern beneath profileDir, then filePattern inside
// each matching folder. Patterns may use either path separator; the source
// automation writes them Windows-style (`AppData\Local\8x8*`).
func Check(profileDir, folderPattern, filePattern string) (Result, error) {
	if folderPattern == "" || filePattern == "" {
		return Result{}, fmt.Errorf("folder and file patterns are required")
	}
	if profileDir == "" {
		return Result{Status: StatusNoUser}, nil
	}
	folders, err := filepath.Glob(filepath.Join(profileDir, normalize(folderPattern)))
	if err != nil {
		return Result{}, fmt.Errorf("bad folder pattern: %w", err)
	}
	for _, folder := range folders {
		info, err := os.Stat(folder)
		if err != nil || !info.IsDir() {
			continue
		}
		matches, err := filepath.Glob(filepath.Join(folder, normalize(filePattern)))
		if err != nil {
			return Result{}, fmt.Errorf("bad file pattern: %w", err)
		}
		for _, m := range matches {
			fi, err := os.Stat(m)
			if err == nil && fi.Mode().IsRegular() {
				return Result{Status: StatusFound, Path: m}, nil
			}
		}
	}
	return Result{Status: StatusNotFound}, nil
}

func normalize(pattern string) string {
	pattern = strings.ReplaceAll(pattern, "\\", string(filepath.Separator))
	return filepath.FromSlash(pattern)
}
