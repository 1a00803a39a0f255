package rotation

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IsImage reports whether name has a recognized image extension.
func IsImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return true
	}
	return false
}

// ScanDirectory lists the image files directly under dir, sorted
// lexicographically by filename so repeated scans of an unchanged directory
// always produce the same rotation order. Returns the canonicalized directory
// path and the entry paths.
func ScanDirectory(dir string) (string, []string, error) {
	canonical, err := filepath.Abs(CanonicalPath(dir))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s", ErrInvalidPath, dir)
	}

	info, err := os.Stat(canonical)
	if err != nil || !info.IsDir() {
		return "", nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidPath, dir)
	}

	dirEntries, err := os.ReadDir(canonical)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}

	entries := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() || !IsImage(e.Name()) {
			continue
		}
		entries = append(entries, filepath.Join(canonical, e.Name()))
	}
	sort.Strings(entries)

	if len(entries) == 0 {
		return "", nil, fmt.Errorf("%w in %s", ErrEmptyDirectory, dir)
	}

	return canonical, entries, nil
}

// CheckImage verifies that path points at a readable image file.
func CheckImage(path string) error {
	path = CanonicalPath(path)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	if info.IsDir() || !IsImage(path) {
		return fmt.Errorf("%w: %s is not an image file", ErrInvalidPath, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	_ = f.Close()

	return nil
}

// CanonicalPath expands a leading ~ to the user's home directory.
func CanonicalPath(path string) string {
	if path == "" {
		return ""
	}

	if path == "~" {
		return os.Getenv("HOME")
	}

	if strings.HasPrefix(path, "~/") {
		homeDir := os.Getenv("HOME")
		return strings.Replace(path, "~", homeDir, 1)
	}

	return path
}
