package operations

import (
	"path/filepath"
	"strings"
)

// fileNameOf returns the final path component, reporting false when the
// path has no extractable name (empty, root, or a dot component).
func fileNameOf(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	base := filepath.Base(path)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", false
	}
	return base, true
}

// extensionOf returns the extension without its dot. Names with no dot,
// and dotfiles like ".bashrc", have no extension.
func extensionOf(path string) (string, bool) {
	name, ok := fileNameOf(path)
	if !ok {
		return "", false
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	return name[i+1:], true
}

// stemOf returns the name with its extension removed
func stemOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name
	}
	return name[:i]
}

// withFileName replaces the final path component, leaving the parent
// directory untouched.
func withFileName(path, name string) string {
	dir := filepath.Dir(path)
	if dir == "." && !strings.HasPrefix(path, "."+string(filepath.Separator)) {
		return name
	}
	return filepath.Join(dir, name)
}

// withExtension replaces the extension of the final path component. An
// empty ext removes the extension entirely.
func withExtension(path, ext string) (string, bool) {
	name, ok := fileNameOf(path)
	if !ok {
		return path, false
	}
	stem := stemOf(name)
	if ext == "" {
		return withFileName(path, stem), true
	}
	return withFileName(path, stem+"."+ext), true
}
