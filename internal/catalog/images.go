package catalog

import (
	"path/filepath"
	"strings"
)

// ImagePath composes the expected image location for an outfit:
// base/<theme with spaces replaced by underscores>/<image file>.
//
// This is pure string composition; checking whether the file exists is the
// embedding application's concern.
func ImagePath(base string, o Outfit) string {
	themeFolder := strings.ReplaceAll(o.Theme, " ", "_")
	return filepath.Join(base, themeFolder, o.Image)
}
