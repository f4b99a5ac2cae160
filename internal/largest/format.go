package largest

import (
	"fmt"
	"path/filepath"
)

// sizeSuffixes are the decimal magnitude units, smallest first.
//
//nolint:gochecknoglobals // Format constant
var sizeSuffixes = []string{"BY", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatSize renders a byte count as a right-justified magnitude
// string. Counts below 1000 render as "<n> bytes"; larger counts are
// scaled by repeated division by 1000 and truncated to an integer, so
// 1000 renders as "  1 KB" and 999999 as "999 KB".
func FormatSize(size int64) string {
	if size < 1000 {
		return fmt.Sprintf("%3d bytes", size)
	}

	idx := 0
	for size >= 1000 && idx < len(sizeSuffixes)-1 {
		size /= 1000
		idx++
	}

	return fmt.Sprintf("%3d %s", size, sizeSuffixes[idx])
}

// FormatPath renders path for display: relative to root when relative
// is true, unchanged otherwise. If the relative form cannot be
// computed the original path is returned.
func FormatPath(path, root string, relative bool) string {
	if !relative {
		return path
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}

	return rel
}
