package largest

import (
	"path/filepath"
	"testing"
)

func TestFormatSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "  0 bytes"},
		{7, "  7 bytes"},
		{42, " 42 bytes"},
		{999, "999 bytes"},
		{1000, "  1 KB"},
		{1999, "  1 KB"},
		{999999, "999 KB"},
		{1000000, "  1 MB"},
		{1999999, "  1 MB"},
		{123456789, "123 MB"},
		{1000000000, "  1 GB"},
		{1000000000000, "  1 TB"},
		{1000000000000000, "  1 PB"},
		{2500000000000000000, "  2 EB"},
	}

	for _, c := range cases {
		if got := FormatSize(c.size); got != c.want {
			t.Errorf("FormatSize(%d) = %q, want %q", c.size, got, c.want)
		}
	}
}

func TestFormatPath(t *testing.T) {
	root := filepath.Join("/", "data")
	path := filepath.Join(root, "sub", "file.txt")

	if got := FormatPath(path, root, false); got != path {
		t.Errorf("absolute: got %q, want %q", got, path)
	}

	want := filepath.Join("sub", "file.txt")
	if got := FormatPath(path, root, true); got != want {
		t.Errorf("relative: got %q, want %q", got, want)
	}
}
