package largest

import "time"

// Unbounded disables a numeric limit when used as Config.TopN or
// Config.MaxDepth.
const Unbounded = -1

// DefaultTopN is the number of files kept when no count is given.
const DefaultTopN = 50

// FileStat represents a single file path and size.
type FileStat struct {
	// Path is the absolute file path.
	Path string
	// Size is the size in bytes at discovery time. Files may grow,
	// shrink or vanish after discovery; the value is not re-read.
	Size int64
}

// Stats holds running counters for a directory walk.
type Stats struct {
	// FilesScanned is the number of regular files seen, matching or not.
	FilesScanned int64
	// Inaccessible is the number of entries that could not be read.
	Inaccessible int64
	// CurrentDepth is the depth of the most recently visited entry.
	CurrentDepth int
	// MaxDepthSeen is the deepest level visited so far.
	MaxDepthSeen int
}

// Config holds the per-walk parameters.
type Config struct {
	// Root is the directory to scan.
	Root string
	// Mask is the wildcard filename filter ("*" matches everything).
	Mask string
	// MaxDepth limits descent below Root (Unbounded = no limit).
	// Root's direct children are at depth 1.
	MaxDepth int
	// TopN is the number of files to keep (Unbounded = keep all).
	TopN int
	// Verbose enables per-entry diagnostics for unreadable entries.
	Verbose bool
}

// Result is the outcome of a completed walk.
type Result struct {
	// Files contains the retained files, largest first.
	Files []FileStat
	// Root is the absolute form of the scanned root.
	Root string
	// Stats are the final walk counters.
	Stats Stats
	// Elapsed is the total walk duration.
	Elapsed time.Duration
}
