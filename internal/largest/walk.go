package largest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
)

// logger provides conditional diagnostics for unreadable entries.
type logger struct {
	enabled bool
}

// printf writes a diagnostic line to stderr if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// calculateDepth returns the depth of a path relative to the root.
// The root itself is depth 0, its direct children depth 1.
func calculateDepth(path, root string) int {
	relPath := strings.TrimPrefix(path, root)

	relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
	if relPath == "" {
		return 0
	}

	return strings.Count(relPath, string(filepath.Separator)) + 1
}

// Run walks the tree at cfg.Root and returns the retained files,
// largest first, together with the final walk counters.
//
// Only a failure to access the root itself is fatal. Everything else
// is recoverable: a directory that cannot be listed or a file whose
// size cannot be read is counted in Stats.Inaccessible, reported via
// stderr when cfg.Verbose is set, and the walk continues with the
// remaining entries.
//
// If hook is non-nil it is invoked synchronously from the walk loop
// with a snapshot of the running counters after each visit; hooks must
// therefore be cheap (see Reporter for a rate-limited consumer). The
// walk can be cancelled via ctx.
func Run(ctx context.Context, cfg Config, hook func(Stats)) (*Result, error) {
	log := logger{enabled: cfg.Verbose}

	if cfg.Root == "" {
		cfg.Root = "."
	}

	if cfg.Mask == "" {
		cfg.Mask = "*"
	}

	cfg.Root = filepath.Clean(cfg.Root)

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	// validate the root exists and is a directory before walking
	if statInfo, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", cfg.Root, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", cfg.Root)
	}

	matcher := NewMatcher(cfg.Mask)
	selector := NewSelector(cfg.TopN)

	var stats Stats

	observe := func() {
		if hook != nil {
			hook(stats)
		}
	}

	start := time.Now()

	// A single worker keeps the walk a sequential scan: the selector
	// and counters have exactly one writer, and the progress hook runs
	// synchronously between visits.
	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		depth := calculateDepth(path, root)

		stats.CurrentDepth = depth
		if depth > stats.MaxDepthSeen {
			stats.MaxDepthSeen = depth
		}

		if err != nil {
			stats.Inaccessible++
			log.printf("largest: cannot read %s: %v\n", path, err)
			observe()

			return nil //nolint:nilerr // Recoverable, keep walking
		}

		if d.IsDir() {
			// Prune directories below the depth limit without opening
			// them; files already listed are never depth-checked since
			// their parent was admissible.
			if cfg.MaxDepth != Unbounded && depth > cfg.MaxDepth {
				return filepath.SkipDir
			}

			observe()

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		stats.FilesScanned++

		if matcher.Match(d.Name()) {
			// Size is read only after the name matches; a file that
			// vanished in between counts as inaccessible.
			info, infoErr := d.Info()
			if infoErr != nil {
				stats.Inaccessible++
				log.printf("largest: cannot stat %s: %v\n", path, infoErr)
			} else {
				selector.Offer(FileStat{Path: path, Size: info.Size()})
			}
		}

		observe()

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return &Result{
		Files:   selector.Results(),
		Root:    root,
		Stats:   stats,
		Elapsed: time.Since(start),
	}, nil
}
