package pipeline

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/simforge/meshbatch/internal/rangespec"
)

// Asset extensions recognized for conversion. The suffix match is
// case-sensitive: the converter contract only covers lowercase-extension
// assets, and an uppercase twin is a different file on the filesystems the
// pipeline targets.
var assetExtensions = map[string]bool{
	".glb": true,
	".obj": true,
	".fbx": true,
}

// Discover walks inputDir and collects all asset files, in discovery order.
// The order is whatever the directory traversal yields; the batch contract
// deliberately promises no particular ordering, so no sort is applied.
// A missing or unreadable root surfaces as the walk error.
func Discover(inputDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if assetExtensions[filepath.Ext(path)] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Filter narrows files to those whose top-level path segment relative to
// inputDir is in allowed. An empty set keeps everything. A file sitting
// directly in inputDir has its own name as the top segment and is filtered
// like any other; there is no exemption. Order is preserved, so filtering
// an already-filtered list against the same set is the identity.
func Filter(inputDir string, files []string, allowed rangespec.AllowedSet) ([]string, error) {
	if len(allowed) == 0 {
		return files, nil
	}
	filtered := make([]string, 0, len(files))
	for _, p := range files {
		rel, err := filepath.Rel(inputDir, p)
		if err != nil {
			return nil, err
		}
		top, _, _ := strings.Cut(rel, string(filepath.Separator))
		if allowed.Contains(top) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}
