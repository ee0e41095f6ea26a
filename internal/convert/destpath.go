package convert

import (
	"path/filepath"
	"strings"
)

// DestPath derives the output location for one source asset. The input's
// relative subtree is mirrored under outputRoot, and each asset gets its own
// directory named after the file stem, holding the converted scene plus the
// converter's sidecar files (e.g. the occupancy grid):
//
//	<in>/000-001/chair.glb -> <out>/000-001/chair/chair.usd
func DestPath(inputRoot, outputRoot, src string) (string, error) {
	rel, err := filepath.Rel(inputRoot, src)
	if err != nil {
		return "", err
	}
	stem := strings.TrimSuffix(rel, filepath.Ext(rel))
	base := filepath.Base(stem)
	return filepath.Join(outputRoot, stem, base+".usd"), nil
}
