// Package assetfmt identifies 3D asset container formats from file headers.
// It replaces trusting the file extension alone: a renamed file is caught
// before the converter chokes on it.
package assetfmt

import (
	"bytes"
	"encoding/binary"
	"os"
	"strings"
)

// Format is a recognized asset container format.
type Format int

const (
	Unknown Format = iota
	GLB            // glTF binary container
	OBJ            // Wavefront OBJ (text)
	FBX            // Autodesk Filmbox (binary or ASCII)
)

func (f Format) String() string {
	switch f {
	case GLB:
		return "glb"
	case OBJ:
		return "obj"
	case FBX:
		return "fbx"
	default:
		return "unknown"
	}
}

const headerLen = 64

var (
	glbMagic       = []byte("glTF")
	fbxBinaryMagic = []byte("Kaydara FBX Binary")
	fbxASCIIMark   = []byte("FBXHeaderExtension")
)

// OBJ lines worth treating as positive identification. OBJ has no magic
// number, so the first non-comment directive decides.
var objDirectives = []string{"v ", "vn ", "vt ", "f ", "o ", "g ", "mtllib ", "usemtl "}

// Sniff reads the file header and classifies it. Filesystem errors
// propagate; an unrecognized header is Unknown, not an error.
func Sniff(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	buf := make([]byte, headerLen)
	n, err := f.Read(buf)
	if n == 0 && err != nil {
		return Unknown, nil // empty or unreadable body; not a filesystem error
	}
	return Detect(buf[:n]), nil
}

// Detect classifies a header buffer.
func Detect(header []byte) Format {
	if len(header) >= 12 && bytes.HasPrefix(header, glbMagic) {
		// Magic is followed by a little-endian container version word.
		if binary.LittleEndian.Uint32(header[4:8]) >= 1 {
			return GLB
		}
	}
	if bytes.HasPrefix(header, fbxBinaryMagic) || bytes.Contains(header, fbxASCIIMark) {
		return FBX
	}
	if looksLikeOBJ(header) {
		return OBJ
	}
	return Unknown
}

// MatchesExt reports whether a detected format agrees with the file
// extension (with leading dot). Unknown never matches: the caller decides
// whether to warn.
func MatchesExt(f Format, ext string) bool {
	return "."+f.String() == ext
}

func looksLikeOBJ(header []byte) bool {
	for _, raw := range strings.Split(string(header), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, d := range objDirectives {
			if strings.HasPrefix(line, d) {
				return true
			}
		}
		return false
	}
	return false
}
