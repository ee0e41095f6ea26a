package assetfmt

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func glbHeader(version uint32) []byte {
	b := make([]byte, 12)
	copy(b, "glTF")
	binary.LittleEndian.PutUint32(b[4:8], version)
	binary.LittleEndian.PutUint32(b[8:12], 1024)
	return b
}

func TestDetect_GLB(t *testing.T) {
	if got := Detect(glbHeader(2)); got != GLB {
		t.Errorf("Detect(glb v2) = %v", got)
	}
	if got := Detect(glbHeader(0)); got == GLB {
		t.Error("version 0 header should not classify as GLB")
	}
	if got := Detect([]byte("glTF")); got == GLB {
		t.Error("truncated header should not classify as GLB")
	}
}

func TestDetect_FBX(t *testing.T) {
	bin := append([]byte("Kaydara FBX Binary  \x00"), 0x1a, 0x00)
	if got := Detect(bin); got != FBX {
		t.Errorf("Detect(fbx binary) = %v", got)
	}
	ascii := []byte("; FBX 7.4.0 project file\nFBXHeaderExtension:  {")
	if got := Detect(ascii); got != FBX {
		t.Errorf("Detect(fbx ascii) = %v", got)
	}
}

func TestDetect_OBJ(t *testing.T) {
	cases := [][]byte{
		[]byte("v 0.0 1.0 2.0\nv 1.0 1.0 2.0\n"),
		[]byte("# exported\nmtllib chair.mtl\n"),
		[]byte("o Chair\nv 0 0 0\n"),
	}
	for _, c := range cases {
		if got := Detect(c); got != OBJ {
			t.Errorf("Detect(%q) = %v, want OBJ", c, got)
		}
	}
}

func TestDetect_Unknown(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("PK\x03\x04"),
		[]byte("hello world"),
	}
	for _, c := range cases {
		if got := Detect(c); got != Unknown {
			t.Errorf("Detect(%q) = %v, want Unknown", c, got)
		}
	}
}

func TestSniff(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.glb")
	if err := os.WriteFile(path, glbHeader(2), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Sniff(path)
	if err != nil {
		t.Fatalf("Sniff: %v", err)
	}
	if got != GLB {
		t.Errorf("Sniff = %v, want GLB", got)
	}

	if _, err := Sniff(filepath.Join(dir, "missing.glb")); err == nil {
		t.Error("missing file should surface an error")
	}
}

func TestMatchesExt(t *testing.T) {
	if !MatchesExt(GLB, ".glb") || !MatchesExt(OBJ, ".obj") || !MatchesExt(FBX, ".fbx") {
		t.Error("formats should match their own extensions")
	}
	if MatchesExt(GLB, ".obj") {
		t.Error("glb must not match .obj")
	}
	if MatchesExt(Unknown, ".glb") {
		t.Error("unknown never matches")
	}
}
