package convert

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/simforge/meshbatch/internal/config"
)

// --- DestPath tests ---

func TestDestPath_MirrorsSubtree(t *testing.T) {
	got, err := DestPath("/in", "/out", "/in/000-001/chair.glb")
	if err != nil {
		t.Fatalf("DestPath: %v", err)
	}
	want := filepath.Join("/out", "000-001", "chair", "chair.usd")
	if got != want {
		t.Errorf("DestPath = %q, want %q", got, want)
	}
}

func TestDestPath_FileAtRoot(t *testing.T) {
	got, err := DestPath("/in", "/out", "/in/table.obj")
	if err != nil {
		t.Fatalf("DestPath: %v", err)
	}
	want := filepath.Join("/out", "table", "table.usd")
	if got != want {
		t.Errorf("DestPath = %q, want %q", got, want)
	}
}

func TestDestPath_DeepNesting(t *testing.T) {
	got, err := DestPath("/in", "/out", "/in/000-002/props/lamp.fbx")
	if err != nil {
		t.Fatalf("DestPath: %v", err)
	}
	want := filepath.Join("/out", "000-002", "props", "lamp", "lamp.usd")
	if got != want {
		t.Errorf("DestPath = %q, want %q", got, want)
	}
}

// --- BuildArgs tests ---

func TestBuildArgs_Defaults(t *testing.T) {
	cfg := config.DefaultConfig()
	args := BuildArgs(&cfg, "/in/a.glb", "/out/a/a.usd")

	if args[0] != "mesh2usd" {
		t.Errorf("command = %q", args[0])
	}
	joined := strings.Join(args, " ")
	for _, want := range []string{
		"--max-len 8", "--env-size 20", "--grid-size 20",
		"--collision-approximation none",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %v", want, args)
		}
	}
	if strings.Contains(joined, "--make-instanceable") || strings.Contains(joined, "--mass") {
		t.Errorf("optional flags should be absent by default: %v", args)
	}
	if args[len(args)-2] != "/in/a.glb" || args[len(args)-1] != "/out/a/a.usd" {
		t.Errorf("positional args wrong: %v", args)
	}
}

func TestBuildArgs_Optionals(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MakeInstanceable = true
	cfg.MassKg = 2.5
	cfg.CollisionApproximation = config.CollisionConvexHull
	args := BuildArgs(&cfg, "a", "b")

	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "--make-instanceable") {
		t.Errorf("missing --make-instanceable: %v", args)
	}
	if !strings.Contains(joined, "--mass 2.5") {
		t.Errorf("missing --mass 2.5: %v", args)
	}
	if !strings.Contains(joined, "--collision-approximation convexHull") {
		t.Errorf("missing collision mode: %v", args)
	}
}

// --- ExecConverter tests ---

func TestConvert_RejectsMissingSource(t *testing.T) {
	cfg := config.DefaultConfig()
	c := NewExecConverter(&cfg, nil)
	err := c.Convert(context.Background(), filepath.Join(t.TempDir(), "missing.glb"), filepath.Join(t.TempDir(), "x", "x.usd"))
	if err == nil || !strings.Contains(err.Error(), "invalid mesh file path") {
		t.Fatalf("got %v, want invalid mesh file path", err)
	}
}

func TestConvert_RunsCommandAndCreatesDestDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on /bin/true")
	}
	dir := t.TempDir()
	src := filepath.Join(dir, "a.glb")
	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.ConverterCmd = "true" // succeeds regardless of arguments
	c := NewExecConverter(&cfg, nil)

	dst := filepath.Join(dir, "out", "a", "a.usd")
	if err := c.Convert(context.Background(), src, dst); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if fi, err := os.Stat(filepath.Dir(dst)); err != nil || !fi.IsDir() {
		t.Errorf("destination directory not created: %v", err)
	}
}

func TestConvert_SurfacesFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on /bin/false")
	}
	dir := t.TempDir()
	src := filepath.Join(dir, "a.glb")
	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.ConverterCmd = "false"
	c := NewExecConverter(&cfg, nil)

	err := c.Convert(context.Background(), src, filepath.Join(dir, "out", "a", "a.usd"))
	if err == nil {
		t.Fatal("expected converter failure to propagate")
	}
}

func TestStderrTail(t *testing.T) {
	if got := stderrTail(""); got != "" {
		t.Errorf("empty tail = %q", got)
	}
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "line"
	}
	got := stderrTail(strings.Join(lines, "\n"))
	if n := strings.Count(got, "line"); n != stderrTailLines {
		t.Errorf("tail kept %d lines, want %d", n, stderrTailLines)
	}
}
