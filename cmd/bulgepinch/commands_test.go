package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

const testPresets = `{
	"presets": [
		{"name": "soft bulge", "radius": 8, "strength": 0.5},
		{"name": "pinch", "center": [0.25, 0.25], "strength": -1}
	]
}`

// setup writes a small input image and a preset file into a temp dir.
func setup(t *testing.T) (dir, input, presets string) {
	t.Helper()
	dir = t.TempDir()
	input = filepath.Join(dir, "in.png")
	if err := imaging.Save(imaging.New(32, 24, color.NRGBA{R: 200, G: 100, B: 50, A: 255}), input); err != nil {
		t.Fatal(err)
	}
	presets = filepath.Join(dir, "presets.json")
	if err := os.WriteFile(presets, []byte(testPresets), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, input, presets
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestWarpDefaultOutput(t *testing.T) {
	dir, input, _ := setup(t)
	out, err := run(t, "warp", input, "--radius", "10", "--strength", "-0.5")
	if err != nil {
		t.Fatalf("warp: %v", err)
	}
	want := filepath.Join(dir, "in_warped.png")
	if strings.TrimSpace(out) != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	img, err := imaging.Open(want)
	if err != nil {
		t.Fatalf("open result: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("result size = %dx%d, want 32x24", b.Dx(), b.Dy())
	}
}

func TestWarpAllPresets(t *testing.T) {
	dir, input, presets := setup(t)
	outDir := filepath.Join(dir, "out")
	if _, err := run(t, "warp", input, "--preset-file", presets, "--all", "-o", outDir); err != nil {
		t.Fatalf("warp --all: %v", err)
	}
	for _, name := range []string{"in_soft_bulge.png", "in_pinch.png"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestWarpErrors(t *testing.T) {
	dir, input, presets := setup(t)
	tests := []struct {
		name string
		args []string
	}{
		{"no input", []string{"warp"}},
		{"missing file", []string{"warp", filepath.Join(dir, "nope.png")}},
		{"bad edge", []string{"warp", input, "--edge", "wrap"}},
		{"preset without file", []string{"warp", input, "--preset", "pinch"}},
		{"unknown preset", []string{"warp", input, "--preset-file", presets, "--preset", "nope"}},
		{"all without file", []string{"warp", input, "--all"}},
	}
	for _, tt := range tests {
		if _, err := run(t, tt.args...); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestPresetsCommand(t *testing.T) {
	_, _, presets := setup(t)
	out, err := run(t, "presets", presets)
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	if !strings.Contains(out, "soft bulge") || !strings.Contains(out, "pinch") {
		t.Errorf("output missing preset names:\n%s", out)
	}
	if !strings.Contains(out, "radius=8.0") {
		t.Errorf("output missing radius:\n%s", out)
	}
}

func TestOverrideParamsOnlyChangedFlags(t *testing.T) {
	_, input, presets := setup(t)
	cmd := newWarpCmd()
	if err := cmd.Flags().Parse([]string{"--strength", "0.25"}); err != nil {
		t.Fatal(err)
	}
	opts := &warpOptions{presetFile: presets, preset: "pinch", strength: 0.25}
	jobs, err := planJobs(cmd, input, opts)
	if err != nil {
		t.Fatal(err)
	}
	p := jobs[0].params
	if p.Strength != 0.25 {
		t.Errorf("strength = %v, want flag override 0.25", p.Strength)
	}
	if p.Center.X != 0.25 || p.Center.Y != 0.25 {
		t.Errorf("center = %+v, want preset center", p.Center)
	}
}

func TestStem(t *testing.T) {
	if got := stem("/a/b/photo.final.jpg"); got != "photo.final" {
		t.Errorf("stem = %q, want photo.final", got)
	}
}
