package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunWritesFrames(t *testing.T) {
	out := t.TempDir()
	cfg := config{
		width:  120,
		height: 160,
		x:      60,
		y:      140,
		frames: 12,
		every:  4,
		out:    out,
		seed:   1,
		interp: "nearest",
		hud:    true,
	}

	written, err := run(cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if written != 3 {
		t.Errorf("written = %d, want 3", written)
	}

	for _, name := range []string{"frame_00004.png", "frame_00008.png", "frame_00012.png"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRunBadInputs(t *testing.T) {
	base := config{width: 10, height: 10, frames: 1, every: 1, out: t.TempDir(), interp: "bilinear"}

	missing := base
	missing.sprite = filepath.Join(t.TempDir(), "missing.png")
	if _, err := run(missing); err == nil {
		t.Error("missing sprite should fail")
	}

	badInterp := base
	badInterp.interp = "sinc"
	if _, err := run(badInterp); err == nil {
		t.Error("unknown interpolation should fail")
	}
}
