package hud

import (
	"image"
	"image/color"
	"testing"
)

func TestFPSMeter(t *testing.T) {
	m := NewFPSMeter(4)

	for i, fps := range []float64{10, 20, 30} {
		if m.Add(fps) {
			t.Fatalf("sample %d completed a window early", i)
		}
		if m.Value() != 0 {
			t.Fatalf("Value() = %d before first window", m.Value())
		}
	}

	if !m.Add(41) {
		t.Fatal("fourth sample should complete the window")
	}
	if m.Value() != 25 {
		t.Errorf("Value() = %d, want 25", m.Value())
	}

	// Holds until the next window completes.
	m.Add(1000)
	if m.Value() != 25 {
		t.Errorf("Value() = %d mid-window, want 25", m.Value())
	}
}

func TestFPSMeterDefaultWindow(t *testing.T) {
	m := NewFPSMeter(0)
	for i := 1; i < DefaultFPSWindow; i++ {
		if m.Add(60) {
			t.Fatalf("window completed after %d samples", i)
		}
	}
	if !m.Add(60) || m.Value() != 60 {
		t.Errorf("Value() = %d, want 60", m.Value())
	}
}

func TestCaption(t *testing.T) {
	if got, want := Caption(1234, 81), "FPS = 1,234  particles = 81"; got != want {
		t.Errorf("Caption() = %q, want %q", got, want)
	}
}

func TestStatus(t *testing.T) {
	if got, want := Status(12000, 82, 90), "tick 12,000  particles 82  cached 90/101"; got != want {
		t.Errorf("Status() = %q, want %q", got, want)
	}
}

func TestLabelDraw(t *testing.T) {
	l, err := NewLabel(14)
	if err != nil {
		t.Fatalf("NewLabel: %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })

	dst := image.NewNRGBA(image.Rect(0, 0, 120, 30))
	l.Draw(dst, "tick 1", 2, 2, color.White)

	painted := 0
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Error("Draw painted no pixels")
	}

	if w := l.Measure("tick 1"); w <= 0 || w > 120 {
		t.Errorf("Measure() = %d", w)
	}
}

func TestLabelDrawEmpty(t *testing.T) {
	l, err := NewLabel(12)
	if err != nil {
		t.Fatalf("NewLabel: %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })

	dst := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	l.Draw(dst, "", 0, 0, color.White)
	for _, v := range dst.Pix {
		if v != 0 {
			t.Fatal("empty text painted pixels")
		}
	}
}
