package hud

// DefaultFPSWindow is the number of samples averaged by an FPSMeter.
const DefaultFPSWindow = 200

// FPSMeter averages frame-rate samples over fixed windows.
//
// The displayed value only changes when a window completes, which keeps a
// window caption readable at high frame rates.
type FPSMeter struct {
	window  int
	sum     float64
	count   int
	display int
}

// NewFPSMeter returns a meter averaging window samples.
// A window below 1 uses DefaultFPSWindow.
func NewFPSMeter(window int) *FPSMeter {
	if window < 1 {
		window = DefaultFPSWindow
	}
	return &FPSMeter{window: window}
}

// Add records one sample. It reports whether a window just completed.
func (m *FPSMeter) Add(fps float64) bool {
	m.sum += fps
	m.count++
	if m.count < m.window {
		return false
	}
	m.display = int(m.sum / float64(m.window))
	m.sum = 0
	m.count = 0
	return true
}

// Value returns the average of the last completed window, 0 before the
// first window completes.
func (m *FPSMeter) Value() int {
	return m.display
}
