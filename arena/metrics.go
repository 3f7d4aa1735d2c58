package arena

// Name returns the arena name used in errors and telemetry.
func (a *Arena) Name() string {
	return a.name
}

// Used returns the number of bytes consumed from the start of the arena,
// including alignment padding.
func (a *Arena) Used() int {
	return a.used
}

// Capacity returns the fixed capacity of the arena in bytes.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Remaining returns the number of bytes left after the cursor.
func (a *Arena) Remaining() int {
	return len(a.buf) - a.used
}

// Peak returns the highest cursor value seen since the arena was created.
// It is not cleared by Reset.
func (a *Arena) Peak() int {
	return a.peak
}

// Resets returns how many times Reset has been called.
func (a *Arena) Resets() int {
	return a.resets
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.used) / float64(len(a.buf))
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		Name:        a.name,
		Used:        a.Used(),
		Capacity:    a.Capacity(),
		Peak:        a.Peak(),
		Resets:      a.Resets(),
		Utilization: a.Utilization(),
	}
}

// Metrics contains statistical information about an arena.
type Metrics struct {
	Name        string  // Arena name
	Used        int     // Bytes currently allocated
	Capacity    int     // Total capacity in bytes
	Peak        int     // High-water mark in bytes
	Resets      int     // Number of resets
	Utilization float64 // Ratio of used to capacity (0.0-1.0)
}
