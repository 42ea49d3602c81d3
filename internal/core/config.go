package core

// RuntimeConfig contains configuration passed to the frame drivers.
type RuntimeConfig struct {
	TickRate int     // Frames per second requested from the driver (default 60)
	MaxDT    float32 // Upper bound for one frame's elapsed seconds
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		MaxDT:    0.1,
	}
}

// ClampDT keeps a frame's elapsed time within [0, MaxDT].
// A non-positive MaxDT disables the upper bound.
func (c RuntimeConfig) ClampDT(dt float32) float32 {
	if dt < 0 {
		return 0
	}
	if c.MaxDT > 0 && dt > c.MaxDT {
		return c.MaxDT
	}
	return dt
}
