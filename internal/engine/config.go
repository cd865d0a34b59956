package engine

// RuntimeConfig is the configuration handed to games at construction. Games
// use it for grid dimensions, tick-rate-relative pacing, and deterministic
// simulation.
type RuntimeConfig struct {
	Grid     Grid
	TickRate int   // simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultRuntimeConfig returns the classic layout at 60 ticks per second.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Grid:     DefaultGrid(),
		TickRate: 60,
		Seed:     0,
	}
}
