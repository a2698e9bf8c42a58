package core

// RuntimeConfig contains per-process values handed to a session driver.
// Nothing in the simulation reads process-wide globals; everything it needs
// about the terminal and randomness travels through this value.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	PollRate int   // Input poll iterations per second for tick-driven frontends
	Seed     int64 // RNG seed for deterministic food placement
}
