package race

// Speed selects how many search steps an animation performs per second.
type Speed int

const (
	// Slow paces the race at 15 steps per second.
	Slow Speed = iota
	// Normal paces the race at 40 steps per second.
	Normal
	// Fast paces the race at 120 steps per second.
	Fast
	// Instant runs the race to completion in a single call.
	Instant
)

// stepsPerSecond maps each preset to its pace. Instant is marked with -1.
var stepsPerSecond = map[Speed]int{
	Slow:    15,
	Normal:  40,
	Fast:    120,
	Instant: -1,
}

// String returns the preset name.
func (s Speed) String() string {
	switch s {
	case Slow:
		return "Slow"
	case Normal:
		return "Normal"
	case Fast:
		return "Fast"
	case Instant:
		return "Instant"
	}

	return "Normal"
}

// StepsPerTick returns how many Tick calls a render loop running at the
// given frames-per-second should issue each frame, and whether the race
// should instead RunToCompletion immediately (the Instant preset). At
// slow paces the caller should gate ticks on elapsed time; the returned
// batch is never below 1.
func (s Speed) StepsPerTick(fps int) (batch int, instant bool) {
	if fps <= 0 {
		fps = 60
	}
	rate, ok := stepsPerSecond[s]
	if !ok {
		rate = stepsPerSecond[Normal]
	}
	if rate < 0 {
		return 0, true
	}
	batch = rate / fps
	if batch < 1 {
		batch = 1
	}

	return batch, false
}
