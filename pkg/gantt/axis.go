package gantt

// Tick is one time-axis mark.
type Tick struct {
	Value int     // time in solver units
	X     float64 // pixel x of the tick position
}

// TickStep selects the tick interval for a makespan at a given scale. The
// staircase is keyed off the total rendered width rather than the raw
// makespan so tick density stays roughly constant under zoom.
func TickStep(makespan int, scale float64) int {
	width := float64(makespan) * scale
	switch {
	case width <= 800:
		return 1
	case width <= 1500:
		return 2
	case width <= 3000:
		return 5
	default:
		return 10
	}
}

// PlanTicks emits ticks at 0, step, 2*step, ... up to and including the
// last multiple at or before makespan.
func PlanTicks(geo Geometry, makespan int, scale float64) []Tick {
	step := TickStep(makespan, scale)
	ticks := make([]Tick, 0, makespan/step+1)
	for t := 0; t <= makespan; t += step {
		ticks = append(ticks, Tick{
			Value: t,
			X:     geo.originX() + float64(t)*scale,
		})
	}
	return ticks
}
