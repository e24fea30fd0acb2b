package gantt

import "testing"

func TestTickStep(t *testing.T) {
	tests := []struct {
		name     string
		makespan int
		scale    float64
		want     int
	}{
		{name: "narrow chart", makespan: 10, scale: 50, want: 1},
		{name: "at 800px boundary", makespan: 16, scale: 50, want: 1},
		{name: "just past 800px", makespan: 17, scale: 50, want: 2},
		{name: "at 1500px boundary", makespan: 30, scale: 50, want: 2},
		{name: "mid band", makespan: 50, scale: 50, want: 5},
		{name: "at 3000px boundary", makespan: 60, scale: 50, want: 5},
		{name: "wide chart", makespan: 100, scale: 50, want: 10},
		{name: "zoomed out keeps density", makespan: 100, scale: 5, want: 1},
		{name: "zoomed in raises step", makespan: 10, scale: 400, want: 10},
		{name: "zero makespan", makespan: 0, scale: 50, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TickStep(tt.makespan, tt.scale); got != tt.want {
				t.Errorf("TickStep(%d, %v) = %d, want %d", tt.makespan, tt.scale, got, tt.want)
			}
		})
	}
}

func TestPlanTicks(t *testing.T) {
	geo := DefaultGeometry()

	ticks := PlanTicks(geo, 10, 50) // width 500 -> step 1

	if len(ticks) != 11 {
		t.Fatalf("got %d ticks, want 11", len(ticks))
	}
	if ticks[0].Value != 0 || ticks[10].Value != 10 {
		t.Errorf("tick range = [%d, %d], want [0, 10]", ticks[0].Value, ticks[10].Value)
	}
	for i, tick := range ticks {
		wantX := geo.HeaderWidth + geo.Padding + float64(tick.Value)*50
		if tick.X != wantX {
			t.Errorf("tick %d X = %v, want %v", i, tick.X, wantX)
		}
	}
}

func TestPlanTicksFinalTickAtOrBeforeMakespan(t *testing.T) {
	geo := DefaultGeometry()

	// makespan 43 at scale 50 -> width 2150 -> step 5 -> last tick 40
	ticks := PlanTicks(geo, 43, 50)
	last := ticks[len(ticks)-1]
	if last.Value != 40 {
		t.Errorf("last tick = %d, want 40", last.Value)
	}
	for _, tick := range ticks {
		if tick.Value > 43 {
			t.Errorf("tick %d beyond makespan", tick.Value)
		}
	}
}

func TestPlanTicksZeroMakespan(t *testing.T) {
	ticks := PlanTicks(DefaultGeometry(), 0, 50)
	if len(ticks) != 1 || ticks[0].Value != 0 {
		t.Errorf("ticks = %+v, want single tick at 0", ticks)
	}
}
