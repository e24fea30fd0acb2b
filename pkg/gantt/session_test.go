package gantt

import (
	"reflect"
	"strings"
	"testing"

	"github.com/schedkit/schedkit/pkg/schedule"
)

func testGroups() []schedule.MachineGroup {
	return []schedule.MachineGroup{
		{ID: "MG1", Name: "Lathe", Quantity: 2},
		{ID: "MG2", Name: "Mill", Quantity: 1},
	}
}

func testJobs() []schedule.Job {
	return []schedule.Job{
		{ID: "J1", Name: "Gear housing", Priority: 1},
		{ID: "J2", Name: "Shaft", Priority: 2},
	}
}

func rectsOf(cmds []Command) []Rect {
	var out []Rect
	for _, c := range cmds {
		if r, ok := c.(Rect); ok {
			out = append(out, r)
		}
	}
	return out
}

func labelsOf(cmds []Command, class LabelClass) []Label {
	var out []Label
	for _, c := range cmds {
		if l, ok := c.(Label); ok && l.Class == class {
			out = append(out, l)
		}
	}
	return out
}

func tooltipsOf(cmds []Command) []Tooltip {
	var out []Tooltip
	for _, c := range cmds {
		if tt, ok := c.(Tooltip); ok {
			out = append(out, tt)
		}
	}
	return out
}

func gridLinesOf(cmds []Command) []GridLine {
	var out []GridLine
	for _, c := range cmds {
		if g, ok := c.(GridLine); ok {
			out = append(out, g)
		}
	}
	return out
}

func TestDisplayScheduleBlockGeometry(t *testing.T) {
	s := NewSession()
	sched := &schedule.Schedule{
		Makespan: 11,
		ScheduledOperations: []schedule.ScheduledOperation{
			{JobID: "J1", OperationID: "O001", MachineID: "MG1_1", StartTime: 3, EndTime: 5},
		},
	}

	s.DisplaySchedule(sched, testJobs(), testGroups())

	rects := rectsOf(s.Commands())
	if len(rects) != 1 {
		t.Fatalf("got %d rects, want 1", len(rects))
	}
	r := rects[0]

	geo := DefaultGeometry()
	if r.Row != 1 {
		t.Errorf("Row = %d, want 1 (second instance of MG1)", r.Row)
	}
	if want := geo.HeaderWidth + geo.Padding + 3*geo.TimeScale; r.X != want {
		t.Errorf("X = %v, want %v", r.X, want)
	}
	if want := 2 * geo.TimeScale; r.W != want {
		t.Errorf("W = %v, want %v", r.W, want)
	}
	if want := geo.Padding + geo.TimeAxisHeight + 1*geo.RowHeight + geo.BlockVPad; r.Y != want {
		t.Errorf("Y = %v, want %v", r.Y, want)
	}
	if want := geo.RowHeight - 2*geo.BlockVPad; r.H != want {
		t.Errorf("H = %v, want %v", r.H, want)
	}
	if r.Ref.JobID != "J1" || r.Ref.OperationID != "O001" || r.Ref.MachineKey != "MG1_1" {
		t.Errorf("Ref = %+v", r.Ref)
	}
}

func TestDisplayScheduleSkipsUnknownMachine(t *testing.T) {
	s := NewSession()
	sched := &schedule.Schedule{
		Makespan: 5,
		ScheduledOperations: []schedule.ScheduledOperation{
			{JobID: "J1", OperationID: "O001", MachineID: "MG9_0", StartTime: 0, EndTime: 2},
			{JobID: "J1", OperationID: "O002", MachineID: "MG1_5", StartTime: 0, EndTime: 2},
			{JobID: "J2", OperationID: "O003", MachineID: "MG1_0", StartTime: 0, EndTime: 2},
		},
	}

	s.DisplaySchedule(sched, testJobs(), testGroups())

	if got := len(rectsOf(s.Commands())); got != 1 {
		t.Errorf("got %d rects, want 1 (two ops skipped)", got)
	}
	if s.SkippedOperations() != 2 {
		t.Errorf("SkippedOperations = %d, want 2", s.SkippedOperations())
	}
}

func TestDisplayScheduleEmptyInputs(t *testing.T) {
	tests := []struct {
		name   string
		sched  *schedule.Schedule
		groups []schedule.MachineGroup
	}{
		{name: "nil schedule", sched: nil, groups: testGroups()},
		{name: "no operations", sched: &schedule.Schedule{Makespan: 5}, groups: testGroups()},
		{
			name: "no groups",
			sched: &schedule.Schedule{Makespan: 5, ScheduledOperations: []schedule.ScheduledOperation{
				{JobID: "J1", MachineID: "MG1_0", StartTime: 0, EndTime: 1},
			}},
			groups: nil,
		},
		{
			name: "all groups zero quantity",
			sched: &schedule.Schedule{Makespan: 5, ScheduledOperations: []schedule.ScheduledOperation{
				{JobID: "J1", MachineID: "MG1_0", StartTime: 0, EndTime: 1},
			}},
			groups: []schedule.MachineGroup{{ID: "MG1", Name: "Lathe", Quantity: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			s.DisplaySchedule(tt.sched, testJobs(), tt.groups)

			if s.Populated() {
				t.Error("session should be empty")
			}
			if len(s.Commands()) != 0 {
				t.Errorf("got %d commands, want 0", len(s.Commands()))
			}
			if w, h := s.ContentSize(); w != 0 || h != 0 {
				t.Errorf("ContentSize = (%v, %v), want zero", w, h)
			}
		})
	}
}

func TestDisplayScheduleIdempotent(t *testing.T) {
	sched := &schedule.Schedule{
		Makespan: 11,
		ScheduledOperations: []schedule.ScheduledOperation{
			{JobID: "J1", OperationID: "O001", MachineID: "MG1_0", StartTime: 0, EndTime: 3},
			{JobID: "J2", OperationID: "O004", MachineID: "MG2_0", StartTime: 1, EndTime: 4},
			{JobID: "J1", OperationID: "O002", MachineID: "MG1_1", StartTime: 3, EndTime: 7},
		},
	}

	s := NewSession()
	s.DisplaySchedule(sched, testJobs(), testGroups())
	first := append([]Command(nil), s.Commands()...)

	s.DisplaySchedule(sched, testJobs(), testGroups())
	second := s.Commands()

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated DisplaySchedule with identical arguments should emit identical commands")
	}
}

func TestColorStableAcrossRedisplay(t *testing.T) {
	sched := &schedule.Schedule{
		Makespan: 5,
		ScheduledOperations: []schedule.ScheduledOperation{
			{JobID: "J1", OperationID: "O001", MachineID: "MG1_0", StartTime: 0, EndTime: 2},
		},
	}

	s := NewSession()
	s.DisplaySchedule(sched, testJobs(), testGroups())
	fill1 := rectsOf(s.Commands())[0].Fill

	// Re-render (e.g. a zoom) must not rotate the palette.
	s.DisplaySchedule(sched, testJobs(), testGroups())
	fill2 := rectsOf(s.Commands())[0].Fill

	if fill1 != fill2 {
		t.Errorf("fill changed across re-display: %s != %s", fill1, fill2)
	}
}

func TestClearResetsColorAssignment(t *testing.T) {
	schedJ2 := &schedule.Schedule{
		Makespan: 5,
		ScheduledOperations: []schedule.ScheduledOperation{
			{JobID: "J2", OperationID: "O004", MachineID: "MG1_0", StartTime: 0, EndTime: 2},
		},
	}
	schedJ1First := &schedule.Schedule{
		Makespan: 5,
		ScheduledOperations: []schedule.ScheduledOperation{
			{JobID: "J1", OperationID: "O001", MachineID: "MG1_0", StartTime: 0, EndTime: 2},
			{JobID: "J2", OperationID: "O004", MachineID: "MG2_0", StartTime: 0, EndTime: 2},
		},
	}

	s := NewSession()
	s.DisplaySchedule(schedJ2, testJobs(), testGroups())
	j2Before := rectsOf(s.Commands())[0].Fill

	s.Clear()
	if s.Populated() || len(s.Commands()) != 0 {
		t.Fatal("Clear should empty the session")
	}

	// After Clear, assignment restarts at palette index 0 in
	// first-encountered order: J1 now takes the color J2 had.
	s.DisplaySchedule(schedJ1First, testJobs(), testGroups())
	rects := rectsOf(s.Commands())
	if rects[0].Fill != j2Before {
		t.Errorf("J1 should restart at palette index 0: %s != %s", rects[0].Fill, j2Before)
	}
	if rects[1].Fill == j2Before {
		t.Error("J2 should now hold palette index 1")
	}
}

func TestSetTimeScaleRelayout(t *testing.T) {
	sched := &schedule.Schedule{
		Makespan: 10,
		ScheduledOperations: []schedule.ScheduledOperation{
			{JobID: "J1", OperationID: "O001", MachineID: "MG1_0", StartTime: 2, EndTime: 4},
		},
	}

	s := NewSession()
	s.DisplaySchedule(sched, testJobs(), testGroups())
	w1, _ := s.ContentSize()

	s.SetTimeScale(25)

	if !s.Populated() {
		t.Fatal("session should stay populated after SetTimeScale")
	}
	r := rectsOf(s.Commands())[0]
	geo := DefaultGeometry()
	if want := geo.HeaderWidth + geo.Padding + 2*25.0; r.X != want {
		t.Errorf("X after rescale = %v, want %v", r.X, want)
	}
	if r.W != 2*25.0 {
		t.Errorf("W after rescale = %v, want %v", r.W, 2*25.0)
	}
	w2, _ := s.ContentSize()
	if w2 >= w1 {
		t.Errorf("content width should shrink when zooming out: %v >= %v", w2, w1)
	}
}

func TestSetTimeScaleIgnoresInvalid(t *testing.T) {
	s := NewSession()
	s.SetTimeScale(-3)
	if s.TimeScale() != DefaultGeometry().TimeScale {
		t.Errorf("TimeScale = %v, want default", s.TimeScale())
	}
	s.SetTimeScale(0)
	if s.TimeScale() != DefaultGeometry().TimeScale {
		t.Errorf("TimeScale = %v, want default", s.TimeScale())
	}
}

func TestSetTimeScaleBeforeDisplayEmitsNothing(t *testing.T) {
	s := NewSession()
	s.SetTimeScale(10)
	if len(s.Commands()) != 0 || s.Populated() {
		t.Error("SetTimeScale on an empty session should not emit commands")
	}
}

func TestWidthFloorForZeroDuration(t *testing.T) {
	s := NewSession()
	sched := &schedule.Schedule{
		Makespan: 5,
		ScheduledOperations: []schedule.ScheduledOperation{
			{JobID: "J1", OperationID: "O001", MachineID: "MG1_0", StartTime: 2, EndTime: 2},
		},
	}

	s.DisplaySchedule(sched, testJobs(), testGroups())

	r := rectsOf(s.Commands())[0]
	if r.W != 1.0 {
		t.Errorf("zero-duration width = %v, want floor 1.0", r.W)
	}
	if len(tooltipsOf(s.Commands())) != 1 {
		t.Error("zero-duration block must still carry a tooltip")
	}
}

func TestXNonDecreasingInStartTime(t *testing.T) {
	ops := []schedule.ScheduledOperation{
		{JobID: "J1", OperationID: "O1", MachineID: "MG1_0", StartTime: 0, EndTime: 2},
		{JobID: "J1", OperationID: "O2", MachineID: "MG1_0", StartTime: 2, EndTime: 3},
		{JobID: "J2", OperationID: "O3", MachineID: "MG1_1", StartTime: 5, EndTime: 9},
		{JobID: "J2", OperationID: "O4", MachineID: "MG2_0", StartTime: 9, EndTime: 10},
	}
	s := NewSession()
	s.DisplaySchedule(&schedule.Schedule{Makespan: 10, ScheduledOperations: ops}, testJobs(), testGroups())

	rects := rectsOf(s.Commands())
	for i := 1; i < len(rects); i++ {
		if ops[i].StartTime >= ops[i-1].StartTime && rects[i].X < rects[i-1].X {
			t.Errorf("x order violates start-time order at op %d", i)
		}
		if rects[i].W < 1.0 {
			t.Errorf("rect %d width %v below floor", i, rects[i].W)
		}
	}
}

func TestAntiOverlapClampMachineTopology(t *testing.T) {
	s := NewSession(WithTopology(TopologyMachine))
	sched := &schedule.Schedule{
		Makespan: 8,
		ScheduledOperations: []schedule.ScheduledOperation{
			{JobID: "J1", OperationID: "O1", MachineID: "M001", StartTime: 0, EndTime: 5},
			{JobID: "J2", OperationID: "O2", MachineID: "M001", StartTime: 3, EndTime: 8},
		},
	}

	s.DisplaySchedule(sched, testJobs(), nil)

	rects := rectsOf(s.Commands())
	if len(rects) != 2 {
		t.Fatalf("got %d rects, want 2", len(rects))
	}
	first, second := rects[0], rects[1]
	if second.X < first.X+first.W {
		t.Errorf("second block overlaps first: %v < %v", second.X, first.X+first.W)
	}
	gap := DefaultGeometry().OverlapGap
	if want := first.X + first.W + gap; second.X != want {
		t.Errorf("clamped X = %v, want %v", second.X, want)
	}
}

func TestNoClampUnderGroupTopology(t *testing.T) {
	// Degenerate double booking of one instance: blocks may overlap, and
	// schedule order decides paint order.
	s := NewSession()
	sched := &schedule.Schedule{
		Makespan: 8,
		ScheduledOperations: []schedule.ScheduledOperation{
			{JobID: "J1", OperationID: "O1", MachineID: "MG1_0", StartTime: 0, EndTime: 5},
			{JobID: "J2", OperationID: "O2", MachineID: "MG1_0", StartTime: 3, EndTime: 8},
		},
	}

	s.DisplaySchedule(sched, testJobs(), testGroups())

	rects := rectsOf(s.Commands())
	geo := DefaultGeometry()
	if want := geo.HeaderWidth + geo.Padding + 3*geo.TimeScale; rects[1].X != want {
		t.Errorf("group topology must not clamp: X = %v, want %v", rects[1].X, want)
	}
}

func TestLabelFitDecision(t *testing.T) {
	s := NewSession()
	sched := &schedule.Schedule{
		Makespan: 10,
		ScheduledOperations: []schedule.ScheduledOperation{
			// 2 time units * 50 px = 100 px: label fits
			{JobID: "J1", OperationID: "O001", MachineID: "MG1_0", StartTime: 0, EndTime: 2},
			// 1 time unit * 50 px = 50 px: too narrow for "Job: J2"
			{JobID: "J2", OperationID: "O002", MachineID: "MG1_1", StartTime: 0, EndTime: 1},
		},
	}

	s.DisplaySchedule(sched, testJobs(), testGroups())

	titles := labelsOf(s.Commands(), LabelBlockTitle)
	details := labelsOf(s.Commands(), LabelBlockDetail)
	if len(titles) != 1 || len(details) != 1 {
		t.Fatalf("got %d titles / %d details, want 1/1", len(titles), len(details))
	}
	if titles[0].Ref.JobID != "J1" {
		t.Errorf("labeled block = %s, want J1", titles[0].Ref.JobID)
	}

	// Both blocks keep their tooltips regardless of label fit.
	tips := tooltipsOf(s.Commands())
	if len(tips) != 2 {
		t.Fatalf("got %d tooltips, want 2", len(tips))
	}
	for _, tip := range tips {
		if tip.Text == "" {
			t.Error("tooltip text must be non-empty")
		}
	}
}

func TestTooltipContent(t *testing.T) {
	s := NewSession()
	sched := &schedule.Schedule{
		Makespan: 11,
		ScheduledOperations: []schedule.ScheduledOperation{
			{JobID: "J1", OperationID: "O001", MachineID: "MG1_1", StartTime: 3, EndTime: 5},
		},
	}

	s.DisplaySchedule(sched, testJobs(), testGroups())

	tip := tooltipsOf(s.Commands())[0]
	for _, want := range []string{
		"Job ID: J1",
		"Job Name: Gear housing",
		"Operation ID: O001",
		"Machine: Lathe #2",
		"Start Time: 3",
		"End Time: 5",
		"Duration: 2",
	} {
		if !strings.Contains(tip.Text, want) {
			t.Errorf("tooltip missing %q:\n%s", want, tip.Text)
		}
	}
}

func TestTooltipRawMachineID(t *testing.T) {
	s := NewSession(WithTopology(TopologyMachine))
	sched := &schedule.Schedule{
		Makespan: 5,
		ScheduledOperations: []schedule.ScheduledOperation{
			{JobID: "J9", OperationID: "O001", MachineID: "M001", StartTime: 0, EndTime: 2},
		},
	}

	s.DisplaySchedule(sched, nil, nil)

	tip := tooltipsOf(s.Commands())[0]
	if !strings.Contains(tip.Text, "Machine ID: M001") {
		t.Errorf("tooltip should show the raw machine id:\n%s", tip.Text)
	}
	if strings.Contains(tip.Text, "Job Name:") {
		t.Error("unknown job should omit the name line")
	}
}

func TestContentSize(t *testing.T) {
	s := NewSession()
	sched := &schedule.Schedule{
		Makespan: 11,
		ScheduledOperations: []schedule.ScheduledOperation{
			{JobID: "J1", OperationID: "O001", MachineID: "MG1_0", StartTime: 0, EndTime: 3},
		},
	}

	s.DisplaySchedule(sched, testJobs(), testGroups())

	geo := DefaultGeometry()
	w, h := s.ContentSize()
	if want := geo.HeaderWidth + 11*geo.TimeScale + 2*geo.Padding; w != want {
		t.Errorf("content width = %v, want %v", w, want)
	}
	// 3 rows: MG1 x2, MG2 x1
	if want := geo.TimeAxisHeight + 3*geo.RowHeight + 2*geo.Padding; h != want {
		t.Errorf("content height = %v, want %v", h, want)
	}
}

func TestGridLinesToggle(t *testing.T) {
	sched := &schedule.Schedule{
		Makespan: 5,
		ScheduledOperations: []schedule.ScheduledOperation{
			{JobID: "J1", OperationID: "O001", MachineID: "MG1_0", StartTime: 0, EndTime: 2},
		},
	}

	withGrid := NewSession()
	withGrid.DisplaySchedule(sched, testJobs(), testGroups())
	if got := len(gridLinesOf(withGrid.Commands())); got != 6 {
		t.Errorf("got %d grid lines, want 6 (ticks 0..5)", got)
	}

	noGrid := NewSession(WithGridLines(false))
	noGrid.DisplaySchedule(sched, testJobs(), testGroups())
	if got := len(gridLinesOf(noGrid.Commands())); got != 0 {
		t.Errorf("got %d grid lines, want 0", got)
	}
	// Axis labels remain either way.
	if got := len(labelsOf(noGrid.Commands(), LabelAxis)); got != 6 {
		t.Errorf("got %d axis labels, want 6", got)
	}
}

func TestRowLabels(t *testing.T) {
	sched := &schedule.Schedule{
		Makespan: 5,
		ScheduledOperations: []schedule.ScheduledOperation{
			{JobID: "J1", OperationID: "O001", MachineID: "MG1_0", StartTime: 0, EndTime: 2},
		},
	}

	s := NewSession()
	s.DisplaySchedule(sched, testJobs(), testGroups())

	rows := labelsOf(s.Commands(), LabelRow)
	if len(rows) != 3 {
		t.Fatalf("got %d row labels, want 3", len(rows))
	}
	for i, want := range []string{"Lathe-1", "Lathe-2", "Mill-1"} {
		if rows[i].Text != want {
			t.Errorf("row label %d = %q, want %q", i, rows[i].Text, want)
		}
	}
}
