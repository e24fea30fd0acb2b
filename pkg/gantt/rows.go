package gantt

import (
	"fmt"
	"sort"

	"github.com/schedkit/schedkit/pkg/schedule"
)

// Row is one horizontal lane of the chart.
type Row struct {
	// Key is the machine-instance id operations use to address this row:
	// "<groupID>_<index>" under the group topology, the raw machine id
	// under the machine topology.
	Key string

	// GroupID and Instance identify the pool unit under the group
	// topology. Instance is zero-based; under the machine topology
	// GroupID equals Key and Instance is 0.
	GroupID  string
	Instance int

	// Label is the display text for the row header.
	Label string
}

// RowModel is the ordered lane list plus the key-to-index lookup. Row
// indices are 0-based, contiguous, and match emission order; both the axis
// drawing and deterministic vertical placement depend on that ordering.
type RowModel struct {
	rows  []Row
	index map[string]int
}

// BuildGroupRows unrolls machine groups into one row per instance. Groups
// are sorted by id ascending so the result is independent of caller order;
// each group contributes Quantity rows labeled "<name>-1" .. "<name>-N".
// Zero-quantity groups are excluded.
func BuildGroupRows(groups []schedule.MachineGroup) RowModel {
	sorted := make([]schedule.MachineGroup, len(groups))
	copy(sorted, groups)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	m := RowModel{index: make(map[string]int)}
	for _, g := range sorted {
		for i := 0; i < g.Quantity; i++ {
			name := g.Name
			if name == "" {
				name = g.ID
			}
			m.append(Row{
				Key:      schedule.InstanceKey(g.ID, i),
				GroupID:  g.ID,
				Instance: i,
				Label:    fmt.Sprintf("%s-%d", name, i+1),
			})
		}
	}
	return m
}

// BuildMachineRows derives rows from the distinct machine ids referenced by
// the operations, sorted ascending. This is the simpler one-machine-per-row
// topology; row labels are the raw machine ids.
func BuildMachineRows(ops []schedule.ScheduledOperation) RowModel {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, op := range ops {
		if _, ok := seen[op.MachineID]; ok {
			continue
		}
		seen[op.MachineID] = struct{}{}
		ids = append(ids, op.MachineID)
	}
	sort.Strings(ids)

	m := RowModel{index: make(map[string]int)}
	for _, id := range ids {
		m.append(Row{Key: id, GroupID: id, Label: id})
	}
	return m
}

func (m *RowModel) append(r Row) {
	m.index[r.Key] = len(m.rows)
	m.rows = append(m.rows, r)
}

// Len returns the total row count.
func (m RowModel) Len() int {
	return len(m.rows)
}

// Rows returns the lanes in display order.
func (m RowModel) Rows() []Row {
	return m.rows
}

// Index resolves a machine-instance key to its row index. The second
// return is false for unknown keys; callers skip such operations rather
// than fail, since stale solver data may reference machines that no longer
// exist.
func (m RowModel) Index(key string) (int, bool) {
	i, ok := m.index[key]
	return i, ok
}

// Row returns the lane at index i.
func (m RowModel) Row(i int) Row {
	return m.rows[i]
}
