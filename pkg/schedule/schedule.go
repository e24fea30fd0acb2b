// Package schedule defines the solver-facing data model for job-shop
// scheduling results.
//
// The types mirror the wire format of the scheduling backend: a solved
// [Schedule] assigns each operation to one machine-group instance over an
// integer time interval. All values are treated as read-only inputs by the
// rest of the module; nothing here mutates them after decoding.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Schedule is one solver result: a time-indexed assignment of operations
// to machine instances.
type Schedule struct {
	Makespan            int                  `json:"makespan"`
	ScheduledOperations []ScheduledOperation `json:"scheduled_operations"`
	MachineUtilization  map[string]float64   `json:"machine_utilization,omitempty"`
	AverageFlowTime     float64              `json:"average_flow_time,omitempty"`
}

// ScheduledOperation places one operation of one job on a machine instance
// for the half-open interval [StartTime, EndTime).
type ScheduledOperation struct {
	JobID       string `json:"job_id"`
	OperationID string `json:"operation_id"`
	MachineID   string `json:"machine_id"`
	StartTime   int    `json:"start_time"`
	EndTime     int    `json:"end_time"`
}

// Job describes one job of the scheduling problem. Only ID, Name and
// Priority are consumed downstream; the operation list exists for
// label and tooltip enrichment.
type Job struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Priority   int         `json:"priority"`
	Operations []Operation `json:"operation_list,omitempty"`
}

// Operation is one step of a job's routing.
type Operation struct {
	ID             string   `json:"id"`
	MachineID      string   `json:"machine_id"`
	ProcessingTime int      `json:"processing_time"`
	Predecessors   []string `json:"predecessors,omitempty"`
}

// MachineGroup is a named pool of interchangeable machine instances.
// Quantity is the number of instances; a zero-quantity group contributes
// no rows to any chart.
type MachineGroup struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Duration returns the operation's length in solver time units.
// Degenerate inputs can make this zero or negative; callers are expected
// to clamp, not reject.
func (op ScheduledOperation) Duration() int {
	return op.EndTime - op.StartTime
}

// InstanceKey builds the composite machine-instance id "<groupID>_<index>"
// used by scheduled operations, with a zero-based instance index.
func InstanceKey(groupID string, index int) string {
	return fmt.Sprintf("%s_%d", groupID, index)
}

// SplitInstanceKey decomposes a composite machine-instance id into its
// group id and zero-based instance index. The second return is false when
// the id does not end in "_<number>"; such ids come from the simpler
// one-machine-per-row topology and are used verbatim there.
func SplitInstanceKey(key string) (groupID string, index int, ok bool) {
	i := strings.LastIndex(key, "_")
	if i <= 0 || i == len(key)-1 {
		return "", 0, false
	}
	n, err := strconv.Atoi(key[i+1:])
	if err != nil || n < 0 {
		return "", 0, false
	}
	return key[:i], n, true
}

// EffectiveMakespan returns the declared makespan, or the latest operation
// end time when the declared value is missing or smaller than the data.
// Solvers occasionally report a stale makespan after partial re-solves;
// the chart must still cover every block.
func (s *Schedule) EffectiveMakespan() int {
	m := s.Makespan
	for _, op := range s.ScheduledOperations {
		if op.EndTime > m {
			m = op.EndTime
		}
	}
	return m
}

// JobByID returns the job with the given id from jobs, or nil.
func JobByID(jobs []Job, id string) *Job {
	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i]
		}
	}
	return nil
}

// GroupByID returns the machine group with the given id, or nil.
func GroupByID(groups []MachineGroup, id string) *MachineGroup {
	for i := range groups {
		if groups[i].ID == id {
			return &groups[i]
		}
	}
	return nil
}
