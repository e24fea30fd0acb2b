package schedule

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadJSON decodes a schedule from r.
func ReadJSON(r io.Reader) (*Schedule, error) {
	var s Schedule
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}
	return &s, nil
}

// ReadFile loads a schedule from a JSON file at path.
func ReadFile(path string) (*Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// ReadJobsFile loads a job list from a JSON file at path. The file holds
// either a bare array or an object with a "jobs" key, matching the two
// shapes the backend emits.
func ReadJobsFile(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	var jobs []Job
	if err := json.Unmarshal(data, &jobs); err == nil {
		return jobs, nil
	}
	var wrapped struct {
		Jobs []Job `json:"jobs"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("decode jobs %s: %w", path, err)
	}
	return wrapped.Jobs, nil
}

// ReadMachineGroupsFile loads a machine-group list from a JSON file at
// path, accepting a bare array or an object with a "machine_groups" key.
func ReadMachineGroupsFile(path string) ([]MachineGroup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	var groups []MachineGroup
	if err := json.Unmarshal(data, &groups); err == nil {
		return groups, nil
	}
	var wrapped struct {
		Groups []MachineGroup `json:"machine_groups"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("decode machine groups %s: %w", path, err)
	}
	return wrapped.Groups, nil
}
