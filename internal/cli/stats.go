package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/schedkit/schedkit/pkg/schedule"
)

// newStatsCmd creates the stats command for inspecting a solved schedule
// without rendering it.
func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [schedule.json]",
		Short: "Print makespan, utilization, and flow-time statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.Context(), args[0])
		},
	}
	return cmd
}

// runStats loads the schedule and prints its summary statistics.
func runStats(ctx context.Context, input string) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Loading %s", input)

	sched, err := schedule.ReadFile(input)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render("Schedule statistics"))
	printNewline()

	printKeyValue("Makespan", StyleNumber.Render(fmt.Sprintf("%d", sched.EffectiveMakespan())))
	printKeyValue("Operations", fmt.Sprintf("%d", len(sched.ScheduledOperations)))
	printKeyValue("Jobs", fmt.Sprintf("%d", countDistinctJobs(sched)))
	printKeyValue("Machines", fmt.Sprintf("%d", countDistinctMachines(sched)))
	if sched.AverageFlowTime > 0 {
		printKeyValue("Average flow time", fmt.Sprintf("%.2f", sched.AverageFlowTime))
	}

	if len(sched.MachineUtilization) > 0 {
		printNewline()
		fmt.Println(StyleTitle.Render("Machine utilization"))
		for _, key := range sortedUtilizationKeys(sched.MachineUtilization) {
			printKeyValue(key, formatUtilization(sched.MachineUtilization[key]))
		}
	}

	printNewline()
	printNextStep("Render this schedule", "schedkit render "+input)
	return nil
}

// countDistinctJobs returns the number of distinct job ids in the schedule.
func countDistinctJobs(s *schedule.Schedule) int {
	seen := map[string]bool{}
	for _, op := range s.ScheduledOperations {
		seen[op.JobID] = true
	}
	return len(seen)
}

// countDistinctMachines returns the number of distinct machine ids.
func countDistinctMachines(s *schedule.Schedule) int {
	seen := map[string]bool{}
	for _, op := range s.ScheduledOperations {
		seen[op.MachineID] = true
	}
	return len(seen)
}

// sortedUtilizationKeys returns the machine ids in stable display order.
func sortedUtilizationKeys(util map[string]float64) []string {
	keys := make([]string, 0, len(util))
	for k := range util {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatUtilization renders a utilization ratio as a percentage.
// Values above 1 are assumed to already be percentages.
func formatUtilization(v float64) string {
	if v <= 1 {
		v *= 100
	}
	return fmt.Sprintf("%.1f%%", v)
}
