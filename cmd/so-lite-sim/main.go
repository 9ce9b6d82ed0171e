package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Gutierrez101/so-lite/pkg/kernel"
	"github.com/Gutierrez101/so-lite/pkg/memory"
	"github.com/Gutierrez101/so-lite/pkg/scenario"
)

func main() {
	root := &cobra.Command{
		Use:   "so-lite-sim",
		Short: "Educational operating-system simulator engine",
		Long: `so-lite-sim drives the so-lite kernel engine: a logical-clock
discrete-event simulation of process scheduling, memory management, I/O
devices and process synchronization, without touching a real OS.`,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newScenarioCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scenario file and print its Gantt timeline and metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				return fmt.Errorf("run: --scenario is required")
			}
			return runScenario(path)
		},
	}
	cmd.Flags().StringVarP(&path, "scenario", "s", "", "path to a scenario YAML file")
	return cmd
}

func newScenarioCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Load and validate a scenario file without running it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				return fmt.Errorf("scenario: --file is required")
			}
			s, err := scenario.Load(path)
			if err != nil {
				return err
			}
			fmt.Printf("scenario %q: %d process(es), memory=%s, scheduler=%s\n",
				s.Name, len(s.Processes), s.MemoryMode, s.Scheduler)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "path to a scenario YAML file")
	return cmd
}

func runScenario(path string) error {
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}

	k := kernel.New()
	k.Initialize(memory.Mode(s.MemoryMode), s.TotalMem)

	for _, p := range s.Processes {
		if _, err := k.CreateProcess(p.Name, p.Priority, p.Burst, p.Memory); err != nil {
			slog.Warn("process rejected", "name", p.Name, "err", err)
		}
	}

	steps := s.Steps
	if steps <= 0 {
		steps = 100
	}

	result, err := k.Simulate(s.Scheduler, s.Quantum, steps, s.DiskScheduler())
	if err != nil {
		return err
	}

	printTimeline(result.Timeline)
	printMetrics(result)
	return nil
}

func printTimeline(segments []kernel.TimelineSegment) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "START\tDURATION\tPID\tPROCESS\tPRIORITY")
	fmt.Fprintln(tw, "-----\t--------\t---\t-------\t--------")
	for _, seg := range segments {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%d\n", seg.Start, seg.Duration, seg.Pid, seg.Name, seg.Priority)
	}
	tw.Flush()
}

func printMetrics(result kernel.Result) {
	fmt.Println()
	fmt.Printf("avg waiting time:     %.2f\n", result.CPU.AvgWaitingTime)
	fmt.Printf("avg turnaround time:  %.2f\n", result.CPU.AvgTurnaroundTime)
	fmt.Printf("avg response time:    %.2f\n", result.CPU.AvgResponseTime)
	fmt.Printf("throughput:           %d\n", result.CPU.Throughput)
	fmt.Printf("context switches:     %d\n", result.CPU.TotalContextSwitches)

	if result.Memory.PageAccesses > 0 {
		fmt.Printf("page faults:          %d / %d (%.1f%% hit rate)\n",
			result.Memory.PageFaults, result.Memory.PageAccesses, result.Memory.HitRate)
	}

	fmt.Printf("io requests:          %d completed, %d pending\n",
		result.IO.CompletedRequests, result.IO.PendingRequests)
}
