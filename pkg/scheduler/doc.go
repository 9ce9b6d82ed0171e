// Package scheduler implements the CPU scheduler: a single
// ScheduleStep entry point dispatching to one of four policies (FCFS,
// SJF, Round Robin, preemptive Priority) over a shared
// *process.Table, plus aggregate Metrics() over terminated processes.
//
// Every policy advances exactly one logical tick per call. Policy
// names are uppercase-normalized; an unrecognized name falls back to
// FCFS, per spec.
package scheduler
