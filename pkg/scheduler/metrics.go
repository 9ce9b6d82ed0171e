package scheduler

import "github.com/Gutierrez101/so-lite/pkg/process"

// Metrics is the aggregate CPU scheduling report spec.md section 6
// requires, computed only over TERMINATED processes.
type Metrics struct {
	AvgWaitingTime       float64
	AvgTurnaroundTime    float64
	AvgResponseTime      float64
	Throughput           int
	TotalContextSwitches int
}

// Metrics aggregates over every TERMINATED PCB in the table. Response
// time is averaged only over pids whose response_time >= 0 (i.e. that
// were actually scheduled at least once). Returns zeros when there are
// no terminated PCBs.
func (s *Scheduler) Metrics() Metrics {
	var m Metrics

	var sumWaiting, sumTurnaround, sumResponse float64
	var responseCount int

	for _, pcb := range s.table.All() {
		if pcb.State != process.Terminated {
			continue
		}
		m.Throughput++
		sumWaiting += float64(pcb.WaitingTime)
		sumTurnaround += float64(pcb.TurnaroundTime)
		m.TotalContextSwitches += pcb.ContextSwitches

		if pcb.ResponseTime >= 0 {
			sumResponse += float64(pcb.ResponseTime)
			responseCount++
		}
	}

	if m.Throughput == 0 {
		return Metrics{}
	}

	n := float64(m.Throughput)
	m.AvgWaitingTime = sumWaiting / n
	m.AvgTurnaroundTime = sumTurnaround / n
	if responseCount > 0 {
		m.AvgResponseTime = sumResponse / float64(responseCount)
	}
	return m
}
