package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/store"
)

// WriteWorkload prints the generated jobs.
func WriteWorkload(w io.Writer, jobs []*core.Process) {
	_, _ = fmt.Fprintf(w, "Workload (%d processes)\n", len(jobs))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process ID", "Arrival Time", "Burst Time", "Priority"})
	for _, p := range jobs {
		table.Append([]string{p.ID, strconv.Itoa(p.ArrivalTime), strconv.Itoa(p.BurstTime), strconv.Itoa(p.Priority)})
	}
	table.Render()
}

// WriteSchedule prints the title, Gantt line and per-job table of one run.
func WriteSchedule(w io.Writer, resp responses.ScheduleResponse) {
	title := resp.Algorithm
	if resp.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (time quantum %d)", resp.Algorithm, resp.TimeQuantum)
	}
	_, _ = fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("-", len(title)))
	_, _ = fmt.Fprintln(w, Gantt(resp.Timeline))

	rows := make([][]string, 0, len(resp.Details))
	for _, d := range resp.Details {
		rows = append(rows, []string{
			d.ProcessId,
			strconv.Itoa(d.Priority),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.TurnAroundTime),
			strconv.Itoa(d.CompletionTime),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", resp.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", resp.CpuThroughput)})
	table.Render()
}

// Gantt renders the timeline as "|0 A 2|2 B 4|", marking idle gaps with "--".
func Gantt(timeline []responses.SliceResponse) string {
	if len(timeline) == 0 {
		return "(empty gantt)"
	}
	var b strings.Builder
	last := 0
	for _, s := range timeline {
		if s.Start > last {
			fmt.Fprintf(&b, "|%d -- %d", last, s.Start)
		}
		fmt.Fprintf(&b, "|%d %s %d", s.Start, s.ProcessId, s.End)
		last = s.End
	}
	b.WriteString("|")
	return b.String()
}

// WriteSummary prints the average waiting and turnaround time of each run.
func WriteSummary(w io.Writer, results []responses.ScheduleResponse) error {
	if _, err := fmt.Fprint(w, "Scheduling algorithm performance summary:\n\n"); err != nil {
		return err
	}
	for _, r := range results {
		_, err := fmt.Fprintf(w, "%s average waiting time: %.2f\n%s average turnaround time: %.2f\n\n",
			r.Algorithm, r.AverageWaitingTime, r.Algorithm, r.AverageTurnAroundTime)
		if err != nil {
			return err
		}
	}
	return nil
}

// SaveSummary writes WriteSummary output to path.
func SaveSummary(path string, results []responses.ScheduleResponse) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSummary(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteRuns lists stored runs, newest first.
func WriteRuns(w io.Writer, runs []*store.Run) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Run", "Algorithm", "Quantum", "Jobs", "Avg Wait", "Avg Turnaround", "Created"})
	for _, r := range runs {
		quantum := "-"
		if r.TimeQuantum > 0 {
			quantum = strconv.Itoa(r.TimeQuantum)
		}
		table.Append([]string{
			r.ID,
			r.Algorithm,
			quantum,
			strconv.Itoa(r.JobCount),
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			r.CreatedAt.Format(time.RFC3339),
		})
	}
	table.Render()
}

// WriteRunJobs prints the per-job rows of a stored run.
func WriteRunJobs(w io.Writer, run *store.Run) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround"})
	for _, j := range run.Jobs {
		table.Append([]string{
			j.ProcessId,
			strconv.Itoa(j.Priority),
			strconv.Itoa(j.BurstTime),
			strconv.Itoa(j.ArrivalTime),
			strconv.Itoa(j.WaitingTime),
			strconv.Itoa(j.TurnAroundTime),
		})
	}
	table.Render()
}
