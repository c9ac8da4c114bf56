package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
)

var ErrUnsupportedFormat = errors.New("unsupported workload file format")

var csvHeader = []string{"Process ID", "Arrival Time", "Burst Time", "Priority"}

// WriteCSV writes one row per job under csvHeader.
func WriteCSV(w io.Writer, jobs []*core.Process) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range jobs {
		row := []string{
			p.ID,
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.Priority),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses rows written by WriteCSV. The header row is optional and the
// priority column may be omitted.
func ReadCSV(r io.Reader) ([]*core.Process, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) > 0 && strings.EqualFold(strings.TrimSpace(rows[0][0]), csvHeader[0]) {
		rows = rows[1:]
	}

	jobs := make([]*core.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("csv row %d: want at least 3 columns, got %d", i+1, len(row))
		}
		nums := make([]int, 3)
		for c := 1; c < len(row) && c <= 3; c++ {
			n, err := strconv.Atoi(strings.TrimSpace(row[c]))
			if err != nil {
				return nil, fmt.Errorf("csv row %d column %q: %w", i+1, csvHeader[c], err)
			}
			nums[c-1] = n
		}
		jobs = append(jobs, core.NewProcess(strings.TrimSpace(row[0]), nums[0], nums[1], nums[2]))
	}
	return jobs, nil
}

type yamlWorkload struct {
	Jobs []requests.Job `yaml:"jobs"`
}

func WriteYAML(w io.Writer, jobs []*core.Process) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlWorkload{Jobs: requests.FromProcesses(jobs)}); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func ReadYAML(r io.Reader) ([]*core.Process, error) {
	var doc yamlWorkload
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	req := requests.ScheduleRequests{Jobs: doc.Jobs}
	return req.Processes(), nil
}

// Load reads a workload file, picking the format from the extension.
func Load(path string) ([]*core.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f)
	case ".yaml", ".yml":
		return ReadYAML(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Save writes a workload file, picking the format from the extension.
func Save(path string, jobs []*core.Process) error {
	var write func(io.Writer, []*core.Process) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		write = WriteCSV
	case ".yaml", ".yml":
		write = WriteYAML
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, jobs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
