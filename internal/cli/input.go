package cli

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

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/requests"
)

var ErrUnsupportedFormat = errors.New("unsupported process file format")

// LoadProcesses reads a process list. CSV rows are id,arrivalTime,burstTime with an
// optional header; JSON and YAML hold either a list or {processes: [...]}.
func LoadProcesses(path string) ([]core.Process, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open process file: %w", err)
	}
	defer f.Close()

	if ext == ".csv" {
		return loadCSV(f)
	}
	// yaml is a superset of json
	return loadDocument(f)
}

func loadCSV(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	processes := make([]core.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("row %d: expected id,arrivalTime,burstTime", i+1)
		}
		if i == 0 && isHeader(row) {
			continue
		}
		arrival, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("row %d: arrival time: %w", i+1, err)
		}
		burst, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("row %d: burst time: %w", i+1, err)
		}
		processes = append(processes, core.Process{
			ID:          strings.TrimSpace(row[0]),
			ArrivalTime: arrival,
			BurstTime:   burst,
		})
	}
	return processes, nil
}

// isHeader reports whether row names the id, arrival and burst columns.
func isHeader(row []string) bool {
	arrival := strings.ToLower(strings.TrimSpace(row[1]))
	burst := strings.ToLower(strings.TrimSpace(row[2]))
	return strings.HasPrefix(arrival, "arrival") && strings.HasPrefix(burst, "burst")
}

func loadDocument(r io.Reader) ([]core.Process, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse process file: %w", err)
	}

	doc := &node
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}

	switch doc.Kind {
	case yaml.SequenceNode:
		var processes []core.Process
		if err := doc.Decode(&processes); err != nil {
			return nil, fmt.Errorf("decode processes: %w", err)
		}
		return processes, nil
	case yaml.MappingNode:
		var request requests.ScheduleRequest
		if err := doc.Decode(&request); err != nil {
			return nil, fmt.Errorf("decode processes: %w", err)
		}
		return request.Processes, nil
	}
	return nil, errors.New("process file must contain a list of processes")
}
