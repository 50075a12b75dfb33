package dataset

import (
	"fmt"
	"io"

	"langton-ant/internal/highway"
)

// Summary aggregates a batch of results.
type Summary struct {
	Total        int
	Detected     int
	AverageSteps float64
	ByDirection  map[highway.Direction]int
}

// Summarize counts detections and averages the step count of the runs that
// confirmed a highway.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results), ByDirection: make(map[highway.Direction]int)}
	var steps int
	for _, r := range results {
		dir, ok := r.Direction()
		if !ok {
			continue
		}
		s.Detected++
		steps += r.StepsToHighway
		s.ByDirection[dir]++
	}
	if s.Detected > 0 {
		s.AverageSteps = float64(steps) / float64(s.Detected)
	}
	return s
}

// DetectionRate is the percentage of runs that confirmed a highway.
func (s Summary) DetectionRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return 100 * float64(s.Detected) / float64(s.Total)
}

// Write prints s in a fixed, human-readable layout.
func (s Summary) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Simulations:      %d\n", s.Total); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Highways found:   %d (%.1f%%)\n", s.Detected, s.DetectionRate()); err != nil {
		return err
	}
	if s.Detected == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "Average steps:    %.0f\n", s.AverageSteps); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Direction distribution:"); err != nil {
		return err
	}
	for _, dir := range highway.Directions {
		n := s.ByDirection[dir]
		pct := 100 * float64(n) / float64(s.Detected)
		if _, err := fmt.Fprintf(w, "  %-3s %5d (%.1f%%)\n", dir, n, pct); err != nil {
			return err
		}
	}
	return nil
}
