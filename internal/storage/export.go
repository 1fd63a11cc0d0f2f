package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/skidsim/internal/sim"
)

type ExportData struct {
	ID       string             `json:"id"`
	Kp       float64            `json:"kp"`
	Ki       float64            `json:"ki"`
	Kd       float64            `json:"kd"`
	Target   float64            `json:"target"`
	Dt       float64            `json:"dt"`
	Duration float64            `json:"duration"`
	Steps    int                `json:"steps"`
	Metrics  map[string]float64 `json:"metrics"`
	Samples  []sim.Sample       `json:"samples"`
}

// ExportJSON writes a run as a single self-describing JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, samples []sim.Sample) error {
	data := ExportData{
		ID:       meta.ID,
		Kp:       meta.Kp,
		Ki:       meta.Ki,
		Kd:       meta.Kd,
		Target:   meta.Target,
		Dt:       meta.Dt,
		Duration: meta.Duration,
		Steps:    len(samples),
		Metrics:  meta.Metrics,
		Samples:  samples,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV writes the sample series in the same column layout used on disk.
func ExportCSV(w io.Writer, samples []sim.Sample) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(sampleHeader); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.Time, 'f', 6, 64),
			strconv.FormatFloat(s.Error, 'f', 6, 64),
			strconv.FormatFloat(s.Output, 'f', 6, 64),
			strconv.FormatFloat(s.Heading, 'f', 6, 64),
			strconv.FormatFloat(s.Desired, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
