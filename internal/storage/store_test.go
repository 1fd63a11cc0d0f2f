package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/skidsim/internal/sim"
)

func testSamples() []sim.Sample {
	return []sim.Sample{
		{Time: 0.1, Error: 90, Output: 180, Heading: 4.5, Desired: 90},
		{Time: 0.2, Error: 85.5, Output: 85.5, Heading: 9.0, Desired: 90},
		{Time: 0.3, Error: 81, Output: 81, Heading: 13.05, Desired: 90},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	meta := RunMetadata{
		Kp: 1.0, Kd: 0.1, Target: 90, Dt: 0.1, Duration: 30,
		MaxRate: 45, Final: 89.9,
		Metrics: map[string]float64{"overshoot": 0},
	}

	runID, err := st.Save(meta, testSamples())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.ID != runID {
		t.Errorf("expected id %s, got %s", runID, loaded.ID)
	}
	if loaded.Kp != 1.0 || loaded.Target != 90 {
		t.Errorf("metadata mismatch: %+v", loaded)
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(samples))
	}
	if math.Abs(samples[1].Heading-9.0) > 1e-6 {
		t.Errorf("sample mismatch: %+v", samples[1])
	}
}

func TestListEmptyDir(t *testing.T) {
	st := New(t.TempDir() + "/does-not-exist-yet")

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	st.Init()

	if _, err := st.Save(RunMetadata{Kp: 1}, testSamples()); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	meta := &RunMetadata{ID: "run_1", Kp: 1.0, Target: 90, Dt: 0.1, Duration: 30}

	if err := ExportJSON(&buf, meta, testSamples()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.Steps != 3 || data.Target != 90 {
		t.Errorf("unexpected export: %+v", data)
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, testSamples()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "time,error,output,heading,desired" {
		t.Errorf("unexpected header: %s", lines[0])
	}
}
