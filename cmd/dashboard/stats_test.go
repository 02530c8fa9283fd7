package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rohits-web03/quickdrop/internal/models"
	"github.com/rohits-web03/quickdrop/internal/stats"
)

func sampleReport() stats.Report {
	events := []models.TransferEvent{
		{SenderName: "laptop", ReceiverName: "phone", FileType: "image/png", FileSize: 1024, Timestamp: "2024-03-02T10:00:00.000Z", Successful: true},
		{SenderName: "phone", ReceiverName: "laptop", FileSize: 1024, Timestamp: "2024-03-01T10:00:00.000Z"},
	}
	return stats.Build(events, time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC))
}

func TestWriteReportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeReport(&buf, sampleReport(), "json"); err != nil {
		t.Fatalf("writeReport() error = %v", err)
	}

	var decoded stats.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded.Summary.TotalTransfers != 2 || decoded.Summary.SuccessRate != 50 {
		t.Errorf("unexpected summary %+v", decoded.Summary)
	}
}

func TestWriteReportYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := writeReport(&buf, sampleReport(), "yaml"); err != nil {
		t.Fatalf("writeReport() error = %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if _, ok := decoded["summary"]; !ok {
		t.Errorf("expected summary key, got %v", decoded)
	}
}

func TestWriteReportText(t *testing.T) {
	var buf bytes.Buffer
	if err := writeReport(&buf, sampleReport(), "text"); err != nil {
		t.Fatalf("writeReport() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Total transfers", "2.00 KB", "50.0%", "laptop (2)", "(none)", "2024-03-01"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteReportUnknownFormat(t *testing.T) {
	if err := writeReport(&bytes.Buffer{}, sampleReport(), "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWriteReportRoundsSuccessRate(t *testing.T) {
	events := []models.TransferEvent{
		{SenderName: "a", ReceiverName: "b", Successful: true},
		{SenderName: "a", ReceiverName: "b"},
		{SenderName: "a", ReceiverName: "b", Successful: true},
	}
	report := stats.Build(events, time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC))

	for _, format := range []string{"json", "yaml"} {
		var buf bytes.Buffer
		if err := writeReport(&buf, report, format); err != nil {
			t.Fatalf("writeReport(%s) error = %v", format, err)
		}
		out := buf.String()
		if !strings.Contains(out, "66.7") || strings.Contains(out, "66.66") {
			t.Errorf("%s output should carry the rounded rate:\n%s", format, out)
		}
	}
}
