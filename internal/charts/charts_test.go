package charts

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rohits-web03/quickdrop/internal/models"
	"github.com/rohits-web03/quickdrop/internal/stats"
)

func sampleReport() stats.Report {
	events := []models.TransferEvent{
		{SenderName: "laptop", ReceiverName: "phone", FileType: "image/png", FileSize: 2048, Timestamp: "2024-03-02T10:00:00.000Z", Successful: true},
		{SenderName: "phone", ReceiverName: "tablet", FileType: "", FileSize: 10, Timestamp: "2024-03-01T10:00:00.000Z"},
	}
	return stats.Build(events, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))
}

func TestRenderWritesAllCharts(t *testing.T) {
	var buf bytes.Buffer

	if err := Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		PageTitle,
		"Transfers by file type",
		"Transfers over time",
		"Successful vs failed transfers",
		"2024-03-01",
		UntypedLabel,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestRenderEmptyReport(t *testing.T) {
	var buf bytes.Buffer

	if err := Render(&buf, stats.Build(nil, time.Now())); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected a page even without data")
	}
}

func TestTypeLabel(t *testing.T) {
	if got := TypeLabel(""); got != UntypedLabel {
		t.Errorf("TypeLabel(\"\") = %q", got)
	}
	if got := TypeLabel("text/plain"); got != "text/plain" {
		t.Errorf("TypeLabel(text/plain) = %q", got)
	}
}
