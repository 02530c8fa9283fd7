package dashboard

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rohits-web03/quickdrop/internal/models"
	"github.com/rohits-web03/quickdrop/internal/stats"
)

func testSnapshot() Snapshot {
	now := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)
	events := []models.TransferEvent{
		{ID: 3, SenderName: "laptop", ReceiverName: "phone", FileName: "movie.mp4", FileType: "video/mp4", FileSize: 1073741824, Timestamp: "2024-03-02T10:00:00.000Z", Successful: true},
		{ID: 2, SenderName: "phone", ReceiverName: "tablet", FileName: "notes.txt", FileType: "", FileSize: 1024, Timestamp: "2024-03-02T09:00:00.000Z"},
		{ID: 1, SenderName: "laptop", ReceiverName: "tablet", FileName: "photo.jpg", FileType: "image/jpeg", FileSize: 0, Timestamp: "2024-03-01T09:00:00.000Z", Successful: true},
	}
	return Snapshot{Events: events, Report: stats.Build(events, now), FetchedAt: now}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestModelStartsLoading(t *testing.T) {
	m := NewModel(nil)

	if m.state != stateLoading {
		t.Errorf("expected loading state, got %v", m.state)
	}
	if !strings.Contains(m.View(), "Loading dashboard data") {
		t.Errorf("expected loading view, got %q", m.View())
	}
}

func TestModelErrorAndRetry(t *testing.T) {
	retries := 0
	m := NewModel(func() { retries++ })

	m = update(t, m, SnapshotMsg{Err: errors.New("dial tcp: connection refused")})

	if m.state != stateFailed {
		t.Fatalf("expected failed state, got %v", m.state)
	}
	view := m.View()
	if !strings.Contains(view, "Connection error") || !strings.Contains(view, "Press r to retry") {
		t.Errorf("expected connection error screen, got %q", view)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})

	if retries != 1 {
		t.Errorf("expected one retry, got %d", retries)
	}
	if m.state != stateLoading {
		t.Errorf("expected loading after retry, got %v", m.state)
	}
}

func TestModelRecoversOnNextSnapshot(t *testing.T) {
	m := NewModel(nil)
	m = update(t, m, SnapshotMsg{Err: errors.New("boom")})
	m = update(t, m, SnapshotMsg(testSnapshot()))

	if m.state != stateReady || m.err != nil {
		t.Fatalf("expected ready state without error, got %v / %v", m.state, m.err)
	}
}

func TestModelSummaryCards(t *testing.T) {
	m := update(t, NewModel(nil), SnapshotMsg(testSnapshot()))

	view := m.View()
	for _, want := range []string{"Total transfers", "1.00 GB", "66.7%", "laptop", "2 times"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelRecentTable(t *testing.T) {
	m := update(t, NewModel(nil), SnapshotMsg(testSnapshot()))

	view := m.View()
	for _, want := range []string{"movie.mp4", "notes.txt", "Showing the latest 3 of 3 transfers"} {
		if !strings.Contains(view, want) {
			t.Errorf("transfers tab missing %q", want)
		}
	}
}

func TestModelTabSwitching(t *testing.T) {
	m := update(t, NewModel(nil), SnapshotMsg(testSnapshot()))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.tab != tabCharts {
		t.Fatalf("expected charts tab, got %v", m.tab)
	}
	view := m.View()
	for _, want := range []string{"Transfers by file type", "video/mp4", "(none)", "2024-03-01", "Successful vs failed"} {
		if !strings.Contains(view, want) {
			t.Errorf("charts tab missing %q", want)
		}
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	if m.tab != tabPerformance {
		t.Fatalf("expected performance tab, got %v", m.tab)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.tab != tabCharts {
		t.Errorf("expected left to go back to charts, got %v", m.tab)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.tab != tabPerformance {
		t.Errorf("expected shift+tab to wrap around, got %v", m.tab)
	}
}

func TestModelPerformanceUsesRenderTime(t *testing.T) {
	m := update(t, NewModel(nil), SnapshotMsg(testSnapshot()))
	m.tab = tabPerformance

	m.now = func() time.Time { return time.Date(2024, 3, 2, 23, 0, 0, 0, time.UTC) }
	view := m.View()
	if !strings.Contains(view, "Transfers today") {
		t.Fatalf("performance tab missing today count: %q", view)
	}
	if !strings.Contains(view, "1.00 GB") {
		t.Errorf("expected largest transfer 1.00 GB in %q", view)
	}
	if got := todayLine(view); !strings.HasSuffix(got, "2") {
		t.Errorf("expected 2 transfers today, got %q", got)
	}

	m.now = func() time.Time { return time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC) }
	if got := todayLine(m.View()); !strings.HasSuffix(got, "0") {
		t.Errorf("expected 0 transfers on a later day, got %q", got)
	}
}

func todayLine(view string) string {
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "Transfers today") {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

func TestModelQuit(t *testing.T) {
	m := NewModel(nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if updated.(Model).View() != "" {
		t.Error("expected empty view after quit")
	}
}
