package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rohits-web03/quickdrop/internal/models"
)

type scriptedFetcher struct {
	mu    sync.Mutex
	calls int
	errs  []error
}

func (f *scriptedFetcher) FetchLogs(context.Context) ([]models.TransferEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= len(f.errs) && f.errs[f.calls-1] != nil {
		return nil, f.errs[f.calls-1]
	}
	return []models.TransferEvent{
		{SenderName: "a", ReceiverName: "b", Successful: true},
		{SenderName: "a", ReceiverName: "c"},
	}, nil
}

func collect(ch <-chan Snapshot, n int, timeout time.Duration) ([]Snapshot, bool) {
	var out []Snapshot
	deadline := time.After(timeout)
	for len(out) < n {
		select {
		case s := <-ch:
			out = append(out, s)
		case <-deadline:
			return out, false
		}
	}
	return out, true
}

func TestPollerKeepsPollingAfterErrors(t *testing.T) {
	fetcher := &scriptedFetcher{errs: []error{errors.New("connection refused")}}
	ch := make(chan Snapshot, 16)
	p := NewPoller(fetcher, 10*time.Millisecond, func(s Snapshot) { ch <- s })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	snaps, ok := collect(ch, 3, 2*time.Second)
	cancel()
	<-done

	if !ok {
		t.Fatalf("expected 3 snapshots, got %d", len(snaps))
	}
	if snaps[0].Err == nil {
		t.Error("expected first snapshot to carry the fetch error")
	}
	recovered := false
	for _, s := range snaps[1:] {
		if s.Err == nil {
			recovered = true
			if s.Report.Summary.TotalTransfers != 2 || s.Report.Summary.MostActiveDevice != "a" {
				t.Errorf("unexpected report %+v", s.Report.Summary)
			}
		}
	}
	if !recovered {
		t.Error("expected polling to continue after an error")
	}
}

func TestPollerRefresh(t *testing.T) {
	fetcher := &scriptedFetcher{}
	ch := make(chan Snapshot, 4)
	p := NewPoller(fetcher, time.Hour, func(s Snapshot) { ch <- s })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	if _, ok := collect(ch, 1, time.Second); !ok {
		t.Fatal("expected an immediate fetch on start")
	}

	p.Refresh()
	if _, ok := collect(ch, 1, time.Second); !ok {
		t.Fatal("expected Refresh to trigger a fetch")
	}
}

func TestPollerStopsOnCancel(t *testing.T) {
	fetcher := &scriptedFetcher{}
	p := NewPoller(fetcher, time.Millisecond, func(Snapshot) {})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewPollerDefaultInterval(t *testing.T) {
	p := NewPoller(&scriptedFetcher{}, 0, func(Snapshot) {})
	if p.interval != DefaultInterval {
		t.Errorf("expected %s, got %s", DefaultInterval, p.interval)
	}
}
