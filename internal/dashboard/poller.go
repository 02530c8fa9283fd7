package dashboard

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/rohits-web03/quickdrop/internal/models"
	"github.com/rohits-web03/quickdrop/internal/stats"
)

const DefaultInterval = 5 * time.Second

// Fetcher loads the current batch of events.
type Fetcher interface {
	FetchLogs(ctx context.Context) ([]models.TransferEvent, error)
}

// Snapshot is the outcome of one poll: either a fresh batch with its report
// or the error that prevented it.
type Snapshot struct {
	Events    []models.TransferEvent
	Report    stats.Report
	Err       error
	FetchedAt time.Time
}

// Poller fetches on a fixed interval until its context is cancelled. Every
// tick starts a fetch even if the previous one is still running; results are
// handed to deliver in completion order. Errors do not stop the ticker.
type Poller struct {
	fetcher  Fetcher
	interval time.Duration
	deliver  func(Snapshot)
	now      func() time.Time
	refresh  chan struct{}
}

func NewPoller(fetcher Fetcher, interval time.Duration, deliver func(Snapshot)) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		fetcher:  fetcher,
		interval: interval,
		deliver:  deliver,
		now:      time.Now,
		refresh:  make(chan struct{}, 1),
	}
}

// Refresh asks the running poller for an immediate fetch. Calls made while
// a request is already queued are coalesced.
func (p *Poller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// Run polls until ctx is done and waits for in-flight fetches before
// returning.
func (p *Poller) Run(ctx context.Context) {
	var wg sync.WaitGroup
	defer wg.Wait()

	fire := func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.poll(ctx)
		}()
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	fire()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fire()
		case <-p.refresh:
			fire()
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	events, err := p.fetcher.FetchLogs(ctx)
	if ctx.Err() != nil {
		return
	}

	now := p.now()
	if err != nil {
		log.Printf("Error fetching logs: %v", err)
		p.deliver(Snapshot{Err: err, FetchedAt: now})
		return
	}
	p.deliver(Snapshot{
		Events:    events,
		Report:    stats.Build(events, now),
		FetchedAt: now,
	})
}
