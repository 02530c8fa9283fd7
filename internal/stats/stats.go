// Package stats turns a batch of transfer events into the numbers and
// groupings the dashboard shows. Everything is recomputed from scratch per
// batch; batches are capped at the Query API limit.
package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/axiomhq/hyperloglog"

	"github.com/rohits-web03/quickdrop/internal/models"
)

// RecentLimit is how many events the recent-transfers table shows.
const RecentLimit = 10

const noDevice = "-"

// Summary holds the headline numbers. SuccessRate is a percentage rounded
// to one decimal.
type Summary struct {
	TotalTransfers   int     `json:"totalTransfers" yaml:"totalTransfers"`
	TotalSize        int64   `json:"totalSize" yaml:"totalSize"`
	SuccessRate      float64 `json:"successRate" yaml:"successRate"`
	MostActiveDevice string  `json:"mostActiveDevice" yaml:"mostActiveDevice"`
	MostActiveCount  int     `json:"mostActiveCount" yaml:"mostActiveCount"`
	UniqueDevices    uint64  `json:"uniqueDevices" yaml:"uniqueDevices"`
}

// SuccessRatePercent renders the rate with one decimal, e.g. "66.7".
func (s Summary) SuccessRatePercent() string {
	return fmt.Sprintf("%.1f", s.SuccessRate)
}

type TypeCount struct {
	FileType string `json:"fileType" yaml:"fileType"`
	Count    int    `json:"count" yaml:"count"`
}

type DateCount struct {
	Date  string `json:"date" yaml:"date"`
	Count int    `json:"count" yaml:"count"`
}

type DateOutcome struct {
	Date       string `json:"date" yaml:"date"`
	Successful int    `json:"successful" yaml:"successful"`
	Failed     int    `json:"failed" yaml:"failed"`
}

type Performance struct {
	AverageSize     float64 `json:"averageSize" yaml:"averageSize"`
	LargestTransfer int64   `json:"largestTransfer" yaml:"largestTransfer"`
	TodayCount      int     `json:"todayCount" yaml:"todayCount"`
}

// Report bundles every aggregate the dashboard renders for one batch.
type Report struct {
	Summary     Summary                `json:"summary" yaml:"summary"`
	FileTypes   []TypeCount            `json:"fileTypes" yaml:"fileTypes"`
	Timeline    []DateCount            `json:"timeline" yaml:"timeline"`
	Outcomes    []DateOutcome          `json:"outcomes" yaml:"outcomes"`
	Performance Performance            `json:"performance" yaml:"performance"`
	Recent      []models.TransferEvent `json:"recent" yaml:"recent"`
}

// Build computes the full report. now decides which events count as today.
func Build(events []models.TransferEvent, now time.Time) Report {
	summary := Summarize(events)
	return Report{
		Summary:     summary,
		FileTypes:   FileTypeDistribution(events),
		Timeline:    TransfersByDate(events),
		Outcomes:    OutcomesByDate(events),
		Performance: Measure(events, summary, now),
		Recent:      Recent(events, RecentLimit),
	}
}

func Summarize(events []models.TransferEvent) Summary {
	s := Summary{
		TotalTransfers:   len(events),
		MostActiveDevice: noDevice,
	}

	successful := 0
	for _, e := range events {
		s.TotalSize += e.FileSize
		if e.Successful {
			successful++
		}
	}
	if s.TotalTransfers > 0 {
		rate := float64(successful) / float64(s.TotalTransfers) * 100
		s.SuccessRate = math.Round(rate*10) / 10
	}

	s.MostActiveDevice, s.MostActiveCount = mostActive(events)
	s.UniqueDevices = uniqueDevices(events)
	return s
}

// mostActive counts every sender and receiver appearance. Names are ranked
// in first-seen order and only a strictly higher count replaces the leader,
// so ties go to whoever appeared first.
func mostActive(events []models.TransferEvent) (string, int) {
	counts := make(map[string]int)
	var order []string
	add := func(name string) {
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name]++
	}
	for _, e := range events {
		add(e.SenderName)
		add(e.ReceiverName)
	}

	device, best := noDevice, 0
	for _, name := range order {
		if counts[name] > best {
			device, best = name, counts[name]
		}
	}
	return device, best
}

func uniqueDevices(events []models.TransferEvent) uint64 {
	if len(events) == 0 {
		return 0
	}
	sketch := hyperloglog.New16()
	for _, e := range events {
		sketch.Insert([]byte(e.SenderName))
		sketch.Insert([]byte(e.ReceiverName))
	}
	return sketch.Estimate()
}

// FileTypeDistribution counts events per file type in first-seen order.
// Events without a type share the "" bucket.
func FileTypeDistribution(events []models.TransferEvent) []TypeCount {
	index := make(map[string]int)
	var out []TypeCount
	for _, e := range events {
		i, ok := index[e.FileType]
		if !ok {
			i = len(out)
			index[e.FileType] = i
			out = append(out, TypeCount{FileType: e.FileType})
		}
		out[i].Count++
	}
	return out
}

// TransfersByDate counts events per UTC date, oldest date first.
func TransfersByDate(events []models.TransferEvent) []DateCount {
	counts := make(map[string]int)
	for _, e := range events {
		counts[e.Date()]++
	}

	out := make([]DateCount, 0, len(counts))
	for _, date := range sortedKeys(counts) {
		out = append(out, DateCount{Date: date, Count: counts[date]})
	}
	return out
}

// OutcomesByDate splits each UTC date into successful and failed counts.
func OutcomesByDate(events []models.TransferEvent) []DateOutcome {
	byDate := make(map[string]*DateOutcome)
	for _, e := range events {
		date := e.Date()
		o, ok := byDate[date]
		if !ok {
			o = &DateOutcome{Date: date}
			byDate[date] = o
		}
		if e.Successful {
			o.Successful++
		} else {
			o.Failed++
		}
	}

	out := make([]DateOutcome, 0, len(byDate))
	for _, date := range sortedKeys(byDate) {
		out = append(out, *byDate[date])
	}
	return out
}

// Measure derives the performance tab numbers from the batch and its summary.
func Measure(events []models.TransferEvent, summary Summary, now time.Time) Performance {
	p := Performance{
		AverageSize: float64(summary.TotalSize) / float64(max(summary.TotalTransfers, 1)),
	}
	today := models.DateKey(now)
	for _, e := range events {
		if e.FileSize > p.LargestTransfer {
			p.LargestTransfer = e.FileSize
		}
		if e.Date() == today {
			p.TodayCount++
		}
	}
	return p
}

// Recent returns at most n events from the head of the batch.
func Recent(events []models.TransferEvent, n int) []models.TransferEvent {
	if len(events) <= n {
		return events
	}
	return events[:n]
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
