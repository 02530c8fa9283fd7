package models

import (
	"errors"
	"strings"
	"time"
)

// TimestampLayout is the canonical UTC form timestamps are stored in, so that
// lexical order in the logs table matches chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const dateLayout = "2006-01-02"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	dateLayout,
}

var ErrInvalidTimestamp = errors.New("invalid timestamp")

// TransferEvent is one logged file-transfer attempt and its outcome.
type TransferEvent struct {
	ID           uint   `json:"id"`
	SenderName   string `json:"senderName"`
	SenderIP     string `json:"senderIp"`
	ReceiverName string `json:"receiverName"`
	ReceiverIP   string `json:"receiverIp"`
	FileName     string `json:"fileName"`
	FileSize     int64  `json:"fileSize"` // bytes
	FileType     string `json:"fileType"`
	Timestamp    string `json:"timestamp"`
	Successful   bool   `json:"successful"`
}

// Date returns the UTC calendar date of the event, e.g. "2024-03-01".
func (e TransferEvent) Date() string {
	return DateOf(e.Timestamp)
}

// ParseTimestamp accepts the ISO-8601 shapes transfer clients send. Values
// without a zone are read as UTC.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// NormalizeTimestamp rewrites a parseable timestamp into TimestampLayout.
// Anything else is kept verbatim; timestamps are not validated.
func NormalizeTimestamp(raw string) string {
	t, err := ParseTimestamp(raw)
	if err != nil {
		return raw
	}
	return FormatTimestamp(t)
}

// DateOf truncates a timestamp to its UTC date. Unparseable values fall back
// to their first ten characters.
func DateOf(raw string) string {
	t, err := ParseTimestamp(raw)
	if err != nil {
		if len(raw) > len(dateLayout) {
			return raw[:len(dateLayout)]
		}
		return raw
	}
	return t.Format(dateLayout)
}

// DateKey formats t as a bucket key comparable with DateOf.
func DateKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
