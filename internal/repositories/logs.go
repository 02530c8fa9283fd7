package repositories

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rohits-web03/quickdrop/internal/models"
)

// RecentLimit caps how many events ListRecent returns.
const RecentLimit = 100

// logRecord is the row shape of the logs table.
type logRecord struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"`
	SenderName   string  `gorm:"size:255;not null"`
	SenderIP     string  `gorm:"column:sender_ip;size:50"`
	ReceiverName string  `gorm:"size:255;not null"`
	ReceiverIP   string  `gorm:"column:receiver_ip;size:50"`
	FileName     string  `gorm:"size:255;not null"`
	FileSize     int64   `gorm:"not null"`
	FileType     string  `gorm:"size:50"`
	Timestamp    string  `gorm:"size:64;index"`
	Successful   sqlBool `gorm:"type:boolean;not null"`
}

func (logRecord) TableName() string {
	return "logs"
}

func newLogRecord(e models.TransferEvent) logRecord {
	return logRecord{
		SenderName:   e.SenderName,
		SenderIP:     e.SenderIP,
		ReceiverName: e.ReceiverName,
		ReceiverIP:   e.ReceiverIP,
		FileName:     e.FileName,
		FileSize:     e.FileSize,
		FileType:     e.FileType,
		Timestamp:    e.Timestamp,
		Successful:   sqlBool(e.Successful),
	}
}

func (r logRecord) event() models.TransferEvent {
	return models.TransferEvent{
		ID:           r.ID,
		SenderName:   r.SenderName,
		SenderIP:     r.SenderIP,
		ReceiverName: r.ReceiverName,
		ReceiverIP:   r.ReceiverIP,
		FileName:     r.FileName,
		FileSize:     r.FileSize,
		FileType:     r.FileType,
		Timestamp:    r.Timestamp,
		Successful:   bool(r.Successful),
	}
}

// sqlBool decodes the success flag whatever the driver hands back: a native
// boolean (postgres) or 0/1 (sqlite, mysql).
type sqlBool bool

func (b *sqlBool) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*b = false
	case bool:
		*b = sqlBool(v)
	case int64:
		*b = v != 0
	case []byte:
		return b.parse(string(v))
	case string:
		return b.parse(v)
	default:
		return fmt.Errorf("cannot decode %T into successful flag", value)
	}
	return nil
}

func (b *sqlBool) parse(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("cannot decode %q into successful flag", s)
	}
	*b = sqlBool(v)
	return nil
}

func (b sqlBool) Value() (driver.Value, error) {
	return bool(b), nil
}

// LogRepository is the append-only store of transfer events.
type LogRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

// Create inserts the event and fills in its assigned ID.
func (r *LogRepository) Create(ctx context.Context, event *models.TransferEvent) error {
	rec := newLogRecord(*event)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return err
	}
	event.ID = rec.ID
	return nil
}

// ListRecent returns up to limit events, newest timestamp first. A limit
// outside (0, RecentLimit] is clamped to RecentLimit.
func (r *LogRepository) ListRecent(ctx context.Context, limit int) ([]models.TransferEvent, error) {
	if limit <= 0 || limit > RecentLimit {
		limit = RecentLimit
	}

	var records []logRecord
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	events := make([]models.TransferEvent, 0, len(records))
	for _, rec := range records {
		events = append(events, rec.event())
	}
	return events, nil
}
