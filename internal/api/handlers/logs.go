package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/rohits-web03/quickdrop/internal/models"
	"github.com/rohits-web03/quickdrop/internal/repositories"
	"github.com/rohits-web03/quickdrop/internal/utils"
)

const maxLogBodySize = 1 << 20 // 1 MB

const msgMissingFields = "Missing required fields"

// LogStore is the persistence the log handlers need.
type LogStore interface {
	Create(ctx context.Context, event *models.TransferEvent) error
	ListRecent(ctx context.Context, limit int) ([]models.TransferEvent, error)
}

type LogHandler struct {
	store LogStore
	now   func() time.Time
}

func NewLogHandler(store LogStore) *LogHandler {
	return &LogHandler{store: store, now: time.Now}
}

// ingestRequest is what transfer clients post. Only the three names are
// required; everything else falls back to its zero value.
type ingestRequest struct {
	SenderName   string `json:"senderName"`
	SenderIP     string `json:"senderIp"`
	ReceiverName string `json:"receiverName"`
	ReceiverIP   string `json:"receiverIp"`
	FileName     string `json:"fileName"`
	FileSize     int64  `json:"fileSize"`
	FileType     string `json:"fileType"`
	Timestamp    string `json:"timestamp"`
	Successful   truthy `json:"successful"`
}

func (in ingestRequest) complete() bool {
	return in.SenderName != "" && in.ReceiverName != "" && in.FileName != ""
}

func (in ingestRequest) event(now time.Time) models.TransferEvent {
	ts := models.FormatTimestamp(now)
	if in.Timestamp != "" {
		ts = models.NormalizeTimestamp(in.Timestamp)
	}
	return models.TransferEvent{
		SenderName:   in.SenderName,
		SenderIP:     in.SenderIP,
		ReceiverName: in.ReceiverName,
		ReceiverIP:   in.ReceiverIP,
		FileName:     in.FileName,
		FileSize:     in.FileSize,
		FileType:     in.FileType,
		Timestamp:    ts,
		Successful:   bool(in.Successful),
	}
}

// truthy accepts the loose flags transfer clients send: booleans, 0/1 and
// non-empty strings.
type truthy bool

func (t *truthy) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*t = false
	case bool:
		*t = truthy(x)
	case float64:
		*t = x != 0
	case string:
		*t = x != ""
	default:
		return errors.New("successful must be a boolean")
	}
	return nil
}

// POST /api/logs
// CreateLog godoc
// @Summary Record a file transfer
// @Description Stores one transfer event. senderName, receiverName and fileName are required; timestamp defaults to now.
// @Tags Logs
// @Accept json
// @Produce json
// @Param log body ingestRequest true "Transfer event"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload "Missing required fields"
// @Failure 500 {object} utils.Payload "Storage failure"
// @Router /api/logs [post]
func (h *LogHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	var input ingestRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLogBodySize))
	if err := dec.Decode(&input); err != nil {
		log.Printf("Rejected log: %v", err)
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if !input.complete() {
		log.Printf("Rejected log: missing required fields")
		utils.ErrorResponse(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	event := input.event(h.now())
	if err := h.store.Create(r.Context(), &event); err != nil {
		log.Printf("Error saving log: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Printf("New log #%d: %s -> %s %q (%d bytes, successful=%t)",
		event.ID, event.SenderName, event.ReceiverName, event.FileName, event.FileSize, event.Successful)

	utils.JSONResponse(w, http.StatusOK, utils.Payload{Success: true})
}

// GET /api/logs
// ListLogs godoc
// @Summary List recent transfers
// @Description Returns up to 100 transfer events, newest timestamp first.
// @Tags Logs
// @Produce json
// @Success 200 {array} models.TransferEvent
// @Failure 500 {object} utils.Payload "Storage failure"
// @Router /api/logs [get]
func (h *LogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListRecent(r.Context(), repositories.RecentLimit)
	if err != nil {
		log.Printf("Error fetching logs: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if events == nil {
		events = []models.TransferEvent{}
	}
	utils.JSON(w, http.StatusOK, events)
}
