package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	batchSize     = 50
	flushInterval = 5 * time.Second
)

// DBHandler is an slog.Handler that batches ERROR+ records into system_logs.
type DBHandler struct {
	db     *gorm.DB
	attrs  []slog.Attr
	shared *dbBuffer
}

type dbBuffer struct {
	mu       sync.Mutex
	entries  []models.SystemLog
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewDBHandler(db *gorm.DB) *DBHandler {
	return newDBHandler(db, flushInterval)
}

func newDBHandler(db *gorm.DB, interval time.Duration) *DBHandler {
	h := &DBHandler{
		db: db,
		shared: &dbBuffer{
			entries: make([]models.SystemLog, 0, batchSize),
			ticker:  time.NewTicker(interval),
			done:    make(chan struct{}),
		},
	}
	h.shared.wg.Add(1)
	go h.flushLoop()
	return h
}

func (h *DBHandler) flushLoop() {
	defer h.shared.wg.Done()
	for {
		select {
		case <-h.shared.ticker.C:
			h.flush()
		case <-h.shared.done:
			h.flush()
			return
		}
	}
}

func (h *DBHandler) flush() {
	b := h.shared
	b.mu.Lock()
	if len(b.entries) == 0 {
		b.mu.Unlock()
		return
	}
	batch := b.entries
	b.entries = make([]models.SystemLog, 0, batchSize)
	b.mu.Unlock()

	if err := h.db.CreateInBatches(batch, batchSize).Error; err != nil {
		// Not through slog: a failed flush would be buffered again.
		fmt.Fprintf(os.Stderr, "failed to flush %d system logs: %v\n", len(batch), err)
	}
}

// Stop flushes what is buffered and ends the flush loop.
func (h *DBHandler) Stop() {
	h.shared.stopOnce.Do(func() {
		h.shared.ticker.Stop()
		close(h.shared.done)
	})
	h.shared.wg.Wait()
}

// Enabled only handles ERROR and above.
func (h *DBHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *DBHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	apply := func(a slog.Attr) bool {
		switch a.Key {
		case "request_id":
			entry.RequestID = a.Value.String()
		case "user_id":
			if id, err := strconv.ParseUint(a.Value.String(), 10, 64); err == nil {
				u := uint(id)
				entry.UserID = &u
			}
		case "method":
			entry.Method = a.Value.String()
		case "path":
			entry.Path = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		case "latency_ms":
			switch a.Value.Kind() {
			case slog.KindFloat64:
				entry.LatencyMs = int(math.Round(a.Value.Float64()))
			case slog.KindInt64:
				entry.LatencyMs = int(a.Value.Int64())
			}
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	}
	for _, a := range h.attrs {
		apply(a)
	}
	record.Attrs(apply)

	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	b := h.shared
	b.mu.Lock()
	b.entries = append(b.entries, entry)
	needFlush := len(b.entries) >= batchSize
	b.mu.Unlock()

	if needFlush {
		go h.flush()
	}
	return nil
}

func (h *DBHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &DBHandler{db: h.db, attrs: merged, shared: h.shared}
}

// WithGroup is a no-op: system_logs columns are flat.
func (h *DBHandler) WithGroup(string) slog.Handler {
	return h
}
