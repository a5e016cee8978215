package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "logs.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SystemLog{}))
	return db
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestSetupWriter_FiltersByLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	SetupWriter(&buf, "warn")
	slog.Info("hidden")
	slog.Warn("shown", "location", "Oslo")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "Oslo", line["location"])
}

func TestDBHandler_PersistsErrors(t *testing.T) {
	db := openTestDB(t)
	h := newDBHandler(db, time.Hour)
	log := slog.New(h).With("request_id", "req-1")

	log.Info("ignored")
	log.Error("recommendation failed",
		"user_id", uint(7),
		"method", "GET",
		"path", "/api/recommendations",
		"error", "weather down",
		"latency_ms", 12.6,
		"occasion", "work",
	)
	h.Stop()

	var rows []models.SystemLog
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "ERROR", row.Level)
	assert.Equal(t, "recommendation failed", row.Message)
	assert.Equal(t, "req-1", row.RequestID)
	require.NotNil(t, row.UserID)
	assert.Equal(t, uint(7), *row.UserID)
	assert.Equal(t, "/api/recommendations", row.Path)
	assert.Equal(t, "weather down", row.Error)
	assert.Equal(t, 13, row.LatencyMs)
	assert.JSONEq(t, `{"occasion":"work"}`, string(row.Extra))
}

func TestMultiHandler_FansOut(t *testing.T) {
	db := openTestDB(t)
	dbh := newDBHandler(db, time.Hour)

	var buf bytes.Buffer
	stdout := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	log := slog.New(NewMultiHandler(stdout, dbh))

	log.Info("item created")
	log.Error("flush me")
	dbh.Stop()

	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
	var count int64
	require.NoError(t, db.Model(&models.SystemLog{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPrune(t *testing.T) {
	db := openTestDB(t)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&[]models.SystemLog{
		{ID: uuid.New(), Timestamp: now.AddDate(0, 0, -45), Level: "ERROR", Message: "old"},
		{ID: uuid.New(), Timestamp: now.AddDate(0, 0, -1), Level: "ERROR", Message: "recent"},
	}).Error)

	deleted, err := Prune(context.Background(), db, 30, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var remaining []models.SystemLog
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "recent", remaining[0].Message)
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestMultiHandler_KeepsGoingAfterFailure(t *testing.T) {
	var buf bytes.Buffer
	stdout := slog.NewJSONHandler(&buf, nil)
	h := NewMultiHandler(nil, failingHandler{stdout}, stdout)

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "still logged", 0))
	assert.EqualError(t, err, "sink down")
	assert.Contains(t, buf.String(), "still logged")
}
