// Package journal is an optional local diagnostics log: every inbound event
// is appended to a SQLite file so a session can be replayed when debugging
// host integration issues. It is never read on the hot path.
package journal

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/barleyrp/overlay/internal/bridge"
	"github.com/barleyrp/overlay/internal/queue"
)

// Entry is one journaled inbound event.
type Entry struct {
	ID      uint      `gorm:"primarykey"`
	Time    time.Time `gorm:"index"`
	Event   string    `gorm:"index"`
	Payload datatypes.JSON
}

// Writer batches journal entries and flushes them on an interval.
type Writer struct {
	db       *gorm.DB
	pending  *queue.Queue[Entry]
	stopChan chan struct{}
	interval time.Duration
	logger   *slog.Logger
}

// Open creates or opens the journal database and migrates the schema.
func Open(path string, flushInterval time.Duration, logger *slog.Logger) (*Writer, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening journal db: %w", err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("error migrating journal schema: %w", err)
	}
	return &Writer{
		db:       db,
		pending:  queue.New[Entry](),
		stopChan: make(chan struct{}),
		interval: flushInterval,
		logger:   logger,
	}, nil
}

// Tap returns a bridge tap that records every inbound event.
func (w *Writer) Tap() bridge.Tap {
	return func(e bridge.Event) {
		w.pending.Push(Entry{
			Time:    e.Timestamp,
			Event:   e.Name,
			Payload: datatypes.JSON(e.Payload),
		})
	}
}

// Start launches the flush goroutine.
func (w *Writer) Start() {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-w.stopChan:
				w.flush()
				return
			case <-ticker.C:
				w.flush()
			}
		}
	}()
}

func (w *Writer) flush() {
	entries := w.pending.GetAndEmpty()
	if len(entries) == 0 {
		return
	}
	if err := w.db.CreateInBatches(entries, 500).Error; err != nil {
		w.logger.Error("Journal flush failed", "entries", len(entries), "error", err)
	}
}

// Pending returns the number of unflushed entries.
func (w *Writer) Pending() int {
	return w.pending.Len()
}

// Close stops the flush goroutine and flushes remaining entries.
func (w *Writer) Close() {
	close(w.stopChan)
	w.flush()
}
