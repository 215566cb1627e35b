package journal

import (
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barleyrp/overlay/internal/bridge"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openTestWriter(t *testing.T) *Writer {
	t.Helper()
	w, err := Open(filepath.Join(t.TempDir(), "journal.db"), 50*time.Millisecond, testLogger())
	require.NoError(t, err)
	return w
}

func TestTap_QueuesEntries(t *testing.T) {
	w := openTestWriter(t)
	tap := w.Tap()

	tap(bridge.Event{Name: "player:vitals", Payload: json.RawMessage(`{"health": 85}`), Timestamp: time.Now()})
	tap(bridge.Event{Name: "notify", Payload: json.RawMessage(`{"text": "hi"}`), Timestamp: time.Now()})

	assert.Equal(t, 2, w.Pending())
}

func TestClose_FlushesToDatabase(t *testing.T) {
	w := openTestWriter(t)
	tap := w.Tap()

	tap(bridge.Event{Name: "money:update", Payload: json.RawMessage(`250`), Timestamp: time.Now()})
	w.Close()

	assert.Equal(t, 0, w.Pending())

	var entries []Entry
	require.NoError(t, w.db.Order("id").Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, "money:update", entries[0].Event)
	assert.JSONEq(t, `250`, string(entries[0].Payload))
}

func TestStart_FlushesOnInterval(t *testing.T) {
	w := openTestWriter(t)
	w.Start()
	defer w.Close()

	w.Tap()(bridge.Event{Name: "bank:update", Payload: json.RawMessage(`90000`), Timestamp: time.Now()})

	assert.Eventually(t, func() bool {
		return w.Pending() == 0
	}, 2*time.Second, 20*time.Millisecond)

	var count int64
	require.NoError(t, w.db.Model(&Entry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOpen_BadPath(t *testing.T) {
	_, err := Open("/nonexistent/dir/journal.db", time.Second, testLogger())
	assert.Error(t, err)
}
