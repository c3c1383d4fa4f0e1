package scan

import (
	"sync"
	"time"

	"github.com/khateebdev-stack/qrcode/internal/classify"
)

// HistoryCap bounds each scan history. Insertion beyond the cap evicts the
// oldest entry; the two histories (general and restricted) never merge.
const HistoryCap = 50

// Entry is one retained scan record. General-mode entries carry the
// assigned content type; restricted-mode entries carry the validity flag
// instead (ContentType empty, Valid set).
type Entry struct {
	// ID is a monotonic timestamp (nanoseconds); strictly increasing
	// within a history even when scans land in the same tick.
	ID          int64                `json:"id"`
	Payload     string               `json:"payload"`
	ContentType classify.ContentType `json:"content_type,omitempty"`
	Valid       *bool                `json:"valid,omitempty"`
	Timestamp   string               `json:"timestamp"`
}

// History is a bounded, newest-first sequence of scan entries. It is owned
// exclusively by the dispatcher that created it and safe for concurrent use.
type History struct {
	mu      sync.Mutex
	entries []Entry
	lastID  int64
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{entries: make([]Entry, 0, HistoryCap)}
}

// Add inserts an entry at the front, assigning its monotonic ID and
// human-readable timestamp, and evicts the oldest entry past HistoryCap.
func (h *History) Add(e Entry) Entry {
	now := time.Now()

	h.mu.Lock()
	defer h.mu.Unlock()

	id := now.UnixNano()
	if id <= h.lastID {
		id = h.lastID + 1
	}
	h.lastID = id

	e.ID = id
	e.Timestamp = now.Format("2006-01-02 15:04:05")

	h.entries = append([]Entry{e}, h.entries...)
	if len(h.entries) > HistoryCap {
		h.entries = h.entries[:HistoryCap]
	}
	return e
}

// Entries returns a copy of the history, newest-first.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the current number of retained entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
