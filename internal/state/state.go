// Package state provides thread-safe state management for the
// long-running display modes: the latest derived almanac, a bounded
// history of samples, and a ring buffer of limb-transition events.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-panchang/internal/panchang"
)

// EventType represents the type of almanac transition event.
type EventType string

const (
	EventTithiChange     EventType = "TITHI_CHANGE"
	EventNakshatraChange EventType = "NAKSHATRA_CHANGE"
	EventYogaChange      EventType = "YOGA_CHANGE"
	EventKaranaChange    EventType = "KARANA_CHANGE"
	EventVaraChange      EventType = "VARA_CHANGE"
	EventMonthChange     EventType = "MONTH_CHANGE"
)

// Event records one limb rolling over between two samples.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Old       string    `json:"old"`
	New       string    `json:"new"`
}

// HistoryEntry is a single almanac sample in the history buffer.
type HistoryEntry struct {
	Timestamp time.Time
	Result    panchang.Result
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	current    *panchang.Result
	lastUpdate time.Time
	lastError  error
	deriveTime time.Duration

	history       []HistoryEntry
	maxHistoryLen int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	refreshInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	MaxHistoryLen   int
	MaxEvents       int
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxHistoryLen:   120, // 2 hours at 1 sample/min
		MaxEvents:       50,
		RefreshInterval: time.Minute,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	maxHistory := cfg.MaxHistoryLen
	if maxHistory <= 0 {
		maxHistory = 120
	}
	return &Manager{
		maxHistoryLen:   maxHistory,
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
		refreshInterval: cfg.RefreshInterval,
	}
}

// Update atomically installs a freshly derived almanac sample.
// A nil result records only the error and timing.
func (m *Manager) Update(result *panchang.Result, deriveTime time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastUpdate = time.Now()
	m.lastError = err
	m.deriveTime = deriveTime

	if result == nil {
		return
	}

	// Detect transitions before replacing the current sample.
	m.detectEvents(*result)

	m.current = result

	m.history = append(m.history, HistoryEntry{
		Timestamp: m.lastUpdate,
		Result:    *result,
	})
	if len(m.history) > m.maxHistoryLen {
		m.history = m.history[1:]
	}
}

// detectEvents compares a new sample against the current one and
// records an event for every limb that rolled over.
func (m *Manager) detectEvents(next panchang.Result) {
	if m.current == nil {
		return
	}
	prev := *m.current
	now := time.Now()

	if prev.Tithi != next.Tithi {
		m.addEvent(Event{
			Type: EventTithiChange, Timestamp: now,
			Old: prev.TithiName(), New: next.TithiName(),
		})
	}
	if prev.Nakshatra != next.Nakshatra {
		m.addEvent(Event{
			Type: EventNakshatraChange, Timestamp: now,
			Old: prev.NakshatraName(), New: next.NakshatraName(),
		})
	}
	if prev.Yoga != next.Yoga {
		m.addEvent(Event{
			Type: EventYogaChange, Timestamp: now,
			Old: prev.YogaName(), New: next.YogaName(),
		})
	}
	if prev.KaranaSlot != next.KaranaSlot {
		m.addEvent(Event{
			Type: EventKaranaChange, Timestamp: now,
			Old: prev.KaranaName(), New: next.KaranaName(),
		})
	}
	if prev.Vara != next.Vara {
		m.addEvent(Event{
			Type: EventVaraChange, Timestamp: now,
			Old: prev.VaraName(), New: next.VaraName(),
		})
	}
	if prev.TamilMonth != next.TamilMonth {
		m.addEvent(Event{
			Type: EventMonthChange, Timestamp: now,
			Old: prev.TamilMonthName(), New: next.TamilMonthName(),
		})
	}
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Current     *panchang.Result
	LastUpdate  time.Time
	NextRefresh time.Time
	LastError   error
	DeriveTime  time.Duration
	History     []HistoryEntry
	Events      []Event
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := make([]HistoryEntry, len(m.history))
	copy(history, m.history)

	return Snapshot{
		Current:     m.current,
		LastUpdate:  m.lastUpdate,
		NextRefresh: m.lastUpdate.Add(m.refreshInterval),
		LastError:   m.lastError,
		DeriveTime:  m.deriveTime,
		History:     history,
		Events:      m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest.
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// HasData reports whether at least one sample has been derived.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}
