// Package state provides thread-safe state management for the orrery.
package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/scene"
)

// EventType represents the type of state change event.
type EventType string

const (
	EventSceneReady     EventType = "SCENE_READY"
	EventCenterChange   EventType = "CENTER_CHANGE"
	EventBuildFailed    EventType = "BUILD_FAILED"
	EventBuildRecovered EventType = "BUILD_RECOVERED"
)

// Event represents a change in the scene pipeline worth surfacing.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Center    string    `json:"center"`
	OldCenter string    `json:"old_center,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// BuildRecord summarizes one completed scene build.
type BuildRecord struct {
	Timestamp time.Time
	Center    string
	Duration  time.Duration
	Traces    int
	Points    int
}

// BodyHistory tracks range samples for one body across rebuilds.
// Samples are measured from the current view center.
type BodyHistory struct {
	Code         string
	Name         string
	RangeHistory []TimeSeries
}

// TimeSeries is a single data point with timestamp.
type TimeSeries struct {
	Timestamp time.Time
	Value     float64
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	// Current state
	current       *scene.Scene
	lastBuild     time.Time
	lastError     error
	buildDuration time.Duration

	// Requested view selection, read by the rebuild loop
	center    string
	epoch     time.Time
	seed      int64
	maxPoints int

	// History buffers
	builds       []BuildRecord
	maxBuildHist int
	bodyHistory  map[string]*BodyHistory
	maxBodyHist  int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	// Configuration
	refreshInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	Center          string
	Epoch           time.Time // zero means live, resolved at each rebuild
	Seed            int64
	MaxPoints       int
	MaxBuildHist    int
	MaxBodyHist     int
	MaxEvents       int
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Center:          "SUN",
		MaxBuildHist:    60,  // ~1 hour of builds at the default cadence
		MaxBodyHist:     240, // 4 hours of range samples per body
		MaxEvents:       50,  // Last 50 events
		RefreshInterval: time.Minute,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		center:          cfg.Center,
		epoch:           cfg.Epoch,
		seed:            cfg.Seed,
		maxPoints:       cfg.MaxPoints,
		maxBuildHist:    cfg.MaxBuildHist,
		maxBodyHist:     cfg.MaxBodyHist,
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
		refreshInterval: cfg.RefreshInterval,
		bodyHistory:     make(map[string]*BodyHistory),
	}
}

// Update atomically records the outcome of a scene build.
func (m *Manager) Update(s *scene.Scene, buildDuration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	prevErr := m.lastError

	m.lastBuild = now
	m.lastError = err
	m.buildDuration = buildDuration

	if err != nil {
		m.addEvent(Event{
			Type:      EventBuildFailed,
			Timestamp: now,
			Center:    m.center,
			Detail:    err.Error(),
		})
		return
	}
	if s == nil {
		return
	}

	// Detect changes against the previous scene before replacing it
	m.detectEvents(s, prevErr)

	m.current = s

	// Add to build history
	rec := BuildRecord{
		Timestamp: s.GeneratedAt,
		Center:    s.Center.Code,
		Duration:  buildDuration,
		Traces:    len(s.Traces),
		Points:    s.TotalPoints(),
	}
	m.builds = append(m.builds, rec)
	if len(m.builds) > m.maxBuildHist {
		m.builds = m.builds[1:]
	}

	// Update per-body range history
	m.updateBodyHistory(s)
}

// detectEvents compares the new scene with previous state and generates events.
func (m *Manager) detectEvents(s *scene.Scene, prevErr error) {
	now := time.Now()

	if m.current == nil {
		m.addEvent(Event{
			Type:      EventSceneReady,
			Timestamp: now,
			Center:    s.Center.Code,
			Detail:    fmt.Sprintf("%d traces, %d points", len(s.Traces), s.TotalPoints()),
		})
		return
	}

	if prevErr != nil {
		m.addEvent(Event{
			Type:      EventBuildRecovered,
			Timestamp: now,
			Center:    s.Center.Code,
			Detail:    prevErr.Error(),
		})
	}

	if m.current.Center.Code != s.Center.Code {
		m.addEvent(Event{
			Type:      EventCenterChange,
			Timestamp: now,
			Center:    s.Center.Code,
			OldCenter: m.current.Center.Code,
		})
		// Range samples are measured from the old center; a new
		// center invalidates them.
		m.bodyHistory = make(map[string]*BodyHistory)
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

func (m *Manager) updateBodyHistory(s *scene.Scene) {
	for i := range s.Markers {
		mk := &s.Markers[i]
		if mk.Code == s.Center.Code {
			continue
		}

		hist, ok := m.bodyHistory[mk.Code]
		if !ok {
			hist = &BodyHistory{
				Code:         mk.Code,
				Name:         mk.Name,
				RangeHistory: make([]TimeSeries, 0, m.maxBodyHist),
			}
			m.bodyHistory[mk.Code] = hist
		}

		hist.RangeHistory = append(hist.RangeHistory, TimeSeries{Timestamp: s.Epoch, Value: mk.RangeAU()})
		if len(hist.RangeHistory) > m.maxBodyHist {
			hist.RangeHistory = hist.RangeHistory[1:]
		}
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Scene         *scene.Scene
	LastBuild     time.Time
	LastError     error
	BuildDuration time.Duration
	Center        string
	Epoch         time.Time
	Builds        []BuildRecord
	Events        []Event
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Copy build history
	builds := make([]BuildRecord, len(m.builds))
	copy(builds, m.builds)

	// Copy events in chronological order
	events := m.getEventsOrdered()

	return Snapshot{
		Scene:         m.current,
		LastBuild:     m.lastBuild,
		LastError:     m.lastError,
		BuildDuration: m.buildDuration,
		Center:        m.center,
		Epoch:         m.epoch,
		Builds:        builds,
		Events:        events,
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
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

// GetBodyHistory returns range history for a specific body.
func (m *Manager) GetBodyHistory(code string) *BodyHistory {
	m.mu.RLock()
	defer m.mu.RUnlock()

	hist, ok := m.bodyHistory[code]
	if !ok {
		return nil
	}

	// Return a copy
	copyHist := &BodyHistory{
		Code:         hist.Code,
		Name:         hist.Name,
		RangeHistory: make([]TimeSeries, len(hist.RangeHistory)),
	}
	copy(copyHist.RangeHistory, hist.RangeHistory)

	return copyHist
}

// EstimateRadialVelocity estimates a body's range rate relative to the
// view center in km/s, from the last two range samples. Positive means
// receding.
func (m *Manager) EstimateRadialVelocity(code string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	hist, ok := m.bodyHistory[code]
	if !ok || len(hist.RangeHistory) < 2 {
		return 0
	}

	// Use last two points for the estimate
	n := len(hist.RangeHistory)
	p1 := hist.RangeHistory[n-2]
	p2 := hist.RangeHistory[n-1]

	deltaTime := p2.Timestamp.Sub(p1.Timestamp).Seconds()
	if deltaTime <= 0 {
		return 0
	}

	return astro.AUToKm(p2.Value-p1.Value) / deltaTime
}

// BuildOptions composes the current view selection into scene options
// for the next rebuild.
func (m *Manager) BuildOptions() scene.Options {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return scene.Options{
		Center:    m.center,
		Epoch:     m.epoch,
		Seed:      m.seed,
		MaxPoints: m.maxPoints,
	}
}

// Center returns the currently selected view center code.
func (m *Manager) Center() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.center
}

// SetCenter changes the selected view center. It reports whether the
// selection actually changed.
func (m *Manager) SetCenter(code string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code == m.center {
		return false
	}
	m.center = code
	return true
}

// Epoch returns the selected epoch override. Zero means live.
func (m *Manager) Epoch() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.epoch
}

// SetEpoch updates the epoch override for subsequent rebuilds.
func (m *Manager) SetEpoch(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.epoch = t
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

// HasScene returns true if at least one build has succeeded.
func (m *Manager) HasScene() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}
