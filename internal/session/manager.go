package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/pkg/types"
	"github.com/google/uuid"
)

// DefaultID names the session used when a caller does not pick one. It always exists.
const DefaultID = "default"

var (
	ErrUnknownSession    = errors.New("unknown session")
	ErrTooManySessions   = errors.New("too many sessions")
	ErrCloseDefault      = errors.New("the default session cannot be closed")
	ErrInvalidMaxSession = errors.New("max sessions must be at least 1")
)

var _ types.SessionStore = &Manager{}

// session pairs a calculator with the lock that serializes its key presses
type session struct {
	mu   sync.Mutex
	calc *calculator.Calculator
}

// Manager manages calculator sessions
type Manager struct {
	sessions    map[string]*session
	maxSessions int
	recorder    metrics.Recorder
	mu          sync.RWMutex
}

// NewManager creates a session manager holding at most maxSessions sessions,
// counting the default session
func NewManager(maxSessions int, recorder metrics.Recorder) (*Manager, error) {
	if maxSessions < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxSession, maxSessions)
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	m := &Manager{
		sessions:    map[string]*session{DefaultID: {calc: calculator.New()}},
		maxSessions: maxSessions,
		recorder:    recorder,
	}
	recorder.SetOpenSessions(1)
	return m, nil
}

// Create opens a new session showing "0" and returns its ID
func (m *Manager) Create() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sessions) >= m.maxSessions {
		return "", fmt.Errorf("%w: limit is %d", ErrTooManySessions, m.maxSessions)
	}

	id := uuid.NewString()
	m.sessions[id] = &session{calc: calculator.New()}
	m.recorder.SetOpenSessions(len(m.sessions))

	slog.Debug("Created calculator session", "session_id", id, "open_sessions", len(m.sessions))
	return id, nil
}

// Close discards a session
func (m *Manager) Close(id string) error {
	id = Resolve(id)
	if id == DefaultID {
		return ErrCloseDefault
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	delete(m.sessions, id)
	m.recorder.SetOpenSessions(len(m.sessions))

	slog.Debug("Closed calculator session", "session_id", id, "open_sessions", len(m.sessions))
	return nil
}

// Do runs fn with exclusive access to the session's calculator and returns the state it
// left behind, even when fn fails.
func (m *Manager) Do(id string, fn func(*calculator.Calculator) error) (calculator.State, error) {
	id = Resolve(id)

	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return calculator.State{}, fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := fn(s.calc)
	return s.calc.Snapshot(), err
}

// List returns the open session IDs, default first
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions)-1)
	for id := range m.sessions {
		if id != DefaultID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return append([]string{DefaultID}, ids...)
}

// Resolve maps the empty session ID to DefaultID
func Resolve(id string) string {
	if id == "" {
		return DefaultID
	}
	return id
}
