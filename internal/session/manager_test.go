package session

import (
	"sync"
	"testing"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionCounter records the last open session count it was given
type sessionCounter struct {
	metrics.NoopRecorder
	mu   sync.Mutex
	open int
}

func (c *sessionCounter) SetOpenSessions(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = n
}

func newTestManager(t *testing.T, maxSessions int) (*Manager, *sessionCounter) {
	t.Helper()
	counter := &sessionCounter{}
	m, err := NewManager(maxSessions, counter)
	require.NoError(t, err)
	return m, counter
}

func TestNewManager(t *testing.T) {
	m, counter := newTestManager(t, 1)
	assert.Equal(t, []string{DefaultID}, m.List())
	assert.Equal(t, 1, counter.open)

	_, err := NewManager(0, nil)
	assert.ErrorIs(t, err, ErrInvalidMaxSession)
}

func TestCreateAndClose(t *testing.T) {
	m, counter := newTestManager(t, 3)

	first, err := m.Create()
	require.NoError(t, err)
	_, err = uuid.Parse(first)
	assert.NoError(t, err, "session IDs should be UUIDs")

	second, err := m.Create()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 3, counter.open)
	assert.Len(t, m.List(), 3)
	assert.Equal(t, DefaultID, m.List()[0])

	_, err = m.Create()
	assert.ErrorIs(t, err, ErrTooManySessions)

	require.NoError(t, m.Close(first))
	assert.Equal(t, 2, counter.open)
	assert.Equal(t, []string{DefaultID, second}, m.List())

	err = m.Close(first)
	assert.ErrorIs(t, err, ErrUnknownSession)

	_, err = m.Create()
	assert.NoError(t, err, "closing a session should free a slot")
}

func TestCloseDefault(t *testing.T) {
	m, _ := newTestManager(t, 2)

	assert.ErrorIs(t, m.Close(DefaultID), ErrCloseDefault)
	assert.ErrorIs(t, m.Close(""), ErrCloseDefault)
	assert.Equal(t, []string{DefaultID}, m.List())
}

func TestDo(t *testing.T) {
	m, _ := newTestManager(t, 2)

	state, err := m.Do("", func(c *calculator.Calculator) error {
		return c.PressDigitKey(7)
	})
	require.NoError(t, err)
	assert.Equal(t, "7", state.Display)

	// The empty ID and DefaultID name the same calculator.
	state, err = m.Do(DefaultID, func(c *calculator.Calculator) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, "7", state.Display)

	id, err := m.Create()
	require.NoError(t, err)
	state, err = m.Do(id, func(c *calculator.Calculator) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, "0", state.Display, "new sessions should start from zero")
}

func TestDoReturnsStateOnError(t *testing.T) {
	m, _ := newTestManager(t, 1)

	state, err := m.Do("", func(c *calculator.Calculator) error {
		if err := c.PressDigitKey(4); err != nil {
			return err
		}
		return c.PressEqualsKey()
	})
	assert.ErrorIs(t, err, calculator.ErrInvalidArgument)
	assert.Equal(t, "4", state.Display)
}

func TestDoUnknownSession(t *testing.T) {
	m, _ := newTestManager(t, 1)

	called := false
	_, err := m.Do("missing", func(c *calculator.Calculator) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrUnknownSession)
	assert.False(t, called)
}

func TestDoSerializesKeyPresses(t *testing.T) {
	m, _ := newTestManager(t, 1)

	_, err := m.Do("", func(c *calculator.Calculator) error {
		return c.PressBinaryOperationKey(calculator.OpAdd)
	})
	require.NoError(t, err)

	// Every "1 +" folds one more into the pending operand.
	const workers = 50
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Do("", func(c *calculator.Calculator) error {
				if err := c.PressDigitKey(1); err != nil {
					return err
				}
				return c.PressBinaryOperationKey(calculator.OpAdd)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	state, err := m.Do("", func(c *calculator.Calculator) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, float64(workers), state.PendingOperand)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, DefaultID, Resolve(""))
	assert.Equal(t, "abc", Resolve("abc"))
}
