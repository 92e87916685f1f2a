// Package session tracks the interactive admin session: who is operating the
// tool and for how long. It holds no business state; the ticker only pushes a
// formatted elapsed-time string to whoever wants to display it.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"camping-rental-admin/internal/logger"
)

type Session struct {
	ID       string
	Operator string

	mu      sync.Mutex
	started time.Time
	ticker  *time.Ticker
	done    chan struct{}
}

// New starts a session clock for the given operator. An empty operator name
// records as "Guest", matching the pre-login display of the original tool.
func New(operator string) *Session {
	if operator == "" {
		operator = "Guest"
	}
	s := &Session{
		ID:       uuid.NewString(),
		Operator: operator,
		started:  time.Now(),
	}
	logger.Info("Session started", "session_id", s.ID, "operator", operator)
	return s
}

func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.started)
}

// ElapsedString formats the elapsed session time as HH:MM:SS.
func (s *Session) ElapsedString() string {
	return FormatElapsed(s.Elapsed())
}

func FormatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

// StartClock begins publishing the formatted elapsed time to display at every
// interval until StopClock is called. At most one clock runs per session.
func (s *Session) StartClock(interval time.Duration, display func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker != nil {
		return
	}

	s.ticker = time.NewTicker(interval)
	s.done = make(chan struct{})

	go func(ticker *time.Ticker, done chan struct{}) {
		for {
			select {
			case <-ticker.C:
				display(s.ElapsedString())
			case <-done:
				return
			}
		}
	}(s.ticker, s.done)
}

// StopClock stops the ticker goroutine.
func (s *Session) StopClock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	s.done = nil
}

// Reset restarts the elapsed clock from zero.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = time.Now()
}
