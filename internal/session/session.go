// Package session holds the worker details collected during one run of the
// app. Nothing here is written anywhere; a Session lives only in memory.
package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Worker is the information collected on the Welcome and Onboarding screens.
// Every field is free text and may be empty.
type Worker struct {
	ID          string
	FirstName   string
	LastName    string
	WorkStation string
}

// FullName joins the first and last name, skipping empty parts.
func (w Worker) FullName() string {
	return strings.TrimSpace(strings.Join([]string{
		strings.TrimSpace(w.FirstName),
		strings.TrimSpace(w.LastName),
	}, " "))
}

// Summary is a one-line description for headers and log lines.
func (w Worker) Summary() string {
	var parts []string
	if id := strings.TrimSpace(w.ID); id != "" {
		parts = append(parts, "ID "+id)
	}
	if name := w.FullName(); name != "" {
		parts = append(parts, name)
	}
	if ws := strings.TrimSpace(w.WorkStation); ws != "" {
		parts = append(parts, "Station "+ws)
	}
	if len(parts) == 0 {
		return "Anonymous worker"
	}
	return strings.Join(parts, " · ")
}

// Session groups a worker with a random identifier used to correlate logs.
type Session struct {
	ID     string
	Worker Worker
}

// New starts a session with a fresh identifier.
func New() *Session {
	return &Session{ID: uuid.NewString()}
}

// ShortID returns the first block of the session identifier.
func (s *Session) ShortID() string {
	if s == nil {
		return ""
	}
	if i := strings.IndexByte(s.ID, '-'); i > 0 {
		return s.ID[:i]
	}
	return s.ID
}

func (s *Session) String() string {
	if s == nil {
		return "<nil session>"
	}
	return fmt.Sprintf("session %s (%s)", s.ShortID(), s.Worker.Summary())
}
