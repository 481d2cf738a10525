package services

import (
	"strings"
	"sync"
)

// SessionStore keeps the accumulated conversation transcript per sender.
// Process-local: contents are lost on restart and are not a source of truth
// beyond the current process lifetime.
type SessionStore struct {
	mu       sync.RWMutex
	contexts map[string]string
	maxTurns int
}

// NewSessionStore creates a new session store. maxTurns bounds the number of
// user/assistant exchanges kept per sender; 0 keeps the full transcript
// forever (unbounded growth).
func NewSessionStore(maxTurns int) *SessionStore {
	return &SessionStore{
		contexts: make(map[string]string),
		maxTurns: maxTurns,
	}
}

// Context returns the stored transcript for a sender, empty if none
func (s *SessionStore) Context(sender string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.contexts[sender]
}

// Append records one completed exchange: the user message followed by the
// assistant reply, each on its own line.
func (s *SessionStore) Append(sender string, userMessage string, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	context := s.contexts[sender] + "\n" + userMessage + "\n" + reply
	if s.maxTurns > 0 {
		context = trimToLastLines(context, s.maxTurns*2)
	}
	s.contexts[sender] = context
}

// ActiveSenders returns the number of senders with stored context (for
// monitoring)
func (s *SessionStore) ActiveSenders() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.contexts)
}

// trimToLastLines keeps the trailing n non-empty lines of a transcript,
// preserving the leading newline separator.
func trimToLastLines(context string, n int) string {
	lines := strings.Split(strings.TrimPrefix(context, "\n"), "\n")
	if len(lines) <= n {
		return context
	}
	return "\n" + strings.Join(lines[len(lines)-n:], "\n")
}
