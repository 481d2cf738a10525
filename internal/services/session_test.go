package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionContextEmptyForUnknownSender(t *testing.T) {
	sessions := NewSessionStore(0)
	assert.Equal(t, "", sessions.Context("+97455555555"))
}

func TestSessionAppendAccumulatesInOrder(t *testing.T) {
	sessions := NewSessionStore(0)

	sessions.Append("+97455555555", "q1", "a1")
	sessions.Append("+97455555555", "q2", "a2")

	assert.Equal(t, "\nq1\na1\nq2\na2", sessions.Context("+97455555555"))
}

func TestSessionIsolatedPerSender(t *testing.T) {
	sessions := NewSessionStore(0)

	sessions.Append("a", "from A", "reply A")
	sessions.Append("b", "from B", "reply B")

	assert.Equal(t, "\nfrom A\nreply A", sessions.Context("a"))
	assert.Equal(t, "\nfrom B\nreply B", sessions.Context("b"))
}

func TestSessionMaxTurnsTrimsOldestLines(t *testing.T) {
	sessions := NewSessionStore(2)

	sessions.Append("s", "q1", "a1")
	sessions.Append("s", "q2", "a2")
	sessions.Append("s", "q3", "a3")

	// Only the last two exchanges survive
	assert.Equal(t, "\nq2\na2\nq3\na3", sessions.Context("s"))
}

func TestSessionUnboundedWhenMaxTurnsZero(t *testing.T) {
	sessions := NewSessionStore(0)

	for i := 0; i < 100; i++ {
		sessions.Append("s", "q", "a")
	}

	assert.Len(t, sessions.Context("s"), 100*len("\nq\na"))
}

func TestActiveSenders(t *testing.T) {
	sessions := NewSessionStore(0)
	assert.Equal(t, 0, sessions.ActiveSenders())

	sessions.Append("a", "q", "a")
	sessions.Append("b", "q", "a")
	sessions.Append("a", "q", "a")

	assert.Equal(t, 2, sessions.ActiveSenders())
}
