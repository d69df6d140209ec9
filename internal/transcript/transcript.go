// Package transcript keeps the session conversation history.
package transcript

import "findwork-assistant/internal/domain"

// Log is an append-only, session-lifetime conversation record. Entries
// are never removed and no size bound is enforced. Only the interactive
// loop writes to it, so no locking is needed.
type Log struct {
	entries []domain.ConversationEntry
}

func New() *Log {
	return &Log{}
}

// Append records one turn.
func (l *Log) Append(role domain.Role, content string) {
	l.entries = append(l.entries, domain.ConversationEntry{
		Role:    role,
		Content: content,
	})
}

// Entries returns a copy of the history in insertion order.
func (l *Log) Entries() []domain.ConversationEntry {
	out := make([]domain.ConversationEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	return len(l.entries)
}
