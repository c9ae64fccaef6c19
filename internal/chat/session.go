package chat

import "sync"

// SessionStore holds one Selection per chat user. Only the map itself is
// shared between goroutines; a transport delivers one user's events in order,
// so the Selection a Get returns is never accessed concurrently.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Selection
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*Selection)}
}

// Get returns the selection for a chat user, creating an idle one on first
// contact.
func (st *SessionStore) Get(chatID int64) *Selection {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[chatID]; ok {
		return s
	}
	s := NewSelection()
	st.sessions[chatID] = s
	return s
}

// Drop removes a user's session entirely.
func (st *SessionStore) Drop(chatID int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, chatID)
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
