package telegram

import (
	"sync"

	"quiz-bot-backend/internal/quiz"
)

const (
	StateNone           = ""
	StateAwaitingName   = "awaiting_name"
	StateAwaitingAnswer = "awaiting_answer"
)

// UserState is the per-user scratch state for one quiz session: the drawn
// question set (fixed at session start), the current index into it and the
// running score. It lives only for the duration of the conversation.
type UserState struct {
	State     string
	Questions []quiz.Question
	Index     int
	Score     int
}

// StateManager maps user identifiers to their session state. It is the only
// place session state lives; nothing outside this package reaches into it.
type StateManager struct {
	mu    sync.RWMutex
	users map[int64]*UserState
}

func NewStateManager() *StateManager {
	return &StateManager{
		users: make(map[int64]*UserState),
	}
}

func (m *StateManager) Get(userID int64) *UserState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.users[userID]
	if !ok {
		return &UserState{}
	}
	cp := *s
	return &cp
}

func (m *StateManager) Set(userID int64, state *UserState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[userID] = state
}

func (m *StateManager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, userID)
}

func (m *StateManager) UpdateField(userID int64, fn func(s *UserState)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.users[userID]
	if !ok {
		s = &UserState{}
		m.users[userID] = s
	}
	fn(s)
}
