// Package conversation owns the per-session transcript: hydration from
// server history and question/answer turns with an optimistic local append.
package conversation

import (
	"errors"
	"strings"
	"sync"

	"github.com/talentrag/talentrag-cli/internal/talentrag"

	"go.uber.org/zap"
)

// State of the manager. AwaitingAnswer is transient: it is entered when a
// question has been appended locally and lasts until the backend answers or
// fails.
type State string

const (
	StateEmpty          State = "empty"
	StateLoading        State = "loading"
	StateReady          State = "ready"
	StateAwaitingAnswer State = "awaiting_answer"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one transcript entry. Question is set for user turns, Answer and
// Sources for assistant turns. Turns are only ever appended.
type Turn struct {
	Role     Role
	Question string
	Answer   string
	Sources  []talentrag.Source
}

var (
	// ErrEmptyQuestion rejects blank questions before any network call.
	ErrEmptyQuestion = errors.New("question is empty")
	// ErrAskInFlight serializes questions: one at a time per session.
	ErrAskInFlight = errors.New("a question is already awaiting an answer")
)

// API is the slice of the backend client the manager needs.
type API interface {
	History(sessionID string) ([]talentrag.ChatRecord, error)
	Ask(sessionID, question string) (*talentrag.AskResponse, error)
}

type Manager struct {
	api    API
	logger *zap.Logger

	mu    sync.Mutex
	state State
	turns []Turn
}

func NewManager(api API, logger *zap.Logger) *Manager {
	return &Manager{
		api:    api,
		logger: logger,
		state:  StateEmpty,
	}
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Turns returns a copy of the transcript in conversation order.
func (m *Manager) Turns() []Turn {
	m.mu.Lock()
	defer m.mu.Unlock()

	turns := make([]Turn, len(m.turns))
	copy(turns, m.turns)

	return turns
}

// Hydrate loads the stored transcript for the session, preserving server
// order. Failure is non-fatal: a brand-new session legitimately has no
// history, so the manager stays empty and only logs the cause.
func (m *Manager) Hydrate(sessionID string) {
	m.mu.Lock()
	m.state = StateLoading
	m.mu.Unlock()

	records, err := m.api.History(sessionID)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.logger.Debug("hydration failed, starting with an empty transcript",
			zap.String("session", sessionID),
			zap.Error(err),
		)
		m.state = StateEmpty
		return
	}

	turns := make([]Turn, 0, len(records))
	for _, record := range records {
		switch Role(record.Role) {
		case RoleUser:
			turns = append(turns, Turn{Role: RoleUser, Question: record.Question})
		case RoleAssistant:
			sources := record.Sources
			if sources == nil {
				sources = []talentrag.Source{}
			}
			turns = append(turns, Turn{Role: RoleAssistant, Answer: record.Answer, Sources: sources})
		default:
			m.logger.Debug("skipping transcript record with unknown role", zap.String("role", record.Role))
		}
	}

	m.turns = turns
	m.state = StateReady
}

// Ask appends the question locally before the network call resolves, then
// requests the answer. On success the assistant turn lands at index+1. On
// failure the question stays visible with no matching answer and the state
// returns to Ready so the caller may retry with a new question; history is
// never rolled back. The returned index is the position of the user turn.
func (m *Manager) Ask(sessionID, question string) (int, error) {
	if strings.TrimSpace(question) == "" {
		return 0, ErrEmptyQuestion
	}

	m.mu.Lock()
	if m.state == StateAwaitingAnswer {
		m.mu.Unlock()
		return 0, ErrAskInFlight
	}
	index := len(m.turns)
	m.turns = append(m.turns, Turn{Role: RoleUser, Question: question})
	m.state = StateAwaitingAnswer
	m.mu.Unlock()

	resp, err := m.api.Ask(sessionID, question)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateReady

	if err != nil {
		m.logger.Warn("question left unanswered",
			zap.String("session", sessionID),
			zap.Error(err),
		)
		return index, err
	}

	sources := resp.Sources
	if sources == nil {
		sources = []talentrag.Source{}
	}
	m.turns = append(m.turns, Turn{Role: RoleAssistant, Answer: resp.Answer, Sources: sources})

	return index, nil
}
