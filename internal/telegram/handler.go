package telegram

import (
	"fmt"
	"log"
	"strings"

	"quiz-bot-backend/internal/models"
	"quiz-bot-backend/internal/quiz"
	"quiz-bot-backend/internal/ws"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Gateway is the slice of the persistence layer the conversation engine
// depends on. Correctness of an answer is derived from the drawn in-memory
// question set, never re-queried from storage.
type Gateway interface {
	FetchRandomQuestions(count int) ([]models.Question, error)
	ReplaceUser(telegramID int64, name string) error
	RecordAnswer(telegramID int64, questionID uint, submittedText string) error
}

// Sender is satisfied by *tgbotapi.BotAPI.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type UpdateHandler struct {
	sender   Sender
	state    *StateManager
	gateway  Gateway
	hub      *ws.Hub
	drawSize int
}

func NewUpdateHandler(sender Sender, state *StateManager, gateway Gateway, hub *ws.Hub, drawSize int) *UpdateHandler {
	return &UpdateHandler{
		sender:   sender,
		state:    state,
		gateway:  gateway,
		hub:      hub,
		drawSize: drawSize,
	}
}

func (h *UpdateHandler) Handle(upd tgbotapi.Update) {
	if upd.Message != nil {
		h.handleMessage(upd.Message)
	}
}

func (h *UpdateHandler) handleMessage(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	userID := msg.From.ID
	chatID := msg.Chat.ID

	// Commands never fall through into the name/answer handlers.
	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			h.cmdStart(userID, chatID)
		default:
			h.send(chatID, "Unknown command. Use /start to begin the quiz.")
		}
		return
	}

	us := h.state.Get(userID)
	switch us.State {
	case StateAwaitingName:
		h.onName(userID, chatID, msg.Text)
	case StateAwaitingAnswer:
		h.onAnswer(userID, chatID, msg.Text)
	default:
		h.send(chatID, "Use /start to begin the quiz.")
	}
}

// cmdStart is valid at any point. Restarting mid-session overwrites the
// state entry, so late messages from the abandoned session have nothing
// left to mutate.
func (h *UpdateHandler) cmdStart(userID, chatID int64) {
	h.state.Set(userID, &UserState{State: StateAwaitingName})
	h.send(chatID, "Welcome! Please enter your name to start the quiz.")
}

func (h *UpdateHandler) onName(userID, chatID int64, name string) {
	if err := h.gateway.ReplaceUser(userID, name); err != nil {
		log.Printf("replace user %d: %v", userID, err)
		return
	}

	rows, err := h.gateway.FetchRandomQuestions(h.drawSize)
	if err != nil {
		log.Printf("fetch questions for %d: %v", userID, err)
		return
	}
	if len(rows) == 0 {
		h.state.Clear(userID)
		h.send(chatID, "No questions are available right now. Please try again later.")
		return
	}

	questions := make([]quiz.Question, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, quiz.FromModel(row))
	}

	st := &UserState{
		State:     StateAwaitingAnswer,
		Questions: questions,
		Index:     0,
		Score:     0,
	}
	h.state.Set(userID, st)

	h.send(chatID, fmt.Sprintf("Hello %s! %d random questions have been selected for you.", name, len(questions)))
	h.sendQuestion(chatID, *st)

	h.broadcast("session_started", map[string]interface{}{
		"telegram_id": userID,
		"name":        name,
		"questions":   len(questions),
	})
}

func (h *UpdateHandler) onAnswer(userID, chatID int64, text string) {
	us := h.state.Get(userID)
	question := us.Questions[us.Index]

	submitted := strings.ToUpper(text)
	if question.Check(submitted) {
		h.state.UpdateField(userID, func(s *UserState) {
			s.Score++
		})
	}

	// The score increment above and this write are not linked; if the write
	// fails the in-memory score is already ahead of storage.
	if err := h.gateway.RecordAnswer(userID, question.ID, submitted); err != nil {
		log.Printf("record answer for %d: %v", userID, err)
		return
	}

	var st UserState
	h.state.UpdateField(userID, func(s *UserState) {
		s.Index++
		st = *s
	})

	h.broadcast("answer_recorded", map[string]interface{}{
		"telegram_id": userID,
		"question_id": question.ID,
		"answered":    st.Index,
		"total":       len(st.Questions),
	})

	if st.Index < len(st.Questions) {
		h.sendQuestion(chatID, st)
		return
	}

	h.state.Clear(userID)
	h.send(chatID, fmt.Sprintf("You completed the quiz! You answered %d out of %d questions correctly.", st.Score, len(st.Questions)))
	h.send(chatID, "Thanks for participating! Have a great day.")

	h.broadcast("session_finished", map[string]interface{}{
		"telegram_id": userID,
		"score":       st.Score,
		"total":       len(st.Questions),
	})
}

func (h *UpdateHandler) sendQuestion(chatID int64, st UserState) {
	q := st.Questions[st.Index]
	h.send(chatID, fmt.Sprintf("Question %d: %s\n%s", st.Index+1, q.Prompt(), q.RenderOptions()))
}

func (h *UpdateHandler) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.sender.Send(msg); err != nil {
		log.Printf("send to %d: %v", chatID, err)
	}
}

func (h *UpdateHandler) broadcast(eventType string, data interface{}) {
	if h.hub == nil {
		return
	}
	h.hub.Broadcast(ws.Event{Type: eventType, Data: data})
}
