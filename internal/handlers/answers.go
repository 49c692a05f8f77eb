package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"quiz-bot-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AnswersHandler struct {
	store *services.StoreService
}

func NewAnswersHandler(store *services.StoreService) *AnswersHandler {
	return &AnswersHandler{store: store}
}

type AnswerView struct {
	QuestionID    uint      `json:"question_id"`
	SubmittedText string    `json:"submitted_text"`
	Correct       bool      `json:"correct"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

type UserAnswersResponse struct {
	TelegramID int64        `json:"telegram_id"`
	Name       string       `json:"name"`
	Answers    []AnswerView `json:"answers"`
}

// ListUserAnswers returns the answers recorded for one user with
// correctness derived from the stored correct labels.
func (h *AnswersHandler) ListUserAnswers(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegram_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid telegram id"})
		return
	}

	user, err := h.store.GetUser(telegramID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		return
	}

	answers, err := h.store.AnswersFor(telegramID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	views := make([]AnswerView, 0, len(answers))
	for _, a := range answers {
		correctLabel, err := h.store.CorrectAnswerFor(a.QuestionID)
		if err != nil {
			continue
		}
		views = append(views, AnswerView{
			QuestionID:    a.QuestionID,
			SubmittedText: a.SubmittedText,
			Correct:       strings.EqualFold(a.SubmittedText, correctLabel),
			SubmittedAt:   a.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, UserAnswersResponse{
		TelegramID: user.TelegramID,
		Name:       user.Name,
		Answers:    views,
	})
}
