package services

import (
	"errors"
	"strings"

	"quiz-bot-backend/internal/models"

	"gorm.io/gorm"
)

// QuestionService manages the question pool behind the admin API. The bot
// itself only ever reads questions, through StoreService.
type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type QuestionInput struct {
	Text          string `json:"text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
}

func validateQuestionInput(input QuestionInput) (string, error) {
	if strings.TrimSpace(input.Text) == "" {
		return "", errors.New("question text is required")
	}
	for _, opt := range []string{input.OptionA, input.OptionB, input.OptionC, input.OptionD} {
		if strings.TrimSpace(opt) == "" {
			return "", errors.New("all four options are required")
		}
	}
	label := strings.ToUpper(strings.TrimSpace(input.CorrectAnswer))
	switch label {
	case "A", "B", "C", "D":
		return label, nil
	}
	return "", errors.New("correct_answer must be one of A, B, C, D")
}

func (s *QuestionService) ListQuestions() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) CreateQuestion(input QuestionInput) (*models.Question, error) {
	label, err := validateQuestionInput(input)
	if err != nil {
		return nil, err
	}

	question := models.Question{
		Text:          input.Text,
		OptionA:       input.OptionA,
		OptionB:       input.OptionB,
		OptionC:       input.OptionC,
		OptionD:       input.OptionD,
		CorrectAnswer: label,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) UpdateQuestion(questionID uint, input QuestionInput) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		return nil, errors.New("question not found")
	}

	label, err := validateQuestionInput(input)
	if err != nil {
		return nil, err
	}

	question.Text = input.Text
	question.OptionA = input.OptionA
	question.OptionB = input.OptionB
	question.OptionC = input.OptionC
	question.OptionD = input.OptionD
	question.CorrectAnswer = label
	if err := s.db.Save(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) DeleteQuestion(questionID uint) error {
	result := s.db.Delete(&models.Question{}, questionID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("question not found")
	}
	return nil
}
