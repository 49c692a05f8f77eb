package services

import (
	"errors"

	"quiz-bot-backend/internal/models"

	"gorm.io/gorm"
)

// StoreService is the persistence gateway the conversation engine talks to.
// Each method is one self-contained transaction; the engine never spans two
// of them.
type StoreService struct {
	db *gorm.DB
}

func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{db: db}
}

// FetchRandomQuestions draws up to count questions with uniform random
// selection. A pool smaller than count yields a shorter slice, not an
// error. Each call is an independent draw; nothing prevents the same
// questions appearing in a later session.
func (s *StoreService) FetchRandomQuestions(count int) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Order("RANDOM()").Limit(count).Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ReplaceUser deletes any user row and all answer rows for the identifier,
// then inserts a fresh user row, all in one transaction.
func (s *StoreService) ReplaceUser(telegramID int64, name string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("telegram_id = ?", telegramID).Delete(&models.User{}).Error; err != nil {
			return err
		}
		if err := tx.Where("telegram_id = ?", telegramID).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		user := models.User{TelegramID: telegramID, Name: name}
		return tx.Create(&user).Error
	})
}

// RecordAnswer appends an answer row. Duplicates for the same question and
// user are all stored.
func (s *StoreService) RecordAnswer(telegramID int64, questionID uint, submittedText string) error {
	answer := models.Answer{
		TelegramID:    telegramID,
		QuestionID:    questionID,
		SubmittedText: submittedText,
	}
	return s.db.Create(&answer).Error
}

// CorrectAnswerFor looks up the stored correct label for one question.
func (s *StoreService) CorrectAnswerFor(questionID uint) (string, error) {
	var question models.Question
	if err := s.db.Select("correct_answer").First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.New("question not found")
		}
		return "", err
	}
	return question.CorrectAnswer, nil
}

// GetUser returns the current user row for an identifier, if any.
func (s *StoreService) GetUser(telegramID int64) (*models.User, error) {
	var user models.User
	if err := s.db.Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AnswersFor lists the recorded answers for an identifier in submission
// order.
func (s *StoreService) AnswersFor(telegramID int64) ([]models.Answer, error) {
	var answers []models.Answer
	err := s.db.Where("telegram_id = ?", telegramID).Order("id ASC").Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}
