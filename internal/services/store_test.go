package services

import (
	"fmt"
	"testing"

	"quiz-bot-backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Question{}, &models.User{}, &models.Answer{}))
	return db
}

func seedQuestions(t *testing.T, db *gorm.DB, n int) {
	for i := 0; i < n; i++ {
		q := models.Question{
			Text:          fmt.Sprintf("question %d", i+1),
			OptionA:       "one",
			OptionB:       "two",
			OptionC:       "three",
			OptionD:       "four",
			CorrectAnswer: "A",
		}
		require.NoError(t, db.Create(&q).Error)
	}
}

func TestFetchRandomQuestionsFullPool(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, 10)
	store := NewStoreService(db)

	questions, err := store.FetchRandomQuestions(10)
	require.NoError(t, err)
	require.Len(t, questions, 10)

	seen := make(map[uint]bool)
	for _, q := range questions {
		require.False(t, seen[q.ID])
		seen[q.ID] = true
	}
}

func TestFetchRandomQuestionsShortPool(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, 4)
	store := NewStoreService(db)

	questions, err := store.FetchRandomQuestions(10)
	require.NoError(t, err)
	require.Len(t, questions, 4)
}

func TestFetchRandomQuestionsEmptyPool(t *testing.T) {
	db := newTestDB(t)
	store := NewStoreService(db)

	questions, err := store.FetchRandomQuestions(10)
	require.NoError(t, err)
	require.Empty(t, questions)
}

func TestReplaceUserRemovesPriorRecordAndAnswers(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, 2)
	store := NewStoreService(db)

	require.NoError(t, store.ReplaceUser(100, "Sam"))
	require.NoError(t, store.RecordAnswer(100, 1, "A"))
	require.NoError(t, store.RecordAnswer(100, 2, "X"))

	require.NoError(t, store.ReplaceUser(100, "Sam2"))

	var users []models.User
	require.NoError(t, db.Where("telegram_id = ?", int64(100)).Find(&users).Error)
	require.Len(t, users, 1)
	require.Equal(t, "Sam2", users[0].Name)

	var count int64
	require.NoError(t, db.Model(&models.Answer{}).Where("telegram_id = ?", int64(100)).Count(&count).Error)
	require.Zero(t, count)
}

func TestReplaceUserLeavesOtherUsersAlone(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, 1)
	store := NewStoreService(db)

	require.NoError(t, store.ReplaceUser(1, "Ann"))
	require.NoError(t, store.RecordAnswer(1, 1, "A"))
	require.NoError(t, store.ReplaceUser(2, "Bob"))

	var count int64
	require.NoError(t, db.Model(&models.Answer{}).Where("telegram_id = ?", int64(1)).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestRecordAnswerKeepsDuplicates(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, 1)
	store := NewStoreService(db)

	require.NoError(t, store.RecordAnswer(5, 1, "B"))
	require.NoError(t, store.RecordAnswer(5, 1, "B"))

	answers, err := store.AnswersFor(5)
	require.NoError(t, err)
	require.Len(t, answers, 2)
}

func TestCorrectAnswerFor(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db, 1)
	store := NewStoreService(db)

	label, err := store.CorrectAnswerFor(1)
	require.NoError(t, err)
	require.Equal(t, "A", label)

	_, err = store.CorrectAnswerFor(999)
	require.Error(t, err)
}
