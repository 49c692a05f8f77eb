package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validInput() QuestionInput {
	return QuestionInput{
		Text:          "What is 2 + 2?",
		OptionA:       "3",
		OptionB:       "4",
		OptionC:       "5",
		OptionD:       "6",
		CorrectAnswer: "b",
	}
}

func TestCreateQuestionUppercasesLabel(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)

	q, err := svc.CreateQuestion(validInput())
	require.NoError(t, err)
	require.Equal(t, "B", q.CorrectAnswer)
}

func TestCreateQuestionRejectsBadLabel(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)

	input := validInput()
	input.CorrectAnswer = "E"
	_, err := svc.CreateQuestion(input)
	require.Error(t, err)
}

func TestCreateQuestionRequiresAllOptions(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)

	input := validInput()
	input.OptionC = ""
	_, err := svc.CreateQuestion(input)
	require.Error(t, err)
}

func TestUpdateAndDeleteQuestion(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)

	q, err := svc.CreateQuestion(validInput())
	require.NoError(t, err)

	input := validInput()
	input.Text = "What is 3 + 3?"
	input.CorrectAnswer = "D"
	updated, err := svc.UpdateQuestion(q.ID, input)
	require.NoError(t, err)
	require.Equal(t, "What is 3 + 3?", updated.Text)
	require.Equal(t, "D", updated.CorrectAnswer)

	require.NoError(t, svc.DeleteQuestion(q.ID))
	require.Error(t, svc.DeleteQuestion(q.ID))

	questions, err := svc.ListQuestions()
	require.NoError(t, err)
	require.Empty(t, questions)
}
