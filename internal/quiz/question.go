package quiz

import (
	"fmt"
	"strings"

	"quiz-bot-backend/internal/models"
)

// Kind is a closed enumeration of question kinds. Adding a kind means
// extending this enumeration and the switch in RenderOptions/Check, not a
// new type hierarchy.
type Kind int

const (
	KindMultipleChoice Kind = iota
)

var optionLabels = [4]string{"A", "B", "C", "D"}

// Question is an immutable in-memory view of one drawn question. All
// methods are pure.
type Question struct {
	Kind          Kind
	ID            uint
	Text          string
	Options       [4]string
	CorrectAnswer string
}

// FromModel builds the in-memory question from its stored record.
func FromModel(q models.Question) Question {
	return Question{
		Kind:          KindMultipleChoice,
		ID:            q.ID,
		Text:          q.Text,
		Options:       [4]string{q.OptionA, q.OptionB, q.OptionC, q.OptionD},
		CorrectAnswer: q.CorrectAnswer,
	}
}

// Prompt returns the question text.
func (q Question) Prompt() string {
	return q.Text
}

// RenderOptions formats the four options as four lines labeled A through D,
// always in that order.
func (q Question) RenderOptions() string {
	lines := make([]string, 0, len(optionLabels))
	for i, label := range optionLabels {
		lines = append(lines, fmt.Sprintf("%s. %s", label, q.Options[i]))
	}
	return strings.Join(lines, "\n")
}

// Check reports whether the submitted text matches the stored correct
// label, case-insensitively. Any string is accepted; text that is not one
// of the labels simply never matches. No trimming is applied.
func (q Question) Check(submitted string) bool {
	return strings.ToUpper(submitted) == strings.ToUpper(q.CorrectAnswer)
}
