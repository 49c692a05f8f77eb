package quiz

import (
	"strings"
	"testing"

	"quiz-bot-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func sampleQuestion() Question {
	return FromModel(models.Question{
		ID:            7,
		Text:          "What is the capital of France?",
		OptionA:       "Paris",
		OptionB:       "Lyon",
		OptionC:       "Marseille",
		OptionD:       "Nice",
		CorrectAnswer: "A",
	})
}

func TestFromModel(t *testing.T) {
	q := sampleQuestion()
	require.Equal(t, KindMultipleChoice, q.Kind)
	require.Equal(t, uint(7), q.ID)
	require.Equal(t, "What is the capital of France?", q.Prompt())
	require.Equal(t, [4]string{"Paris", "Lyon", "Marseille", "Nice"}, q.Options)
}

func TestRenderOptionsFixedOrder(t *testing.T) {
	q := sampleQuestion()
	lines := strings.Split(q.RenderOptions(), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "A. Paris", lines[0])
	require.Equal(t, "B. Lyon", lines[1])
	require.Equal(t, "C. Marseille", lines[2])
	require.Equal(t, "D. Nice", lines[3])
}

func TestCheckCaseInsensitive(t *testing.T) {
	q := sampleQuestion()
	require.True(t, q.Check("A"))
	require.True(t, q.Check("a"))
	require.False(t, q.Check("B"))
	require.False(t, q.Check("b"))
}

func TestCheckTotalOverArbitraryInput(t *testing.T) {
	q := sampleQuestion()
	for _, input := range []string{"", "x", "AB", "Paris", "1", "  "} {
		require.False(t, q.Check(input))
	}
}

func TestCheckDoesNotTrim(t *testing.T) {
	q := sampleQuestion()
	require.False(t, q.Check(" A"))
	require.False(t, q.Check("A "))
	require.False(t, q.Check("A\n"))
}

func TestCheckLowercaseStoredLabel(t *testing.T) {
	q := FromModel(models.Question{CorrectAnswer: "c"})
	require.True(t, q.Check("C"))
	require.True(t, q.Check("c"))
}
