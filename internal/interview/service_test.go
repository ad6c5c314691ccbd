package interview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	prompt string
	called bool
	resp   string
	err    error
}

func (f *fakeModel) CompleteJSON(_ context.Context, prompt string) (string, error) {
	f.called = true
	f.prompt = prompt
	return f.resp, f.err
}

func TestEvaluateTurnBuildsPromptAndReturnsRaw(t *testing.T) {
	model := &fakeModel{resp: `{"score": 90}`}
	svc := NewService(model, DefaultConfig())

	raw, err := svc.EvaluateTurn(context.Background(), EvalRequest{
		Question:      "What is a goroutine?",
		Answer:        "  a lightweight thread  ",
		QuestionIndex: "4",
		Field:         "software engineering",
		Speciality:    "backend",
		NumQuestions:  "15",
	})
	require.NoError(t, err)
	require.Equal(t, `{"score": 90}`, raw)

	// структура интервью для "15": 1-3 / 4-9 / 10-15
	require.Contains(t, model.prompt, "Questions 1 to 3")
	require.Contains(t, model.prompt, "Questions 4 to 9")
	require.Contains(t, model.prompt, "Questions 10 to 15")
	require.Contains(t, model.prompt, "backend speciality in software engineering field")
	require.Contains(t, model.prompt, `"What is a goroutine?"`)
	require.Contains(t, model.prompt, `"a lightweight thread"`)
	require.Contains(t, model.prompt, "question index: 4")
}

func TestEvaluateTurnEmptyAnswerStillPrompted(t *testing.T) {
	model := &fakeModel{resp: "{}"}
	svc := NewService(model, DefaultConfig())

	_, err := svc.EvaluateTurn(context.Background(), EvalRequest{
		Question:      "Tell me about yourself",
		Answer:        "",
		QuestionIndex: "1",
		NumQuestions:  "10",
	})
	require.NoError(t, err)
	require.Contains(t, model.prompt, `Response: ""`)
	require.Contains(t, model.prompt, "If user response was empty")
}

func TestEvaluateTurnUnknownDuration(t *testing.T) {
	model := &fakeModel{}
	svc := NewService(model, DefaultConfig())

	_, err := svc.EvaluateTurn(context.Background(), EvalRequest{NumQuestions: "12"})
	require.ErrorIs(t, err, ErrUnknownDuration)
	require.False(t, model.called, "model must not be called for unknown duration")
}

func TestEvaluateTurnModelError(t *testing.T) {
	modelErr := errors.New("status code: 429")
	svc := NewService(&fakeModel{err: modelErr}, DefaultConfig())

	_, err := svc.EvaluateTurn(context.Background(), EvalRequest{NumQuestions: "10"})
	require.ErrorIs(t, err, modelErr)
}
