package interview

import (
	"fmt"
	"strings"
)

// BuildPrompt собирает инструкцию для модели-оценщика.
// Ответ кандидата приходит из распознавания речи, поэтому модель просят
// игнорировать ошибки транскрипции и оценивать смысл.
func BuildPrompt(req EvalRequest, r Ranges) string {
	return fmt.Sprintf(`You are an AI interview assistant for a virtual interview platform.

The interview is structured as follows:
- Questions %d to %d: Personal/behavioral questions
- Questions %d to %d: Technical questions specific to the %s speciality in %s field
- Questions %d to %d: Situational/hypothetical questions related to the %s speciality in %s field

Important:
- The candidate's response comes from a speech-to-text system, so minor transcription errors or typos may exist.
- Ignore obvious transcription mistakes that don't affect meaning.
- Focus on evaluating the candidate's intended response, not transcription quality.

Task:
1. Evaluate the candidate's response to the given question.
2. Provide constructive feedback:
- If the response contains real mistakes (not typos), politely correct them in short and concise way.
- If the response is correct, clarify it to give more depth in short and concise way.
- In both cases, generate short and concise content, max 25 words.
- If user response was empty, then probably they have no answer or skipped the question, handle the situation.
3. Assign a score out of 100 with a clear explanation of the evaluation.
4. Generate the next interview question based on the current question index: %s,
   based on the interview structure above, keep the questions simple and easy.

Input:
Question: %q
Response: %q

Return the result strictly in this JSON format:
{
    "score": number,
    "explanation": "string",
    "feedback": "string (correction or clarification)",
    "next_question": "string"
}`,
		r.Personal.Start, r.Personal.End,
		r.Technical.Start, r.Technical.End, req.Speciality, req.Field,
		r.Situational.Start, r.Situational.End, req.Speciality, req.Field,
		req.QuestionIndex,
		req.Question,
		strings.TrimSpace(req.Answer),
	)
}
