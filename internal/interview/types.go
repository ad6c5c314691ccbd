package interview

// Turn — одна запись "вопрос/ответ/оценка". После записи не меняется.
type Turn struct {
	Question      string   `json:"question"`
	Answer        string   `json:"answer"`
	QuestionIndex string   `json:"question_index"`
	Score         *float64 `json:"score"`
	Explanation   string   `json:"explanation"`
	Feedback      string   `json:"feedback"`
	NextQuestion  string   `json:"next_question"`
}

// Evaluation — разобранный ответ модели, ровно четыре поля.
type Evaluation struct {
	Score        *float64 `json:"score"`
	Explanation  string   `json:"explanation"`
	Feedback     string   `json:"feedback"`
	NextQuestion string   `json:"next_question"`
}

// EvalRequest — входные данные одного хода интервью, как их прислал клиент.
// Все поля строковые, сервер их не нормализует.
type EvalRequest struct {
	Question      string
	Answer        string
	QuestionIndex string
	Field         string
	Speciality    string
	NumQuestions  string
}
