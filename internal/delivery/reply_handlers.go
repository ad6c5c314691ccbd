package delivery

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/intervu-ai/intervu-backend/internal/interview"
	"github.com/intervu-ai/intervu-backend/internal/sessions"
)

type ReplyHandler struct {
	evaluator interview.Evaluator
	store     sessions.Store
	log       *logger.ZapLogger
}

func NewReplyHandler(evaluator interview.Evaluator, store sessions.Store, log *logger.ZapLogger) *ReplyHandler {
	return &ReplyHandler{
		evaluator: evaluator,
		store:     store,
		log:       log,
	}
}

func (h *ReplyHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question            string `json:"question"`
		Answer              string `json:"answer"`
		Index               string `json:"index"`
		CondidateField      string `json:"condidate_field"`
		CondidateSpeciality string `json:"condidate_speciality"`
		NumQuestions        string `json:"num_questions"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	raw, err := h.evaluator.EvaluateTurn(r.Context(), interview.EvalRequest{
		Question:      req.Question,
		Answer:        req.Answer,
		QuestionIndex: req.Index,
		Field:         req.CondidateField,
		Speciality:    req.CondidateSpeciality,
		NumQuestions:  req.NumQuestions,
	})
	if err != nil {
		if errors.Is(err, interview.ErrUnknownDuration) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Log(logger.LogEntry{Level: "error", Message: "model call failed", Error: err})
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	var eval interview.Evaluation
	if err := json.Unmarshal([]byte(raw), &eval); err != nil {
		// модель прислала не JSON — отдаём сырой текст как есть, не сохраняя
		h.log.Log(logger.LogEntry{Level: "warn", Message: "model response is not json", Error: err})
		writeJSON(w, http.StatusOK, map[string]any{
			"score":       nil,
			"explanation": raw,
		})
		return
	}

	turn := interview.Turn{
		Question:      req.Question,
		Answer:        req.Answer,
		QuestionIndex: req.Index,
		Score:         eval.Score,
		Explanation:   eval.Explanation,
		Feedback:      eval.Feedback,
		NextQuestion:  eval.NextQuestion,
	}

	if err := h.store.Append(r.Context(), turn); err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "failed to save turn", Error: err})
		writeError(w, http.StatusInternalServerError, "failed to save turn: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, eval)
}
