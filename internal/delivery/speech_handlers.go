package delivery

import (
	"encoding/json"
	"io"
	"net/http"
	"os"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/intervu-ai/intervu-backend/internal/speech"
)

type SpeechHandler struct {
	speechService *speech.Service
	log           *logger.ZapLogger
}

func NewSpeechHandler(speechService *speech.Service, log *logger.ZapLogger) *SpeechHandler {
	return &SpeechHandler{
		speechService: speechService,
		log:           log,
	}
}

func (h *SpeechHandler) Tts(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "No text provided")
		return
	}

	audio, err := h.speechService.Synthesize(r.Context(), req.Text)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "tts failed", Error: err})
		writeError(w, http.StatusInternalServerError, "tts failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	_, _ = w.Write(audio)
}

func (h *SpeechHandler) Stt(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "invalid multipart", Error: err})
		writeError(w, http.StatusBadRequest, "invalid multipart: "+err.Error())
		return
	}

	file, _, err := r.FormFile("audio")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing audio: "+err.Error())
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "stt-*.webm")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "tmp file: "+err.Error())
		return
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		writeError(w, http.StatusInternalServerError, "save audio: "+err.Error())
		return
	}
	tmp.Close()

	text, err := h.speechService.Transcribe(r.Context(), tmp.Name())
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "stt failed", Error: err})
		writeError(w, http.StatusInternalServerError, "stt failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}
