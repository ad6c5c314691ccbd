package delivery

import (
	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(
	r chi.Router,
	hSpeech *SpeechHandler,
	hReply *ReplyHandler,
) {
	// --- озвучка и распознавание ---
	r.With(httputil.RecoverMiddleware).Post("/tts", hSpeech.Tts)
	r.With(httputil.RecoverMiddleware).Post("/stt", hSpeech.Stt)

	// --- ход интервью ---
	r.With(httputil.RecoverMiddleware).Post("/reply", hReply.Reply)
}
