package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/intervu-ai/intervu-backend/internal/ai"
	"github.com/intervu-ai/intervu-backend/internal/delivery"
	"github.com/intervu-ai/intervu-backend/internal/interview"
	"github.com/intervu-ai/intervu-backend/internal/sessions"
	"github.com/intervu-ai/intervu-backend/internal/speech"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY is not set")
	}

	interviewsDir := os.Getenv("INTERVIEWS_DIR")
	if interviewsDir == "" {
		interviewsDir = "./media/interviews"
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// CLIENTS (AI / TTS / STT)
	// =========================================================================

	openAIClient := ai.NewOpenAIClient(apiKey)
	transcoder := speech.NewFFmpegTranscoder()

	// =========================================================================
	// REPOSITORIES
	// =========================================================================

	sessionRepo := sessions.NewFileRepo(interviewsDir)

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	speechService := speech.NewService(
		openAIClient, // Whisper
		openAIClient, // tts-1
		transcoder,
	)

	interviewService := interview.NewService(openAIClient, interview.DefaultConfig())
	sessionService := sessions.NewService(sessionRepo)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(httprate.LimitByIP(100, time.Minute))

	// HANDLERS
	speechHandler := delivery.NewSpeechHandler(speechService, zl)
	replyHandler := delivery.NewReplyHandler(interviewService, sessionService, zl)

	// ROUTES
	delivery.RegisterRoutes(r, speechHandler, replyHandler)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "intervu-backend",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
