package speech

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// === Единый сервис (и для стт и для ттс) ===

type Service struct {
	stt        STTClient
	tts        TTSClient
	transcoder Transcoder
}

func NewService(stt STTClient, tts TTSClient, transcoder Transcoder) *Service {
	return &Service{
		stt:        stt,
		tts:        tts,
		transcoder: transcoder,
	}
}

// Transcribe принимает путь к webm-файлу, перегоняет его в wav и отдаёт
// распознавателю. Пустая строка без ошибки означает "речи не услышали".
func (s *Service) Transcribe(ctx context.Context, webmPath string) (string, error) {
	wavPath := strings.TrimSuffix(webmPath, filepath.Ext(webmPath)) + ".wav"
	defer os.Remove(wavPath)

	if err := s.transcoder.ToWav(ctx, webmPath, wavPath); err != nil {
		return "", err
	}

	if dur, err := AudioDuration(wavPath); err == nil {
		log.Printf("[stt] wav ready, duration=%.1fs", dur)
	}

	return s.stt.Transcribe(ctx, wavPath)
}

func (s *Service) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return s.tts.Synthesize(ctx, text)
}
