package speech

import "context"

// === Интерфейсы ===

type STTClient interface {
	Transcribe(ctx context.Context, filePath string) (string, error) // голос → текст
}

type TTSClient interface {
	Synthesize(ctx context.Context, text string) ([]byte, error) // текст → mp3
}

type Transcoder interface {
	// ToWav перегоняет webm-контейнер в wav для распознавания.
	ToWav(ctx context.Context, inPath, outPath string) error
}
