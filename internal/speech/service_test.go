package speech

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingTranscoder struct {
	in  string
	out string
	err error
}

func (t *recordingTranscoder) ToWav(_ context.Context, inPath, outPath string) error {
	t.in = inPath
	t.out = outPath
	if t.err != nil {
		return t.err
	}
	return os.WriteFile(outPath, []byte("RIFF"), 0o644)
}

type staticSTT struct {
	path string
	text string
}

func (s *staticSTT) Transcribe(_ context.Context, filePath string) (string, error) {
	s.path = filePath
	return s.text, nil
}

type staticTTS struct{ audio []byte }

func (s *staticTTS) Synthesize(_ context.Context, _ string) ([]byte, error) {
	return s.audio, nil
}

func TestTranscribeConvertsThenRecognizes(t *testing.T) {
	dir := t.TempDir()
	webm := filepath.Join(dir, "clip.webm")
	require.NoError(t, os.WriteFile(webm, []byte("webm"), 0o644))

	transcoder := &recordingTranscoder{}
	stt := &staticSTT{text: "hello"}
	svc := NewService(stt, &staticTTS{}, transcoder)

	text, err := svc.Transcribe(context.Background(), webm)
	require.NoError(t, err)
	require.Equal(t, "hello", text)

	require.Equal(t, webm, transcoder.in)
	require.Equal(t, filepath.Join(dir, "clip.wav"), transcoder.out)
	require.Equal(t, transcoder.out, stt.path, "распознаватель получает wav, не webm")

	// временный wav подчищается
	_, err = os.Stat(transcoder.out)
	require.True(t, os.IsNotExist(err))
}

func TestTranscribeTranscoderError(t *testing.T) {
	transErr := errors.New("ffmpeg failed")
	svc := NewService(&staticSTT{}, &staticTTS{}, &recordingTranscoder{err: transErr})

	_, err := svc.Transcribe(context.Background(), "/tmp/нет.webm")
	require.ErrorIs(t, err, transErr)
}

func TestSynthesizeDelegates(t *testing.T) {
	svc := NewService(&staticSTT{}, &staticTTS{audio: []byte("mp3")}, &recordingTranscoder{})

	audio, err := svc.Synthesize(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, []byte("mp3"), audio)
}
