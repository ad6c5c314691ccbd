package sessions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/intervu-ai/intervu-backend/internal/interview"
)

var sessionFileRe = regexp.MustCompile(`^interview(\d+)\.json$`)

// fileRepo хранит каждую сессию в отдельном файле interview<N>.json —
// JSON-массив ходов в порядке поступления. Номера сессий только растут.
//
// Запись устроена как "прочитать файл целиком, дописать, переписать целиком".
// Под одновременными писателями это гонка: процесс рассчитан на одного
// пользователя, и это известное ограничение.
type fileRepo struct {
	dir string
}

func NewFileRepo(dir string) Repo {
	return &fileRepo{dir: dir}
}

func (r *fileRepo) Append(ctx context.Context, turn interview.Turn) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}

	latest, err := r.latestSessionID()
	if err != nil {
		return err
	}

	var turns []interview.Turn
	id := latest

	if turn.QuestionIndex == "1" || latest == 0 {
		// первый вопрос — новая сессия со следующим номером
		id = latest + 1
	} else {
		data, err := os.ReadFile(r.path(id))
		switch {
		case err == nil:
			if err := json.Unmarshal(data, &turns); err != nil {
				return fmt.Errorf("corrupt session file %d: %w", id, err)
			}
		case os.IsNotExist(err):
			// файла ещё нет — начинаем с пустого списка
		default:
			return err
		}
	}

	turns = append(turns, turn)
	return r.writeAll(id, turns)
}

func (r *fileRepo) latestSessionID() (int, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return 0, err
	}

	latest := 0
	for _, e := range entries {
		m := sessionFileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > latest {
			latest = n
		}
	}
	return latest, nil
}

func (r *fileRepo) path(id int) string {
	return filepath.Join(r.dir, fmt.Sprintf("interview%d.json", id))
}

func (r *fileRepo) writeAll(id int, turns []interview.Turn) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false) // не-ASCII и спецсимволы пишем как есть
	enc.SetIndent("", "    ")
	if err := enc.Encode(turns); err != nil {
		return err
	}
	return os.WriteFile(r.path(id), buf.Bytes(), 0o644)
}
