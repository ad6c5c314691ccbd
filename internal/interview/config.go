package interview

import "errors"

// ErrUnknownDuration — длительность не из списка поддерживаемых.
var ErrUnknownDuration = errors.New("unknown interview duration")

// Split задаёт раскладку вопросов по категориям для одной длительности.
type Split struct {
	Total       int
	Personal    int
	Technical   int
	Situational int
}

// Config — фиксированная таблица: длительность (в минутах) → раскладка.
// Только чтение, собирается один раз при старте.
type Config map[string]Split

func DefaultConfig() Config {
	return Config{
		"10": {Total: 10, Personal: 2, Technical: 4, Situational: 4},
		"15": {Total: 15, Personal: 3, Technical: 6, Situational: 6},
		"20": {Total: 20, Personal: 4, Technical: 8, Situational: 8},
	}
}

// Range — закрытый диапазон номеров вопросов, нумерация с 1.
type Range struct {
	Start int
	End   int
}

type Ranges struct {
	Personal    Range
	Technical   Range
	Situational Range
}

// Ranges вычисляет границы трёх блоков вопросов для выбранной длительности.
func (c Config) Ranges(numQuestions string) (Ranges, error) {
	split, ok := c[numQuestions]
	if !ok {
		return Ranges{}, ErrUnknownDuration
	}

	personalEnd := split.Personal
	technicalEnd := personalEnd + split.Technical

	return Ranges{
		Personal:    Range{Start: 1, End: personalEnd},
		Technical:   Range{Start: personalEnd + 1, End: technicalEnd},
		Situational: Range{Start: technicalEnd + 1, End: split.Total},
	}, nil
}
