package interview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigSplitsAddUp(t *testing.T) {
	for token, split := range DefaultConfig() {
		require.Equal(t, split.Total, split.Personal+split.Technical+split.Situational,
			"duration %s", token)
	}
}

func TestRanges(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		token       string
		personal    Range
		technical   Range
		situational Range
	}{
		{"10", Range{1, 2}, Range{3, 6}, Range{7, 10}},
		{"15", Range{1, 3}, Range{4, 9}, Range{10, 15}},
		{"20", Range{1, 4}, Range{5, 12}, Range{13, 20}},
	}

	for _, c := range cases {
		t.Run(c.token, func(t *testing.T) {
			r, err := cfg.Ranges(c.token)
			require.NoError(t, err)
			require.Equal(t, c.personal, r.Personal)
			require.Equal(t, c.technical, r.Technical)
			require.Equal(t, c.situational, r.Situational)
		})
	}
}

func TestRangesUnknownDuration(t *testing.T) {
	cfg := DefaultConfig()

	for _, token := range []string{"", "5", "25", "abc", "10 "} {
		_, err := cfg.Ranges(token)
		require.ErrorIs(t, err, ErrUnknownDuration, "token %q", token)
	}
}
