package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorOpposite(t *testing.T) {
	assert.Equal(t, ColorWhite, ColorBlack.Opposite())
	assert.Equal(t, ColorBlack, ColorWhite.Opposite())

	for _, c := range []Color{ColorBlack, ColorWhite} {
		assert.Equal(t, c, c.Opposite().Opposite())
	}
}

func TestParseColor(t *testing.T) {
	t.Run("Canonical Encodings Round-Trip", func(t *testing.T) {
		for _, encoded := range []string{"b", "w"} {
			parsed, err := ParseColor(encoded)
			require.NoError(t, err)
			assert.Equal(t, encoded, parsed.String())
		}
	})

	t.Run("Unrecognized Tokens Fail", func(t *testing.T) {
		for _, bad := range []string{"", "x", "B", "W", "black", "white"} {
			_, err := ParseColor(bad)
			assert.ErrorIs(t, err, ErrInvalidColor, "token %q", bad)
		}
	})
}

func TestColorJSON(t *testing.T) {
	game := Game{Turn: ColorWhite}
	encoded, err := json.Marshal(game)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"turn":"w"`)

	var decoded Game
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, ColorWhite, decoded.Turn)

	var bad Game
	err = json.Unmarshal([]byte(`{"turn":"x"}`), &bad)
	assert.Error(t, err)
}

func TestColorScan(t *testing.T) {
	var c Color
	require.NoError(t, c.Scan("w"))
	assert.Equal(t, ColorWhite, c)

	require.NoError(t, c.Scan([]byte("b")))
	assert.Equal(t, ColorBlack, c)

	assert.Error(t, c.Scan(42))

	value, err := ColorWhite.Value()
	require.NoError(t, err)
	assert.Equal(t, "w", value)
}
