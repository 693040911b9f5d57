package output_test

import (
	"bytes"
	"testing"

	"github.com/Mic92/flake-fmt/internal/ui/output"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorProfile(t *testing.T) {
	t.Run("non-terminal writers degrade to ascii", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Equal(t, termenv.Ascii, output.ColorProfile(&buf))
	})

	t.Run("NO_COLOR always disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		var buf bytes.Buffer
		assert.Equal(t, termenv.Ascii, output.ColorProfile(&buf))
	})
}

func TestNew(t *testing.T) {
	t.Run("buffer output carries no escape sequences", func(t *testing.T) {
		var buf bytes.Buffer
		out := output.New(&buf)

		styled := out.String("cached formatter").Foreground(termenv.RGBColor("#ff0000"))
		_, err := out.WriteString(styled.String())
		require.NoError(t, err)

		assert.Equal(t, "cached formatter", buf.String())
	})

	t.Run("nil writer falls back to stderr", func(t *testing.T) {
		assert.NotNil(t, output.New(nil))
	})
}
