package preprocess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneMarksStep(t *testing.T) {
	step, err := ToneMarks()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "inserts missing spaces", in: "lorem!ipsum?", out: "lorem! ipsum? "},
		{name: "existing spaces untouched", in: "already! spaced? ", out: "already! spaced? "},
		{name: "consecutive marks", in: "a!!b", out: "a! ! b"},
		{name: "full-width marks", in: "之乎？者也！", out: "之乎？ 者也！ "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.out, step.Run(tt.in))
		})
	}
}

func TestEndOfLineStep(t *testing.T) {
	step, err := EndOfLine()
	require.NoError(t, err)

	assert.Equal(t, "testing", step.Run("test-\ning"))
	assert.Equal(t, "testing", step.Run("test-\r\ning"))
	assert.Equal(t, "well-known", step.Run("well-known"))
}

func TestAbbreviationStep(t *testing.T) {
	step, err := AbbreviationStrip(Abbreviations)
	require.NoError(t, err)

	assert.Equal(t, "jr sr dr", step.Run("jr. sr. dr."))
	// Abbreviations embedded in longer words keep their period.
	assert.Equal(t, "hydra. Dr Who st mary", step.Run("hydra. Dr. Who st. mary"))
}

func TestWordSubStep(t *testing.T) {
	step, err := WordSub(SubPairs)
	require.NoError(t, err)

	assert.Equal(t, "Esquire Bacon", step.Run("Esq. Bacon"))
	assert.Equal(t, "Monsieur Poirot", step.Run("M. Poirot"))
}

func TestCustomStep(t *testing.T) {
	step := Custom("upper", strings.ToUpper)

	assert.Equal(t, "upper", step.Name)
	assert.Equal(t, "ABC", step.Run("abc"))
}
