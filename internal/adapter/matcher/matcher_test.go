package matcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttskit/internal/domain"
)

func TestBuildAlternation(t *testing.T) {
	m, err := Build([]string{"a", "b", "c"}, Literal, false)
	require.NoError(t, err)

	assert.Equal(t, "a|b|c", m.Pattern())
	assert.Equal(t, []string{"1", "2", "3"}, m.Split("1a2b3"))
}

func TestBuildEscapesLiterals(t *testing.T) {
	m, err := Build([]string{"a.b"}, Literal, false)
	require.NoError(t, err)

	assert.True(t, m.Match("a.b"))
	assert.False(t, m.Match("axb"))
}

func TestBuildTemplate(t *testing.T) {
	m, err := Build([]string{"!", "?"}, func(x string) string { return x + `\s` }, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two", ""}, m.Split("one! two? "))
}

func TestBuildEmptyLiterals(t *testing.T) {
	_, err := Build(nil, Literal, false)

	var cfgErr *domain.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
}

func TestBuildIgnoreCase(t *testing.T) {
	m, err := Build([]string{"mac"}, Literal, true)
	require.NoError(t, err)

	assert.True(t, m.Match("my Mac"))

	m, err = Build([]string{"mac"}, Literal, false)
	require.NoError(t, err)
	assert.False(t, m.Match("my Mac"))
}

func TestSplitKeepsEmptyPieces(t *testing.T) {
	m := MustCompile(",", false)

	assert.Equal(t, []string{"", "a", ""}, m.Split(",a,"))
}

func TestSplitNoMatch(t *testing.T) {
	m := MustCompile(",", false)

	assert.Equal(t, []string{"abc"}, m.Split("abc"))
}

func TestSplitMultiRune(t *testing.T) {
	m := MustCompile("、", false)

	assert.Equal(t, []string{"一", "二", "三"}, m.Split("一、二、三"))
}

func TestLookbehind(t *testing.T) {
	m := MustCompile(`(?<!\d):`, false)

	assert.False(t, m.Match("10:30"))
	assert.True(t, m.Match("note: this"))
}

func TestReplaceAllZeroWidth(t *testing.T) {
	m := MustCompile(`(?<=!)(?!\s)`, false)

	out, err := m.ReplaceAll("a!!b", " ")
	require.NoError(t, err)
	assert.Equal(t, "a! ! b", out)
}

func TestRunes(t *testing.T) {
	assert.Equal(t, []string{"?", "!", "？", "！"}, Runes("?!？！"))
}
