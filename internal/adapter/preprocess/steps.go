package preprocess

import (
	"ttskit/internal/adapter/matcher"
)

// Step is one named text transformation in the pre-processing pipeline.
type Step struct {
	Name string
	Run  func(text string) string
}

// Built-in step names, selectable from configuration.
const (
	StepToneMarks     = "tone_marks"
	StepEndOfLine     = "end_of_line"
	StepAbbreviations = "abbreviations"
	StepWordSub       = "word_sub"
)

// ToneMarks ensures a single space follows each tone-denoting punctuation
// mark, so downstream tokenizer cases do not merge sentences. A space is
// inserted only when the mark is not already followed by whitespace.
func ToneMarks() (Step, error) {
	sub, err := NewSubstitution(
		matcher.Runes(ToneMarkChars),
		func(x string) string { return "(?<=" + x + `)(?!\s)` },
		" ",
		false,
	)
	if err != nil {
		return Step{}, err
	}
	return Step{Name: StepToneMarks, Run: sub.Run}, nil
}

// EndOfLine joins a hyphen immediately followed by a line break into a
// continuous word.
func EndOfLine() (Step, error) {
	sub, err := NewSubstitution(
		[]string{"-"},
		func(x string) string { return x + "\r?\n" },
		"",
		false,
	)
	if err != nil {
		return Step{}, err
	}
	return Step{Name: StepEndOfLine, Run: sub.Run}, nil
}

// AbbreviationStrip removes the trailing period from each known abbreviation
// so it is not mistaken for a sentence terminator. Must run before any split
// on the period.
func AbbreviationStrip(abbreviations []string) (Step, error) {
	sub, err := NewSubstitution(
		abbreviations,
		func(x string) string { return `(?<=\b` + x + `)\.` },
		"",
		true,
	)
	if err != nil {
		return Step{}, err
	}
	return Step{Name: StepAbbreviations, Run: sub.Run}, nil
}

// WordSub expands literal symbols to the words they stand for.
func WordSub(pairs [][2]string) (Step, error) {
	sub, err := NewPairSubstitution(pairs, true)
	if err != nil {
		return Step{}, err
	}
	return Step{Name: StepWordSub, Run: sub.Run}, nil
}

// Custom wraps a pure function as a pipeline step.
func Custom(name string, fn func(string) string) Step {
	return Step{Name: name, Run: fn}
}
