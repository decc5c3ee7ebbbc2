package tokenizer

import (
	"strings"

	"ttskit/internal/adapter/matcher"
	"ttskit/internal/adapter/preprocess"
	"ttskit/internal/domain"
)

// Built-in case names, selectable from configuration.
const (
	CaseToneMarks        = "tone_marks"
	CasePeriodComma      = "period_comma"
	CaseColon            = "colon"
	CaseOtherPunctuation = "other_punctuation"
)

// ToneMarks cuts after tone-denoting punctuation. The pre-processor forces a
// space after each mark, so the delimiter is the mark plus that space.
func ToneMarks() Case {
	return func() *matcher.Matcher {
		return matcher.MustBuild(
			matcher.Runes(preprocess.ToneMarkChars),
			func(x string) string { return x + `\s` },
			false,
		)
	}
}

// PeriodComma cuts on a period or comma followed by a space, unless preceded
// by a period and a letter. Decimals and sequences like "a.m." stay intact.
func PeriodComma() Case {
	return func() *matcher.Matcher {
		return matcher.MustBuild(
			matcher.Runes(preprocess.PeriodCommaChars),
			func(x string) string { return `(?<!\.[a-z])` + x + " " },
			false,
		)
	}
}

// Colon cuts on a colon unless preceded by a digit, so times like "10:30"
// stay intact.
func Colon() Case {
	return func() *matcher.Matcher {
		return matcher.MustBuild(
			matcher.Runes(preprocess.ColonChars),
			func(x string) string { return `(?<!\d)` + x },
			false,
		)
	}
}

// OtherPunctuation cuts on the remaining punctuation set, including CJK
// punctuation and brackets.
func OtherPunctuation() Case {
	handled := preprocess.ToneMarkChars + preprocess.PeriodCommaChars + preprocess.ColonChars
	var rest []string
	for _, r := range preprocess.AllPunc {
		if !strings.ContainsRune(handled, r) {
			rest = append(rest, string(r))
		}
	}
	return func() *matcher.Matcher {
		return matcher.MustBuild(rest, matcher.Literal, false)
	}
}

// Default returns the standard case set, in split priority order.
func Default() []Case {
	return []Case{ToneMarks(), PeriodComma(), Colon(), OtherPunctuation()}
}

// FromNames assembles a case list from built-in case names.
func FromNames(names []string) ([]Case, error) {
	cases := make([]Case, 0, len(names))
	for _, name := range names {
		switch name {
		case CaseToneMarks:
			cases = append(cases, ToneMarks())
		case CasePeriodComma:
			cases = append(cases, PeriodComma())
		case CaseColon:
			cases = append(cases, Colon())
		case CaseOtherPunctuation:
			cases = append(cases, OtherPunctuation())
		default:
			return nil, &domain.ConfigurationError{
				Component: "tokenizer",
				Reason:    "unknown tokenizer case " + name,
			}
		}
	}
	return cases, nil
}
