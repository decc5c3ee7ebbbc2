package chunker

import (
	"ttskit/internal/domain"
)

// Minimize subdivides piece into fragments of at most budget runes, cutting
// at the rightmost occurrence of delim that fits within the budget. A piece
// with no such occurrence cannot be split safely and is emitted whole,
// flagged Oversized; the consumer decides whether to reject it.
//
// The budget counts runes, matching the planner's short-circuit check.
func Minimize(piece, delim string, budget int) []domain.Fragment {
	runes := []rune(piece)
	sep := []rune(delim)

	var out []domain.Fragment
	for {
		// A cut leaves the remainder starting with the delimiter; drop it.
		if hasPrefix(runes, sep) {
			runes = runes[len(sep):]
		}

		if len(runes) <= budget {
			if len(runes) > 0 {
				out = append(out, domain.Fragment{Text: string(runes)})
			}
			return out
		}

		idx := cutPoint(runes, sep, budget)
		if idx < 0 {
			out = append(out, domain.Fragment{Text: string(runes), Oversized: true})
			return out
		}

		out = append(out, domain.Fragment{Text: string(runes[:idx])})
		runes = runes[idx:]
	}
}

// cutPoint returns the start of the rightmost occurrence of sep that lies
// entirely within the first budget runes, or -1.
func cutPoint(runes, sep []rune, budget int) int {
	if len(sep) == 0 {
		return -1
	}
	for i := budget - len(sep); i >= 0; i-- {
		if hasPrefix(runes[i:], sep) {
			return i
		}
	}
	return -1
}

func hasPrefix(runes, sep []rune) bool {
	if len(sep) == 0 || len(runes) < len(sep) {
		return false
	}
	for i := range sep {
		if runes[i] != sep[i] {
			return false
		}
	}
	return true
}
