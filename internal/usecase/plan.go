package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"ttskit/internal/adapter/chunker"
	"ttskit/internal/adapter/preprocess"
	"ttskit/internal/domain"
	"ttskit/internal/port"
)

// Planner turns text of unbounded length into an ordered sequence of
// fragments, each within the rune budget, without cutting in semantically
// unsafe places.
type Planner struct {
	pipeline port.PreProcessor
	splitter port.Splitter
	budget   int
	log      *zap.Logger
}

// NewPlanner wires the pre-processing pipeline and the splitter under the
// given fragment budget. The budget counts runes, for both the short-circuit
// check and minimization.
func NewPlanner(pipeline port.PreProcessor, splitter port.Splitter, budget int, log *zap.Logger) (*Planner, error) {
	if pipeline == nil {
		return nil, &domain.ConfigurationError{Component: "planner", Reason: "no pre-processing pipeline"}
	}
	if splitter == nil {
		return nil, &domain.ConfigurationError{Component: "planner", Reason: "no splitter"}
	}
	if budget < 1 {
		return nil, &domain.ConfigurationError{Component: "planner", Reason: "fragment budget must be positive"}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Planner{
		pipeline: pipeline,
		splitter: splitter,
		budget:   budget,
		log:      log,
	}, nil
}

// Budget returns the configured fragment budget, in runes.
func (p *Planner) Budget() int {
	return p.budget
}

// Plan produces the ordered fragment sequence for text. All-or-nothing: on
// error no fragments are returned. Empty input, or input that yields zero
// speakable fragments, is ErrEmptyInput.
func (p *Planner) Plan(text string) ([]domain.Fragment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyInput
	}

	text = p.pipeline.Run(text)
	p.log.Debug("pre-processed", zap.Int("runes", utf8.RuneCountInString(text)))

	// Short inputs need no tokenization.
	if utf8.RuneCountInString(text) <= p.budget {
		return finish([]domain.Fragment{{Text: text}})
	}

	pieces := p.splitter.Split(text)
	p.log.Debug("split", zap.Int("pieces", len(pieces)))

	var fragments []domain.Fragment
	for _, piece := range pieces {
		if !speakable(piece) {
			continue
		}
		fragments = append(fragments, chunker.Minimize(piece, " ", p.budget)...)
	}

	return finish(fragments)
}

// finish drops unspeakable fragments and rejects an empty plan.
func finish(fragments []domain.Fragment) ([]domain.Fragment, error) {
	out := fragments[:0]
	for _, f := range fragments {
		if speakable(f.Text) {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrEmptyInput
	}
	return out, nil
}

// speakable reports whether anything remains after stripping surrounding
// whitespace and punctuation.
func speakable(s string) bool {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(preprocess.AllPunc, r)
	}) != ""
}
