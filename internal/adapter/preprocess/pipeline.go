package preprocess

import (
	"ttskit/internal/domain"
)

// Pipeline is an ordered list of text transformations applied before
// tokenizing. Each step receives the previous step's output.
type Pipeline struct {
	steps []Step
}

// NewPipeline assembles a pipeline from the given steps, in order.
func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Default returns the standard pipeline: tone-mark spacing, end-of-line
// dehyphenation, abbreviation stripping, word substitution. The order
// matters; abbreviation stripping must run before any split on the period.
func Default() (*Pipeline, error) {
	return FromNames(
		[]string{StepToneMarks, StepEndOfLine, StepAbbreviations, StepWordSub},
		Abbreviations,
		SubPairs,
	)
}

// FromNames assembles a pipeline from built-in step names, using the given
// abbreviation and substitution tables.
func FromNames(names []string, abbreviations []string, pairs [][2]string) (*Pipeline, error) {
	steps := make([]Step, 0, len(names))
	for _, name := range names {
		var (
			step Step
			err  error
		)
		switch name {
		case StepToneMarks:
			step, err = ToneMarks()
		case StepEndOfLine:
			step, err = EndOfLine()
		case StepAbbreviations:
			step, err = AbbreviationStrip(abbreviations)
		case StepWordSub:
			step, err = WordSub(pairs)
		default:
			return nil, &domain.ConfigurationError{
				Component: "pipeline",
				Reason:    "unknown pre-processing step " + name,
			}
		}
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return NewPipeline(steps...), nil
}

// Run returns text after every step has been applied in order.
func (p *Pipeline) Run(text string) string {
	for _, step := range p.steps {
		text = step.Run(text)
	}
	return text
}

// Steps returns the ordered step names, for logging.
func (p *Pipeline) Steps() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name
	}
	return names
}
