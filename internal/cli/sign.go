package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"ttskit/internal/adapter/fs"
	"ttskit/internal/domain"
	"ttskit/internal/usecase"
)

var (
	signSeed     string
	signBudget   int
	signJSON     bool
	signGlobs    []string
	signExcludes []string
)

var signCmd = &cobra.Command{
	Use:   "sign [text... | path]",
	Short: "Fragment text and sign every fragment",
	Long: `Plan fragments and pair each with its request signature, ordinal index
and total count, the exact records the request builder consumes.

With --glob, the argument is a directory and every matching file inside it is
processed as one input.

Examples:
  ttskit sign --seed 406986.2817744745 "a long text"
  ttskit sign --glob '**/*.txt' ./speeches --json`,
	RunE: runSign,
}

func init() {
	rootCmd.AddCommand(signCmd)
	signCmd.Flags().StringVar(&signSeed, "seed", "", `seed as "<int>.<int>"`)
	signCmd.Flags().IntVar(&signBudget, "budget", 0, "fragment budget in runes (default from config)")
	signCmd.Flags().BoolVar(&signJSON, "json", false, "emit signed fragments as JSON")
	signCmd.Flags().StringSliceVar(&signGlobs, "glob", nil, "batch mode: include glob patterns, argument is a directory")
	signCmd.Flags().StringSliceVar(&signExcludes, "exclude", nil, "batch mode: exclude glob patterns")
}

func runSign(cmd *cobra.Command, args []string) error {
	signer, closeProvider, err := newSigner()
	if err != nil {
		return err
	}
	defer closeProvider()

	if len(signGlobs) == 0 {
		signed, err := signer.Sign(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printSigned("", signed)
	}

	root := rootDir
	if len(args) > 0 {
		root = args[0]
	}

	collector := fs.NewCollector(signGlobs, signExcludes)
	files, err := collector.Collect(root)
	if err != nil {
		return fmt.Errorf("failed to collect inputs: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match %v under %s", signGlobs, root)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("Signing"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)

	var failures []string
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", file, err))
			_ = bar.Add(1)
			continue
		}

		signed, err := signer.Sign(cmd.Context(), string(data))
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", file, err))
			_ = bar.Add(1)
			continue
		}

		if err := printSigned(file, signed); err != nil {
			return err
		}
		_ = bar.Add(1)
	}

	if len(failures) > 0 {
		fmt.Fprintf(os.Stderr, "\n%d input(s) failed:\n", len(failures))
		for _, f := range failures {
			fmt.Fprintf(os.Stderr, "  - %s\n", f)
		}
	}
	return nil
}

func newSigner() (*usecase.Signer, func(), error) {
	planner, err := newPlanner(signBudget)
	if err != nil {
		return nil, func() {}, err
	}

	provider, closeProvider, err := newSeedProvider(signSeed)
	if err != nil {
		return nil, closeProvider, err
	}

	s, err := usecase.NewSigner(planner, provider, logger)
	if err != nil {
		return nil, closeProvider, err
	}
	return s, closeProvider, nil
}

func printSigned(source string, signed []domain.SignedFragment) error {
	if signJSON {
		out := struct {
			Source    string                  `json:"source,omitempty"`
			Fragments []domain.SignedFragment `json:"fragments"`
		}{Source: source, Fragments: signed}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if source != "" {
		fmt.Printf("%s:\n", source)
	}
	for _, f := range signed {
		marker := ""
		if f.Oversized {
			marker = "  [oversized]"
		}
		fmt.Printf("%3d/%d  tk=%s  (%3d) %q%s\n", f.Index, f.Total, f.Signature, f.Length, f.Text, marker)
	}
	return nil
}
