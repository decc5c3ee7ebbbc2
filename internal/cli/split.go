package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

var (
	splitBudget int
	splitJSON   bool
	splitFile   string
)

var splitCmd = &cobra.Command{
	Use:   "split [text...]",
	Short: "Plan budget-bounded fragments for text",
	Long: `Pre-process and split text into an ordered sequence of fragments, each
within the configured rune budget.

Examples:
  ttskit split "a very long text to fragment"
  ttskit split -f speech.txt --budget 50 --json`,
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().IntVar(&splitBudget, "budget", 0, "fragment budget in runes (default from config)")
	splitCmd.Flags().BoolVar(&splitJSON, "json", false, "emit fragments as JSON")
	splitCmd.Flags().StringVarP(&splitFile, "file", "f", "", "read text from file instead of arguments")
}

func runSplit(cmd *cobra.Command, args []string) error {
	text, err := inputText(args, splitFile)
	if err != nil {
		return err
	}

	planner, err := newPlanner(splitBudget)
	if err != nil {
		return err
	}

	fragments, err := planner.Plan(text)
	if err != nil {
		return err
	}

	if splitJSON {
		type fragmentOut struct {
			Index     int    `json:"idx"`
			Text      string `json:"text"`
			Length    int    `json:"textlen"`
			Oversized bool   `json:"oversized,omitempty"`
		}
		out := make([]fragmentOut, 0, len(fragments))
		for i, f := range fragments {
			out = append(out, fragmentOut{
				Index:     i,
				Text:      f.Text,
				Length:    utf8.RuneCountInString(f.Text),
				Oversized: f.Oversized,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for i, f := range fragments {
		marker := ""
		if f.Oversized {
			marker = "  [oversized: no safe split point]"
		}
		fmt.Printf("%3d  (%3d) %q%s\n", i, utf8.RuneCountInString(f.Text), f.Text, marker)
	}
	fmt.Printf("\n%d fragment(s), budget %d\n", len(fragments), planner.Budget())
	return nil
}

// inputText resolves the text to process from a file or the joined args.
func inputText(args []string, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}
