package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ttskit/internal/token"
)

var tokenSeed string

var tokenCmd = &cobra.Command{
	Use:   "token [text...]",
	Short: "Compute the request signature for one fragment",
	Long: `Compute the request signature for a single text fragment under a seed.
Without --seed, the seed is resolved from the cache or the clock fallback.

Examples:
  ttskit token --seed 406986.2817744745 test
  ttskit token "already fragmented text"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVar(&tokenSeed, "seed", "", `seed as "<int>.<int>"`)
}

func runToken(cmd *cobra.Command, args []string) error {
	provider, closeProvider, err := newSeedProvider(tokenSeed)
	if err != nil {
		return err
	}
	defer closeProvider()

	s, err := provider.Seed(cmd.Context())
	if err != nil {
		return fmt.Errorf("seed unavailable: %w", err)
	}

	fmt.Println(token.Generate(strings.Join(args, " "), s))
	return nil
}
