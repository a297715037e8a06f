package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func newRootCmd() *cobra.Command {
	var asJSON bool

	root := &cobra.Command{
		Use:   "planetctl",
		Short: "Exoplanet texture prompts, simulation parameters and archive lookups",
		Long: `planetctl exposes the exolens planet model on the command line.

Subcommands:
  prompt   - Build the texture prompt for planet parameters
  derive   - Derive simulation parameters from catalogue observations
  esi      - Compute the Earth Similarity Index
  system   - List the planets of a system from the NASA archive
  search   - Search the NASA archive by star or planet name
  popular  - Show the well-known systems`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print JSON instead of text")

	root.AddCommand(
		newPromptCmd(&asJSON),
		newDeriveCmd(&asJSON),
		newESICmd(&asJSON),
		newSystemCmd(&asJSON),
		newSearchCmd(&asJSON),
		newPopularCmd(&asJSON),
	)
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// label renders a label such as "red-dwarf" as "Red-Dwarf".
func label(s string) string {
	return cases.Title(language.English).String(s)
}

func field(w io.Writer, name string, format string, args ...any) {
	fmt.Fprintf(w, "%-20s "+format+"\n", append([]any{name + ":"}, args...)...)
}
