package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sortbench/internal/bench"
)

// AlgorithmInfo describes one algorithm in the algorithms listing.
type AlgorithmInfo struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Flag  string `json:"flag"`
}

// NewAlgorithmsCommand creates the algorithms command.
func NewAlgorithmsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "algorithms",
		Short:         "List the available sorting algorithms",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []AlgorithmInfo
			for _, a := range bench.Declared() {
				infos = append(infos, AlgorithmInfo{
					Name:  a.Name,
					Label: strings.TrimSuffix(a.Label, ": "),
					Flag:  "--" + algFlag(a.Name),
				})
			}

			if rootOpts.Format == "json" {
				formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return formatter.Success(infos)
			}

			w := cmd.OutOrStdout()
			for _, info := range infos {
				fmt.Fprintf(w, "%-18s %s\n", info.Name, info.Label)
			}
			return nil
		},
	}
}
