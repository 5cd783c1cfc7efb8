package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/setlist/internal/seed"
)

// SeedCmd returns the `setlist seed` command group.
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Inspect seed files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check <file>",
		Short: "Parse a seed and report movies with missing or repeated ids",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			state, err := seed.Load(args[0])
			if err != nil {
				return err
			}
			if err := state.Check(); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "ok: %d songs, %d movies\n", len(state.Songs), len(state.Movies))
			return nil
		},
	})

	var format string
	sample := &cobra.Command{
		Use:   "sample",
		Short: "Print the built-in sample seed",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			data, err := seed.Default().Encode(seed.Format(format))
			if err != nil {
				return err
			}
			_, err = c.OutOrStdout().Write(data)
			return err
		},
	}
	sample.Flags().StringVarP(&format, "format", "f", string(seed.FormatYAML), "output format (yaml or toml)")
	cmd.AddCommand(sample)
	return cmd
}
