// Package main - latinsq prints one random latin square to stdout.
//
// Usage:
//
//	latinsq          # order 4
//	latinsq 7        # order 7
//
// The order argument is optional; missing or unparsable input falls back to
// the default. Each run seeds from the clock, so repeated calls differ; use
// the library with walk.WithSeed for reproducible output.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latinsquare/walk"
)

// defaultOrder is used when no (or no parsable) order argument is given.
const defaultOrder = 4

var rootCmd = &cobra.Command{
	Use:   "latinsq [order]",
	Short: "Print a random latin square",
	Long: `latinsq generates one latin square of the given order (default 4),
drawn approximately uniformly at random via the Jacobson–Matthews walk,
and prints it to stdout.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	order := defaultOrder
	if len(args) == 1 {
		if v, err := strconv.Atoi(args[0]); err == nil {
			order = v
		}
	}
	sq, err := walk.Generate(order, walk.WithSeed(time.Now().UnixNano()))
	if err != nil {
		return fmt.Errorf("latinsq: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), sq)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
