package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutu-network/mathsheet/internal/config"
	"github.com/tutu-network/mathsheet/internal/service"
)

func init() {
	generateCmd.Flags().StringSliceVarP(&genTypes, "aufgabe", "a", nil, "Task types, comma separated (default from config: addsub)")
	generateCmd.Flags().IntVarP(&genCount, "num", "n", 1, "Number of worksheets to create")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print every worksheet and task as it is generated")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0, "Random seed (reproduces an earlier run with the same --num)")
	generateCmd.Flags().IntVar(&genDigitsMin, "digits-min", 0, "Minimum operand digits (overrides config)")
	generateCmd.Flags().IntVar(&genDigitsMax, "digits-max", 0, "Maximum operand digits (overrides config)")
	generateCmd.Flags().BoolVar(&genNoHistory, "no-history", false, "Do not record this run in the history")
	rootCmd.AddCommand(generateCmd)
}

var (
	genTypes     []string
	genCount     int
	genVerbose   bool
	genSeed      uint64
	genDigitsMin int
	genDigitsMax int
	genNoHistory bool
)

var generateCmd = &cobra.Command{
	Use:     "generate FILE",
	Aliases: []string{"gen"},
	Short:   "Create worksheet PDFs with their solutions",
	Long: `Create worksheet PDFs. FILE names the output: a single worksheet is
written to <base>.pdf and <base>_loesung.pdf; with --num N each worksheet gets
a zero-padded number, <base>_00.pdf, <base>_00_loesung.pdf, ...

Example:
  mathsheet generate woche.pdf -n 4 -v`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	s, err := newService(func(cfg *config.Config) {
		if genDigitsMin > 0 {
			cfg.Task.DigitsMin = genDigitsMin
		}
		if genDigitsMax > 0 {
			cfg.Task.DigitsMax = genDigitsMax
		}
		if genVerbose {
			cfg.Logging.Verbose = true
		}
	})
	if err != nil {
		return err
	}
	defer s.Close()
	s.SetOutput(cmd.OutOrStdout())

	res, err := s.Generate(service.GenerateRequest{
		Filename:  args[0],
		Count:     genCount,
		Types:     genTypes,
		Seed:      genSeed,
		HasSeed:   cmd.Flags().Changed("seed"),
		Verbose:   s.Config.Logging.Verbose,
		NoHistory: genNoHistory,
	})
	if err != nil {
		return err
	}

	if s.Config.Logging.Verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Seed: %d\n", res.Run.Seed)
	}
	return nil
}
