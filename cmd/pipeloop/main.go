// Command pipeloop solves pipe-maze fields from the command line.
//
//	pipeloop solve input.txt     # farthest distance and enclosed count
//	pipeloop render input.txt    # draw the loop and its interior
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/internal/config"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	startPolicy string
	maxSteps    int
	noColor     bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pipeloop",
	Short: "Find the closed pipe loop in a grid and count what it encloses",
	Long: `pipeloop reads a grid of pipe segments (| - L J F 7, S for the start,
. for ground) that holds exactly one closed loop through S.

It reports how many steps along the loop the farthest cell is from S,
and how many cells the loop strictly encloses.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd)
		if err := cfg.Validate(); err != nil {
			return err
		}

		zc, err := cfg.ZapConfig(verbose)
		if err != nil {
			return err
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// solveCmd prints the two answers
var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Print the farthest loop distance and the enclosed cell count",
	Long: `Reads the grid from file, or from stdin when file is omitted or "-",
and prints two lines: the farthest step distance along the loop from S,
then the number of enclosed cells.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

// renderCmd draws the solved grid
var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Draw the grid with the loop highlighted and enclosed cells marked I",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&startPolicy, "start-policy", "", "How S takes part in the interior scan: resolved or wildcard")
	rootCmd.PersistentFlags().IntVar(&maxSteps, "max-steps", 0, "Cap on loop cells walked (0 = grid area)")
	renderCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colors")

	rootCmd.AddCommand(solveCmd, renderCmd)
}

// applyFlagOverrides lets explicitly set flags win over the config file.
func applyFlagOverrides(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("start-policy") {
		cfg.Solve.StartPolicy = startPolicy
	}
	if flags.Changed("max-steps") {
		cfg.Solve.MaxSteps = maxSteps
	}
	if flags.Changed("no-color") {
		cfg.Render.Color = !noColor
	}
}

// openInput returns the reader named by args, defaulting to stdin.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

// solveInput reads the grid named by args and solves it.
func solveInput(cmd *cobra.Command, args []string) (*pipeloop.Result, error) {
	in, err := openInput(cmd, args)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	opts, err := cfg.SolveOptions(logger)
	if err != nil {
		return nil, err
	}
	res, err := pipeloop.SolveReader(in, opts...)
	if err != nil {
		logger.Error("solve failed", zap.Strings("args", args), zap.Error(err))
		return nil, err
	}
	logger.Info("solved",
		zap.Int("farthest", res.Farthest),
		zap.Int("enclosed", res.Enclosed))
	return res, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	res, err := solveInput(cmd, args)
	if err != nil {
		return err
	}
	_, err = res.WriteTo(cmd.OutOrStdout())
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
