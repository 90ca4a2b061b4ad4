package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/XiaoConstantine/qabuild-go/pkg/config"
	"github.com/XiaoConstantine/qabuild-go/pkg/logging"
)

const version = "0.1.0"

var (
	cfgPath  string
	logLevel string
	seed     int64
	parallel bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "qabuild",
	Short: "Build training and evaluation splits from SQuAD-style QA corpora",
	Long: `qabuild reshapes an adversarial SQuAD-style corpus into the derived splits
used to train and probe a reading-comprehension model.

The tool provides:
- Clean, append-mixed and twoway-mixed training splits
- An adversarial-only challenge split for evaluation
- Reproducible sampling via a fixed seed`,
	Version: version,
	// Unknown subcommands fall through to the root, which just prints the
	// usage hint and exits cleanly. ArbitraryArgs keeps cobra from turning
	// an unrecognized first argument into an error before Run fires.
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgPath != "" {
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.Default()
		}

		if cmd.Flags().Changed("seed") {
			cfg.Build.Seed = &seed
		}
		if cmd.Flags().Changed("parallel") {
			cfg.Build.Parallel = parallel
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Logging.Level = logLevel
		}

		logging.SetLogger(logging.NewLogger(logging.Config{
			Severity: logging.ParseSeverity(cfg.Logging.Level),
			Outputs:  []logging.Output{logging.NewConsoleOutput(false)},
		}))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "log severity (DEBUG, INFO, WARN, ERROR, FATAL)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "fixed seed for reproducible split sampling")
	rootCmd.PersistentFlags().BoolVar(&parallel, "parallel", false, "run the partition rules concurrently")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
