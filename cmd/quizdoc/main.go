// Package main is the entry point for the quizdoc CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tsawler/quizdoc/config"
)

// version is set at build time via ldflags.
var version = "dev"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	log     *zap.Logger
	cfgFile string
	verbose bool
}

// newRootCmd builds the command tree. A nil logger is replaced by a
// production logger once flags are parsed.
func newRootCmd(log *zap.Logger) *cobra.Command {
	a := &app{v: config.New(), log: log}

	rootCmd := &cobra.Command{
		Use:   "quizdoc",
		Short: "Turn quiz documents into structured questions",
		Long: `quizdoc reads a quiz written in a word processor and turns it into a
list of questions. A line starting with a digit that contains "?" or ends
with ".", or any line ending with "?", starts a question. Lines starting
with "( )" are its options. A question with no options that is followed
by other text is open-ended.

Supported inputs are DOCX, ODT, HTML, EPUB, plain text, and scanned images
(OCR builds only). The questions can be printed as JSON or YAML, or posted to a
form-building web app.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./quizdoc.yaml or ~/.config/quizdoc/quizdoc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newParseCmd(a),
		newSubmitCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup initializes the logger and loads configuration for the command
// being run.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.log == nil {
		zcfg := zap.NewProductionConfig()
		if a.verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		log, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.log = log
	}

	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, used, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if used != "" {
		a.log.Debug("using config file", zap.String("path", used))
	}
	a.cfg = cfg
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(nil).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
