package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LeJamon/xrpldir/internal/config"
	"github.com/LeJamon/xrpldir/internal/core/ledger/directory"
	"github.com/LeJamon/xrpldir/internal/log"
)

// Version is the xrpldir release.
const Version = "0.1.0-dev"

// app carries the global flags and the state loaded before a command runs.
type app struct {
	configFile string
	debug      bool
	stats      bool

	cfg    *config.Config
	logger *log.WrappedLogger
}

// NewRootCmd builds the xrpldir command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "xrpldir",
		Short: "xrpldir - paged ledger directories",
		Long: `xrpldir maintains the paged directories of an XRPL style ledger store:
owner directories listing the objects of an account and book directories
listing the offers at one price level of an order book.`,
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
		PersistentPostRun: a.printStats,
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable normally suppressed debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.stats, "stats", false, "print directory metrics after the command")

	rootCmd.AddCommand(
		newInsertCmd(a),
		newRemoveCmd(a),
		newListCmd(a),
		newEmptyCmd(a),
		newBookCmd(a),
		newVerifyCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command tree and exits on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	log.OnExit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// load reads the configuration and sets up logging.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.configFile)
	if err != nil {
		return err
	}
	if a.debug {
		cfg.Log.Level = "debug"
	}
	if err := log.New(cfg.Log.Level); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = log.Sugar.WithServiceName("xrpldir")
	a.logger.Debugw("configuration loaded",
		"file", cfg.ConfigPath(),
		"backend", cfg.Database.Backend,
		"capacity", cfg.Directory.PageCapacity,
		"amendments", cfg.Ledger.Amendments)
	return nil
}

func (a *app) printStats(cmd *cobra.Command, _ []string) {
	if !a.stats {
		return
	}
	families, err := directory.Registry.Gather()
	if err != nil {
		a.logger.Warnf("failed to gather metrics: %v", err)
		return
	}
	out := cmd.OutOrStdout()
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fmt.Fprintf(out, "%s %v\n", mf.GetName(), m.GetCounter().GetValue())
		}
	}
}
