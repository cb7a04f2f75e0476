// Package cli provides the command-line interface for moveset-verifier.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/park285/moveset-verifier/internal/adapter/reportpresenter"
	"github.com/park285/moveset-verifier/internal/config"
	"github.com/park285/moveset-verifier/internal/msgcat"
	"github.com/park285/moveset-verifier/internal/obslog"
	"github.com/park285/moveset-verifier/internal/rules"
	"github.com/park285/moveset-verifier/internal/scanner"
	"github.com/park285/moveset-verifier/internal/verifier"
)

// ErrVerificationFailed is returned by commands after the failure has already been printed.
var ErrVerificationFailed = errors.New("verification failed")

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

type appKey struct{}

// app is everything a command needs, built once per invocation.
type app struct {
	cfg       *config.AppConfig
	logger    *zap.Logger
	verifier  *verifier.Verifier
	presenter *reportpresenter.Presenter
}

func (a *app) scanner() *scanner.Scanner {
	return scanner.New(a.verifier, a.logger, scanner.WithObserver(a.presenter))
}

// NewRootCmd creates the root command. Given a single path it scans directories and verifies anything else.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "moveset-verifier [path]",
		Short: "Check chess move files for the first illegal move",
		Long: `moveset-verifier replays move files (one move per line, blank lines ignored)
from the standard starting position and reports the first illegal move.

Given a directory, every regular file directly inside it is verified in name order
and the scan stops at the first file that fails.`,
		Example: `  moveset-verifier games/opening.txt
  moveset-verifier games/
  moveset-verifier verify a.txt b.txt
  moveset-verifier scan --notation uci games/`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, a))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			a := getApp(cmd)
			if fi, err := os.Stat(args[0]); err == nil && fi.IsDir() {
				return runScan(a, args[0])
			}
			return runVerify(a, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)
	config.BindFlags(rootCmd.PersistentFlags())

	_ = rootCmd.RegisterFlagCompletionFunc("notation", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"san", "uci", "lan"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newVerifyCommand())
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command with os.Args and returns the process exit code.
func Execute() int {
	return run(NewRootCmd(), os.Stderr)
}

func run(rootCmd *cobra.Command, stderr io.Writer) int {
	err := rootCmd.Execute()
	if cerr := obslog.Close(); cerr != nil {
		fmt.Fprintf(stderr, "Error: %v\n", cerr)
	}
	obslog.Set(nil)
	if err != nil {
		if !errors.Is(err, ErrVerificationFailed) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(cmd.Root().PersistentFlags())
	if err != nil {
		return nil, err
	}

	logger, err := obslog.Init(obslog.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		File:    cfg.LogFile,
		Caller:  cfg.LogCaller,
		Console: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))
	obslog.Set(logger)

	catalog, err := msgcat.New(cfg.MessagesDir)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	engine, err := rules.NewChessEngine(cfg.RulesNotation())
	if err != nil {
		return nil, err
	}

	logger.Debug("run_start",
		zap.String("command", cmd.Name()),
		zap.String("engine", engine.Name()),
		zap.String("version", Version),
	)

	return &app{
		cfg:       cfg,
		logger:    logger,
		verifier:  verifier.New(engine, logger),
		presenter: reportpresenter.NewPresenter(cmd.OutOrStdout(), reportpresenter.NewFormatter(catalog), cfg.NoColor),
	}, nil
}

func getApp(cmd *cobra.Command) *app {
	if a, ok := cmd.Context().Value(appKey{}).(*app); ok {
		return a
	}
	// PersistentPreRunE always stores one; reaching here means the command was run outside Execute.
	panic("cli: app not initialised")
}
