package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>...",
		Short: "Verify one or more move files",
		Long: `Verify replays each file from the standard starting position.
Files are checked in argument order and the run stops at the first failing file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(getApp(cmd), args)
		},
	}
}

func newScanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <dir>",
		Short: "Verify every regular file directly inside a directory",
		Long: `Scan verifies the regular files of a directory in name order, without recursing.
It stops at the first file containing an illegal move.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(getApp(cmd), args[0])
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "moveset-verifier %s (%s)\n", Version, GitCommit)
		},
	}
}

func runVerify(a *app, paths []string) error {
	for _, p := range paths {
		if len(paths) > 1 {
			a.presenter.VerifyingFile(p)
		}
		res, err := a.verifier.VerifyFile(p)
		if err != nil {
			a.presenter.Error(err)
			return fmt.Errorf("%w: %w", ErrVerificationFailed, err)
		}
		a.presenter.Verification(res)
		if res.Failed() {
			return ErrVerificationFailed
		}
	}
	a.logger.Info("verify_done", zap.Int("files", len(paths)))
	return nil
}

func runScan(a *app, dir string) error {
	report, err := a.scanner().Scan(dir)
	if err != nil {
		a.presenter.Error(err)
		return fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	a.presenter.ScanReport(report)
	if !report.OK() {
		return ErrVerificationFailed
	}
	return nil
}
