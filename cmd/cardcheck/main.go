package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alovak/cardcheck/internal/cardcheck"
	"github.com/alovak/cardcheck/internal/verifierclient"
	"github.com/alovak/cardcheck/verifier"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

// demoNumber is verified when no subcommand is given.
const demoNumber = "371449635398431"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "cardcheck",
		Short:        "Checks card numbers and names their network.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, []string{demoNumber})
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default ./cardcheck.yaml)")
	cmd.PersistentFlags().String("mode", "legacy", `checksum mode ("legacy", "luhn")`)
	cmd.PersistentFlags().String("pan-hash-key", "", "pepper for card fingerprints")

	cmd.AddCommand(newVerifyCmd(), newISOCmd(), newServeCmd())
	return cmd
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify NUMBER...",
		Short: "Verify card numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runVerify,
	}
	cmd.Flags().String("remote", "", "verifier service base URL; verify locally when empty")
	return cmd
}

func newISOCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iso HEX",
		Short: "Verify the card number in a hex-encoded ISO 8583 message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hex.DecodeString(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("decoding hex: %w", err)
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if remote, _ := cmd.Flags().GetString("remote"); remote != "" {
				v, err := verifierclient.New(remote, nil).VerifyISO8583(cmd.Context(), raw)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v.Result)
				return nil
			}
			svc, err := verifier.NewService(newLogger(cmd.ErrOrStderr()), cfg)
			if err != nil {
				return err
			}
			v, err := svc.VerifyISO8583(raw)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.Result)
			return nil
		},
	}
	cmd.Flags().String("remote", "", "verifier service base URL; verify locally when empty")
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP verifier service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			app := verifier.NewApp(newLogger(cmd.ErrOrStderr()), cfg)
			if err := app.Start(); err != nil {
				return err
			}

			<-cmd.Context().Done()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			app.Shutdown(ctx)
			return nil
		},
	}
	cmd.Flags().String("http-addr", verifier.DefaultConfig().HTTPAddr, "listen address")
	return cmd
}

// runVerify prints one result per number. The checksum goes to stderr.
func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if remote, _ := cmd.Flags().GetString("remote"); remote != "" {
		cli := verifierclient.New(remote, nil)
		for _, number := range args {
			v, err := cli.Verify(cmd.Context(), number)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, v.Result)
		}
		return nil
	}

	mode, err := cardcheck.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	validator := cardcheck.New(
		cardcheck.WithLogger(newLogger(cmd.ErrOrStderr())),
		cardcheck.WithMode(mode),
	)
	for _, number := range args {
		res, err := validator.Verify(number)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, res)
	}
	return nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, nil))
}
