package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/ecocollect/internal/buildinfo"
	"github.com/dmitrijs2005/ecocollect/internal/client/cli"
	"github.com/dmitrijs2005/ecocollect/internal/client/client"
	"github.com/dmitrijs2005/ecocollect/internal/client/config"
	"github.com/dmitrijs2005/ecocollect/internal/client/platform"
	"github.com/dmitrijs2005/ecocollect/internal/client/services"
	"github.com/dmitrijs2005/ecocollect/internal/client/session"
	"github.com/dmitrijs2005/ecocollect/internal/client/storage"
	"github.com/dmitrijs2005/ecocollect/internal/logging"
)

// deps is everything a command needs once the configuration is loaded.
type deps struct {
	session  *session.Store
	services *services.Services
	close    func()
}

// wire builds the client stack from cfg. The caller runs close.
func wire(ctx context.Context, cfg *config.Config, logOut io.Writer) (*deps, error) {
	log, err := logging.New(cfg.LogBackend, cfg.LogLevel, logOut)
	if err != nil {
		return nil, err
	}

	store, err := storage.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	p, err := platform.Parse(cfg.Platform)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	attacher, err := platform.NewAttacher(p, &http.Client{Timeout: 30 * time.Second})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	api := client.NewHTTPClient(cfg.ServerURL, store, attacher, log)
	sess := session.New(api, store, log)
	svc := services.New(api, sess, log, services.Options{OTPResendInterval: cfg.OTPResendInterval})

	return &deps{
		session:  sess,
		services: svc,
		close: func() {
			sess.Close()
			if err := store.Close(); err != nil {
				log.Warn(ctx, "failed to close storage", "error", err)
			}
		},
	}, nil
}

// newRootCmd builds the command tree. Flag parsing is left to
// config.LoadConfig so the same flags work with and without a subcommand.
func newRootCmd(out io.Writer) *cobra.Command {
	withDeps := func(fn func(cmd *cobra.Command, d *deps) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			d, err := wire(cmd.Context(), config.LoadConfig(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer d.close()
			return fn(cmd, d)
		}
	}

	root := &cobra.Command{
		Use:                "ecocollect",
		Short:              "Waste collection marketplace client",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Version:            buildinfo.Version,
		RunE: withDeps(func(cmd *cobra.Command, d *deps) error {
			cli.NewApp(d.services, d.session).Run(cmd.Context())
			return nil
		}),
	}
	root.SetOut(out)

	root.AddCommand(&cobra.Command{
		Use:                "whoami",
		Short:              "Print the signed-in account",
		DisableFlagParsing: true,
		RunE: withDeps(func(cmd *cobra.Command, d *deps) error {
			if err := d.session.Initialize(cmd.Context()); err != nil {
				return err
			}
			st := d.session.State()
			if !st.Authenticated {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.User.String())
			return nil
		}),
	})

	root.AddCommand(&cobra.Command{
		Use:                "logout",
		Short:              "Forget the stored credential",
		DisableFlagParsing: true,
		RunE: withDeps(func(cmd *cobra.Command, d *deps) error {
			if err := d.session.Initialize(cmd.Context()); err != nil {
				return err
			}
			d.session.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		}),
	})

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	})

	return root
}
