package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"fastlane-sync/internal/config"
	"fastlane-sync/internal/remote"
	"fastlane-sync/internal/store"
	"fastlane-sync/internal/sync"
	"fastlane-sync/pkg/token"
)

type app struct {
	cfg          *config.Config
	creds        *token.Store
	orchestrator *sync.Orchestrator
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	st, err := store.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, err
	}

	creds := token.NewStore(cfg.Storage.TokenFile)
	api := remote.NewClient(cfg.API.BaseURL, creds, cfg.API.RequestTimeout)

	return &app{
		cfg:          cfg,
		creds:        creds,
		orchestrator: sync.NewOrchestrator(st, api, creds, cfg.Sync.MinInterval),
	}, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "fastsync",
		Short:         "FastLane offline-first sync engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(runCmd(), syncCmd(), statusCmd(), loginCmd(), logoutCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the periodic sync daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			log.Printf("Starting FastLane sync daemon (interval: %s, api: %s)",
				a.cfg.Sync.Interval, a.cfg.API.BaseURL)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a.syncOnce(ctx)

			ticker := time.NewTicker(a.cfg.Sync.Interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					log.Println("Sync daemon stopped")
					return nil
				case <-ticker.C:
					a.syncOnce(ctx)
				}
			}
		},
	}
}

func (a *app) syncOnce(ctx context.Context) {
	if !a.orchestrator.ShouldSync() {
		return
	}
	snapshot, err := a.orchestrator.FullSync(ctx)
	if err != nil {
		log.Printf("Sync failed: %v", err)
		return
	}
	log.Printf("Sync complete: %d fasts, %d weights, %d water entries",
		len(snapshot.Fasts), len(snapshot.Weights), len(snapshot.Water))
}

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one full sync cycle now",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			snapshot, err := a.orchestrator.FullSync(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Synced at %s\n", snapshot.SyncTime.Format("2006-01-02 15:04:05"))
			fmt.Printf("  fasts:   %d\n", len(snapshot.Fasts))
			fmt.Printf("  weights: %d\n", len(snapshot.Weights))
			fmt.Printf("  water:   %d\n", len(snapshot.Water))
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication state and last sync time",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if a.creds.Authenticated() {
				fmt.Println("Authenticated: yes")
			} else {
				fmt.Println("Authenticated: no")
			}

			last, ok, err := a.orchestrator.LastSyncTime()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Last sync:     never")
				return nil
			}
			fmt.Printf("Last sync:     %s\n", last.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}

func loginCmd() *cobra.Command {
	var tok string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the bearer token used for sync",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.creds.Save(tok); err != nil {
				return err
			}
			fmt.Println("Token saved")
			return nil
		},
	}
	cmd.Flags().StringVar(&tok, "token", "", "bearer token issued by the FastLane backend")
	cmd.MarkFlagRequired("token")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.creds.Clear(); err != nil {
				return err
			}
			fmt.Println("Token removed")
			return nil
		},
	}
}
