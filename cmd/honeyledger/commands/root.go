// ABOUTME: Root CLI command for the honeypot engagement ledger
// ABOUTME: Wires subcommands and shared store/config plumbing
package commands

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/decoyops/honeyledger/internal/config"
	"github.com/decoyops/honeyledger/internal/store"
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "honeyledger",
		Short: "Durable ledger for honeypot scam engagements",
		Long: `honeyledger is the operator tool for the engagement ledger: the durable
store of sessions, messages, state evolution, and deduplicated intelligence
behind the conversational-deception agent.

Connection settings come from the environment (see .env support); defaults
only suit local development.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewSessionsCmd())
	cmd.AddCommand(NewIntelCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// openStore loads the environment config and connects to the durable store.
// The returned context carries the configured per-operation ceiling.
func openStore() (*store.Store, *config.Config, error) {
	// Load .env for connection settings
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	st, err := store.OpenStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to store: %w", err)
	}

	return st, cfg, nil
}

// opContext derives a context bounded by the configured store timeout
func opContext(cfg *config.Config) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cfg.StoreTimeout)
}
