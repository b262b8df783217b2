// ABOUTME: CLI command to list active engagement sessions
// ABOUTME: Shows channel, state, confidence, and message counts
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewSessionsCmd creates the sessions command
func NewSessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List active sessions",
		Long: `List all sessions with status=active, most recently created first.

Examples:
  honeyledger sessions`,
		RunE: runSessions,
	}
}

func runSessions(cmd *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ctx, cancel := opContext(cfg)
	defer cancel()

	sessions, err := st.Sessions.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no active sessions")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SESSION\tCHANNEL\tSTATE\tCONFIDENCE\tMESSAGES\tCREATED")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\t%s\n",
			s.SessionID, s.Channel, s.CurrentState, s.InitialConfidence,
			s.TotalMessagesExchanged, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
