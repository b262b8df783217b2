// ABOUTME: CLI command to show a session's message history
// ABOUTME: Ordered by caller-assigned turn number, capped by --limit
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/decoyops/honeyledger/internal/store"
)

var historyLimit int

// NewHistoryCmd creates the history command
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <session-id>",
		Short: "Show a session's message history",
		Long: `Show the conversation ledger for a session ordered by turn number.

Examples:
  honeyledger history scam-session-042
  honeyledger history scam-session-042 --limit 10`,
		Args: cobra.ExactArgs(1),
		RunE: runHistory,
	}

	cmd.Flags().IntVar(&historyLimit, "limit", store.DefaultHistoryLimit, "Maximum messages to show")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ctx, cancel := opContext(cfg)
	defer cancel()

	sess, err := st.Sessions.GetBySessionID(ctx, args[0])
	if err != nil {
		return fmt.Errorf("looking up session: %w", err)
	}
	if sess == nil {
		return fmt.Errorf("session %q not found", args[0])
	}

	messages, err := st.Messages.History(ctx, sess.ID, historyLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	if len(messages) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no messages")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TURN\tSENDER\tTEXT\tAT")
	for _, m := range messages {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			m.TurnNumber, m.Sender, truncate(m.Text, 60),
			m.Timestamp.Format("15:04:05"))
	}
	return w.Flush()
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}
