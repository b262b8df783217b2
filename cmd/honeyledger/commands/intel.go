// ABOUTME: CLI command to inspect extracted intelligence for a session
// ABOUTME: Optionally restricted to confirmed artifacts, most corroborated first
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/decoyops/honeyledger/internal/models"
	"github.com/decoyops/honeyledger/internal/report"
)

var (
	intelConfirmed bool
	intelJSON      bool
)

// NewIntelCmd creates the intel command
func NewIntelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intel <session-id>",
		Short: "Show extracted intelligence for a session",
		Long: `Show the artifacts extracted during a session, earliest first.

With --confirmed, only artifacts seen more than once are shown, ordered by
confirmation count. With --json, the platform-facing grouped mapping is
printed instead of the table.

Examples:
  honeyledger intel scam-session-042
  honeyledger intel scam-session-042 --confirmed
  honeyledger intel scam-session-042 --json`,
		Args: cobra.ExactArgs(1),
		RunE: runIntel,
	}

	cmd.Flags().BoolVar(&intelConfirmed, "confirmed", false, "Only confirmed artifacts")
	cmd.Flags().BoolVar(&intelJSON, "json", false, "Print the grouped artifact mapping as JSON")

	return cmd
}

func runIntel(cmd *cobra.Command, args []string) error {
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

	var artifacts []models.ExtractedIntelligence
	if intelConfirmed {
		artifacts, err = st.Intelligence.Confirmed(ctx, sess.ID)
	} else {
		artifacts, err = st.Intelligence.AllForSession(ctx, sess.ID)
	}
	if err != nil {
		return fmt.Errorf("reading intelligence: %w", err)
	}

	if intelJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report.GroupArtifacts(artifacts))
	}

	if len(artifacts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no artifacts")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tVALUE\tCONFIRMED\tCOUNT\tTURN\tFIRST SEEN")
	for _, a := range artifacts {
		fmt.Fprintf(w, "%s\t%s\t%t\t%d\t%d\t%s\n",
			a.ArtifactType, a.ArtifactValue, a.Confirmed, a.ConfirmationCount,
			a.ExtractedAtTurn, a.FirstSeenAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
