package client

import (
	"fmt"

	"github.com/spf13/cobra"

	arenav1alpha1 "github.com/KirkDiggler/rpg-arena/internal/api/arena/v1alpha1"
)

var (
	firstCharacterID  string
	secondCharacterID string
	showLog           bool
	leaderboardLimit  int64
)

var startCombatCmd = &cobra.Command{
	Use:   "start-combat",
	Short: "Fight two of the acting user's characters",
	RunE:  runStartCombat,
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the top arena standings",
	RunE:  runLeaderboard,
}

func init() {
	startCombatCmd.Flags().StringVar(&firstCharacterID, "first", "", "First character ID (required)")
	startCombatCmd.Flags().StringVar(&secondCharacterID, "second", "", "Second character ID (required)")
	startCombatCmd.Flags().BoolVar(&showLog, "log", false, "Print the turn log")
	_ = startCombatCmd.MarkFlagRequired("first")  // nolint:errcheck // safe to ignore in init
	_ = startCombatCmd.MarkFlagRequired("second") // nolint:errcheck // safe to ignore in init

	leaderboardCmd.Flags().Int64Var(&leaderboardLimit, "limit", 10, "Number of entries")
}

func runStartCombat(_ *cobra.Command, _ []string) error {
	if err := requireUser(); err != nil {
		return err
	}
	conn, cleanup, err := createConnection()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := arenav1alpha1.NewCombatServiceClient(conn).StartCombat(ctx, &arenav1alpha1.StartCombatRequest{
		FirstCharacterId:  firstCharacterID,
		SecondCharacterId: secondCharacterID,
	})
	if err != nil {
		return requestError("start combat", err)
	}

	report := resp.Report
	if showLog {
		for _, entry := range report.Log {
			fmt.Printf("%3d  %s\n", entry.Turn, entry.Message)
		}
		fmt.Println()
	}
	fmt.Printf("%s (%s after %d turns)\n", report.Summary, report.Status, report.Turns)
	for _, p := range report.Participants {
		fmt.Printf("   %s: %d -> %d\n", p.Name, p.StartHealth, p.EndHealth)
	}
	if resp.Standing != nil {
		fmt.Printf("Score %d, %d/%d won\n", resp.Standing.Score, resp.Standing.GamesWon, resp.Standing.GamesPlayed)
	}
	return nil
}

func runLeaderboard(_ *cobra.Command, _ []string) error {
	conn, cleanup, err := createConnection()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := arenav1alpha1.NewLeaderboardServiceClient(conn).ListLeaderboard(ctx, &arenav1alpha1.ListLeaderboardRequest{
		Limit: leaderboardLimit,
	})
	if err != nil {
		return requestError("list leaderboard", err)
	}

	for _, entry := range resp.Entries {
		fmt.Printf("%3d. %-20s %6d  (%d/%d)\n", entry.Rank, entry.Name, entry.Score, entry.GamesWon, entry.GamesPlayed)
	}
	return nil
}
