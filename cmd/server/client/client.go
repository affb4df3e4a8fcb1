// Package client provides commands that exercise the arena gRPC services
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-arena/internal/handlers/arena/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	userID     string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the RPG Arena",
	Long:  `Client commands talk to a running arena server over gRPC. Most commands act as the user given by --user.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&userID, "user", "", "Acting user ID")

	// Account commands
	ClientCmd.AddCommand(registerUserCmd)
	ClientCmd.AddCommand(whoAmICmd)

	// Character commands
	ClientCmd.AddCommand(listClassesCmd)
	ClientCmd.AddCommand(createCharacterCmd)
	ClientCmd.AddCommand(listCharactersCmd)
	ClientCmd.AddCommand(deleteCharacterCmd)

	// Inventory commands
	ClientCmd.AddCommand(addItemCmd)
	ClientCmd.AddCommand(useItemCmd)

	// Arena commands
	ClientCmd.AddCommand(startCombatCmd)
	ClientCmd.AddCommand(leaderboardCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}
	return conn, cleanup, nil
}

// requestContext bounds a request by --timeout and carries --user when set
func requestContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	if userID != "" {
		ctx = v1alpha1.WithActingUser(ctx, userID)
	}
	return ctx, cancel
}

// requireUser fails commands that need an acting user
func requireUser() error {
	if userID == "" {
		return fmt.Errorf("--user is required")
	}
	return nil
}
