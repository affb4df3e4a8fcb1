// Package main is the entry point for the arena gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-arena/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-arena",
	Short: "RPG Arena gRPC Server",
	Long:  `RPG Arena provides a gRPC interface for buying characters, managing their inventories and fighting arena battles.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
