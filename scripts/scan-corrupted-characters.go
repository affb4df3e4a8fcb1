package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/KirkDiggler/rpg-arena/internal/config"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-arena/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/character"
)

func main() {
	cfg, err := config.Load(&config.LoadInput{EnvFiles: []string{".env"}})
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // exiting anyway
	}()

	ctx := context.Background()
	if err := redisclient.Ping(ctx, client); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client, Clock: clock.New()})
	if err != nil {
		log.Fatal("Failed to create character repository:", err)
	}

	fmt.Println("Connected to Redis:", cfg.RedisAddr)
	fmt.Println("Scanning for corrupted character data...")

	out, err := repo.Scan(ctx, characterrepo.ScanInput{})
	if err != nil {
		log.Fatal("Error during scan:", err)
	}

	// records that decode but break the stat invariants
	var invalidIDs []string
	for _, c := range out.Characters {
		if err := c.Validate(); err != nil {
			fmt.Printf("✗ Invalid character %s (%s): %v\n", c.ID, c.Name, err)
			invalidIDs = append(invalidIDs, c.ID)
		}
	}
	for _, key := range out.Undecodable {
		fmt.Printf("✗ Corrupted JSON in %s\n", key)
	}

	total := len(out.Characters) + len(out.Undecodable)
	bad := len(invalidIDs) + len(out.Undecodable)
	fmt.Printf("\nChecked %d characters, found %d corrupted entries\n", total, bad)
	if bad == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // empty input means no
	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	failed := false
	for _, id := range invalidIDs {
		if _, err := repo.Delete(ctx, characterrepo.DeleteInput{ID: id}); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", id, err)
			failed = true
			continue
		}
		fmt.Printf("Deleted character %s\n", id)
	}
	for _, key := range out.Undecodable {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
			failed = true
			continue
		}
		fmt.Printf("Deleted %s\n", key)
	}

	fmt.Println("\nCleanup complete! Owners will see the removed ids as missing until they delete them.")
	if failed {
		os.Exit(1)
	}
}
