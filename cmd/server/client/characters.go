package client

import (
	"fmt"

	"github.com/spf13/cobra"

	arenav1alpha1 "github.com/KirkDiggler/rpg-arena/internal/api/arena/v1alpha1"
)

var (
	createName  string
	createClass string
	createItem  string
	deleteID    string
)

var listClassesCmd = &cobra.Command{
	Use:   "list-classes",
	Short: "List the character classes and their prices",
	RunE:  runListClasses,
}

var createCharacterCmd = &cobra.Command{
	Use:   "create-character",
	Short: "Buy a character with a starting item",
	RunE:  runCreateCharacter,
}

var listCharactersCmd = &cobra.Command{
	Use:   "list-characters",
	Short: "List the acting user's characters",
	RunE:  runListCharacters,
}

var deleteCharacterCmd = &cobra.Command{
	Use:   "delete-character",
	Short: "Delete a character for a partial refund",
	RunE:  runDeleteCharacter,
}

func init() {
	createCharacterCmd.Flags().StringVar(&createName, "name", "", "Character name (required)")
	createCharacterCmd.Flags().StringVar(&createClass, "class", "", "Warrior, Mage or Rogue (required)")
	createCharacterCmd.Flags().StringVar(&createItem, "item", "Potion", "Starting item class")
	_ = createCharacterCmd.MarkFlagRequired("name")  // nolint:errcheck // safe to ignore in init
	_ = createCharacterCmd.MarkFlagRequired("class") // nolint:errcheck // safe to ignore in init

	deleteCharacterCmd.Flags().StringVar(&deleteID, "character-id", "", "Character ID (required)")
	_ = deleteCharacterCmd.MarkFlagRequired("character-id") // nolint:errcheck // safe to ignore in init
}

func printCharacter(c *arenav1alpha1.Character) {
	fmt.Printf("%s [%s] %s\n", c.Name, c.Class, c.Id)
	fmt.Printf("   Health %d/%d  Attack %d  Defense %d  Speed %d  %s %d\n",
		c.Health, c.MaxHealth, c.Attack, c.Defense, c.Speed, c.SpecialName, c.Special)
}

func runListClasses(_ *cobra.Command, _ []string) error {
	conn, cleanup, err := createConnection()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := arenav1alpha1.NewCharacterServiceClient(conn).ListClasses(ctx, &arenav1alpha1.ListClassesRequest{})
	if err != nil {
		return requestError("list classes", err)
	}

	for _, class := range resp.Classes {
		fmt.Printf("%s: %d credits\n", class.Class, class.Cost)
		fmt.Printf("   Health %d  Attack %d  Defense %d  Speed %d  %s %d\n",
			class.BaseHealth, class.BaseAttack, class.BaseDefense, class.BaseSpeed, class.SpecialName, class.SpecialBase)
	}
	return nil
}

func runCreateCharacter(_ *cobra.Command, _ []string) error {
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

	resp, err := arenav1alpha1.NewCharacterServiceClient(conn).CreateCharacter(ctx, &arenav1alpha1.CreateCharacterRequest{
		Name:         createName,
		Class:        createClass,
		StartingItem: createItem,
	})
	if err != nil {
		return requestError("create character", err)
	}

	fmt.Println(resp.Message)
	printCharacter(resp.Character)
	fmt.Printf("Credits left: %d\n", resp.Credits)
	return nil
}

func runListCharacters(_ *cobra.Command, _ []string) error {
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

	resp, err := arenav1alpha1.NewCharacterServiceClient(conn).ListCharacters(ctx, &arenav1alpha1.ListCharactersRequest{})
	if err != nil {
		return requestError("list characters", err)
	}

	fmt.Printf("Found %d characters:\n\n", len(resp.Characters))
	for _, c := range resp.Characters {
		printCharacter(c)
	}
	for _, id := range resp.MissingIds {
		fmt.Printf("missing record for %s\n", id)
	}
	return nil
}

func runDeleteCharacter(_ *cobra.Command, _ []string) error {
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

	resp, err := arenav1alpha1.NewCharacterServiceClient(conn).DeleteCharacter(ctx, &arenav1alpha1.DeleteCharacterRequest{
		CharacterId: deleteID,
	})
	if err != nil {
		return requestError("delete character", err)
	}

	fmt.Println(resp.Message)
	fmt.Printf("Credits: %d\n", resp.Credits)
	return nil
}
