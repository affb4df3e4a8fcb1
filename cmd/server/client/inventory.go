package client

import (
	"fmt"

	"github.com/spf13/cobra"

	arenav1alpha1 "github.com/KirkDiggler/rpg-arena/internal/api/arena/v1alpha1"
)

var (
	inventoryCharacterID string
	addItemClass         string
	addItemName          string
	addItemValue         int32
	useItemName          string
	useItemTarget        string
)

var addItemCmd = &cobra.Command{
	Use:   "add-item",
	Short: "Add an item to a character's inventory",
	RunE:  runAddItem,
}

var useItemCmd = &cobra.Command{
	Use:   "use-item",
	Short: "Use an item on the character or another owned character",
	RunE:  runUseItem,
}

func init() {
	for _, cmd := range []*cobra.Command{addItemCmd, useItemCmd} {
		cmd.Flags().StringVar(&inventoryCharacterID, "character-id", "", "Character ID (required)")
		_ = cmd.MarkFlagRequired("character-id") // nolint:errcheck // safe to ignore in init
	}

	addItemCmd.Flags().StringVar(&addItemClass, "class", "", "Item class (required)")
	addItemCmd.Flags().StringVar(&addItemName, "name", "", "Custom item name")
	addItemCmd.Flags().Int32Var(&addItemValue, "value", 0, "Custom item value")
	_ = addItemCmd.MarkFlagRequired("class") // nolint:errcheck // safe to ignore in init

	useItemCmd.Flags().StringVar(&useItemName, "item", "", "Item name (required)")
	useItemCmd.Flags().StringVar(&useItemTarget, "target-id", "", "Target character ID, defaults to the user")
	_ = useItemCmd.MarkFlagRequired("item") // nolint:errcheck // safe to ignore in init
}

func runAddItem(cmd *cobra.Command, _ []string) error {
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

	req := &arenav1alpha1.AddItemRequest{
		CharacterId: inventoryCharacterID,
		ItemClass:   addItemClass,
		Name:        addItemName,
	}
	if cmd.Flags().Changed("value") {
		req.Value = &addItemValue
	}

	resp, err := arenav1alpha1.NewInventoryServiceClient(conn).AddItem(ctx, req)
	if err != nil {
		return requestError("add item", err)
	}

	fmt.Println(resp.Message)
	fmt.Printf("Item ID: %s\n", resp.Item.Id)
	fmt.Printf("Inventory holds %d items\n", len(resp.Inventory.Items))
	return nil
}

func runUseItem(_ *cobra.Command, _ []string) error {
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

	resp, err := arenav1alpha1.NewInventoryServiceClient(conn).UseItem(ctx, &arenav1alpha1.UseItemRequest{
		CharacterId: inventoryCharacterID,
		ItemName:    useItemName,
		TargetId:    useItemTarget,
	})
	if err != nil {
		return requestError("use item", err)
	}

	fmt.Println(resp.Message)
	if resp.Consumed {
		fmt.Printf("%s was used up\n", resp.Item.Name)
	}
	printCharacter(resp.Target)
	return nil
}
