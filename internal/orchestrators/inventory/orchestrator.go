// Package inventory implements the inventory orchestrator. Every operation
// checks the acting user's ownership list before touching a character or its
// inventory, then delegates the item rules to rules/inventory.
package inventory

//go:generate mockgen -destination=mock/mock_service.go -package=inventorymock github.com/KirkDiggler/rpg-arena/internal/orchestrators/inventory Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/access"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/character"
	inventoryrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/inventory"
	userrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/user"
	invrules "github.com/KirkDiggler/rpg-arena/internal/rules/inventory"
	"github.com/KirkDiggler/rpg-arena/internal/rules/items"
)

// Service defines the inventory orchestrator interface
type Service interface {
	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)
	UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error)
	SearchItems(ctx context.Context, input *SearchItemsInput) (*SearchItemsOutput, error)
	GetInventoryStats(ctx context.Context, input *GetInventoryStatsInput) (*GetInventoryStatsOutput, error)
	ListItemClasses(ctx context.Context, input *ListItemClassesInput) (*ListItemClassesOutput, error)
}

// Config holds the dependencies for the inventory orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	InventoryRepo inventoryrepo.Repository
	UserRepo      userrepo.Repository
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.UserRepo == nil {
		vb.RequiredField("UserRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo characterrepo.Repository
	inventoryRepo inventoryrepo.Repository
	userRepo      userrepo.Repository
	idGen         idgen.Generator
}

// NewOrchestrator creates a new inventory orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		inventoryRepo: cfg.InventoryRepo,
		userRepo:      cfg.UserRepo,
		idGen:         cfg.IDGenerator,
	}, nil
}

// loadOwned checks ownership of characterID and returns its inventory
func (o *orchestrator) loadOwned(ctx context.Context, userID, characterID string) (*entities.Inventory, error) {
	if characterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if _, err := access.LoadOwner(ctx, o.userRepo, userID, characterID); err != nil {
		return nil, err
	}

	out, err := o.inventoryRepo.Get(ctx, inventoryrepo.GetInput{OwnerID: characterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get inventory")
	}
	return out.Inventory, nil
}

func (o *orchestrator) GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	inv, err := o.loadOwned(ctx, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}
	return &GetInventoryOutput{Inventory: inv}, nil
}

func (o *orchestrator) AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	class, err := items.ParseClass(input.ItemClass)
	if err != nil {
		return nil, err
	}

	id := o.idGen.Generate()
	var item entities.Item
	if input.Name == "" && input.Value == nil {
		item, err = items.Instantiate(id, class)
	} else {
		def, lookupErr := items.Lookup(class)
		if lookupErr != nil {
			return nil, lookupErr
		}
		name, value := input.Name, def.BaseMagnitude
		if name == "" {
			name = string(class)
		}
		if input.Value != nil {
			value = *input.Value
		}
		item, err = items.InstantiateCustom(id, class, name, value)
	}
	if err != nil {
		return nil, err
	}

	inv, err := o.loadOwned(ctx, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}

	msg, err := invrules.AddItem(inv, item)
	if err != nil {
		return nil, err
	}

	updated, err := o.inventoryRepo.Update(ctx, inventoryrepo.UpdateInput{Inventory: inv})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save inventory")
	}

	slog.InfoContext(ctx, "Item added",
		"character_id", input.CharacterID,
		"item_id", item.ID,
		"item_class", item.Class,
		"custom", item.Custom)

	return &AddItemOutput{
		Item:      item,
		Inventory: updated.Inventory,
		Message:   msg,
	}, nil
}

func (o *orchestrator) RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	inv, err := o.loadOwned(ctx, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}

	removed, msg, err := invrules.RemoveItem(inv, input.ItemID)
	if err != nil {
		return nil, err
	}

	updated, err := o.inventoryRepo.Update(ctx, inventoryrepo.UpdateInput{Inventory: inv})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save inventory")
	}

	slog.InfoContext(ctx, "Item removed",
		"character_id", input.CharacterID,
		"item_id", removed.ID)

	return &RemoveItemOutput{
		Item:      removed,
		Inventory: updated.Inventory,
		Message:   msg,
	}, nil
}

// UseItem applies an item from the character's inventory to the target and
// saves the target. The inventory is saved only when the item was consumed;
// if that save fails the target is written back as it was.
func (o *orchestrator) UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.ItemName == "" {
		return nil, errors.InvalidArgument("item name is required")
	}
	targetID := input.TargetID
	if targetID == "" {
		targetID = input.CharacterID
	}

	if _, err := access.LoadOwner(ctx, o.userRepo, input.UserID, input.CharacterID, targetID); err != nil {
		return nil, err
	}

	invOut, err := o.inventoryRepo.Get(ctx, inventoryrepo.GetInput{OwnerID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get inventory")
	}
	inv := invOut.Inventory

	ids := []string{input.CharacterID}
	if targetID != input.CharacterID {
		ids = append(ids, targetID)
	}
	chars, err := o.characterRepo.GetMany(ctx, characterrepo.GetManyInput{IDs: ids})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get characters")
	}
	if len(chars.Missing) > 0 {
		return nil, errors.NotFoundf("character %s not found", chars.Missing[0]).
			WithMeta(errors.MetaKind, string(errors.KindNotFound))
	}
	user := chars.Characters[0]
	target := user
	if len(chars.Characters) > 1 {
		target = chars.Characters[1]
	}
	before := target.Clone()

	result, err := invrules.UseItem(inv, input.ItemName, user, target)
	if err != nil {
		return nil, err
	}

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: target})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save target")
	}

	if result.Consumed {
		updated, err := o.inventoryRepo.Update(ctx, inventoryrepo.UpdateInput{Inventory: inv})
		if err != nil {
			if _, restoreErr := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: before}); restoreErr != nil {
				slog.ErrorContext(ctx, "Failed to restore target after inventory save failure",
					"character_id", before.ID,
					"error", restoreErr)
			}
			return nil, errors.Wrap(err, "failed to save inventory")
		}
		inv = updated.Inventory
	}

	slog.InfoContext(ctx, "Item used",
		"character_id", input.CharacterID,
		"target_id", targetID,
		"item_id", result.Item.ID,
		"consumed", result.Consumed)

	return &UseItemOutput{
		Item:      result.Item,
		Effect:    result.Effect,
		Consumed:  result.Consumed,
		Target:    saved.Character,
		Inventory: inv,
		Message:   result.Message,
	}, nil
}

func (o *orchestrator) SearchItems(ctx context.Context, input *SearchItemsInput) (*SearchItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Criteria.Class != "" && !input.Criteria.Class.IsValid() {
		return nil, errors.InvalidClassf("unknown item class %q", input.Criteria.Class)
	}

	inv, err := o.loadOwned(ctx, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &SearchItemsOutput{Items: invrules.FindByCriteria(inv, input.Criteria)}, nil
}

func (o *orchestrator) GetInventoryStats(ctx context.Context, input *GetInventoryStatsInput) (*GetInventoryStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	inv, err := o.loadOwned(ctx, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &GetInventoryStatsOutput{Stats: invrules.ComputeStats(inv)}, nil
}

func (o *orchestrator) ListItemClasses(_ context.Context, _ *ListItemClassesInput) (*ListItemClassesOutput, error) {
	defs := make([]items.Definition, 0, len(entities.AllItemClasses))
	for _, class := range entities.AllItemClasses {
		def, err := items.Lookup(class)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return &ListItemClassesOutput{Definitions: defs}, nil
}
