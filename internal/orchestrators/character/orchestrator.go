// Package character implements the character orchestrator: creation with its
// starting inventory, renaming, deletion with refund, and per-class statistics.
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-arena/internal/orchestrators/character Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/access"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/character"
	inventoryrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/inventory"
	userrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/user"
	"github.com/KirkDiggler/rpg-arena/internal/rules/economy"
	"github.com/KirkDiggler/rpg-arena/internal/rules/items"
	"github.com/KirkDiggler/rpg-arena/internal/rules/stats"
)

// Service defines the character orchestrator interface
type Service interface {
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	GetCharacterStats(ctx context.Context, input *GetCharacterStatsInput) (*GetCharacterStatsOutput, error)
	ListClasses(ctx context.Context, input *ListClassesInput) (*ListClassesOutput, error)
}

// Config holds the dependencies for the character orchestrator
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

// Orchestrator implements the Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	inventoryRepo inventoryrepo.Repository
	userRepo      userrepo.Repository
	idGen         idgen.Generator
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		inventoryRepo: cfg.InventoryRepo,
		userRepo:      cfg.UserRepo,
		idGen:         cfg.IDGenerator,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// CreateCharacter buys a character of the requested class and gives it an
// inventory holding one stock item. The character, its inventory and the
// user's updated balance and ownership list are written in that order; a
// failure after the first write undoes the earlier writes.
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	class, err := stats.ParseClass(input.Class)
	if err != nil {
		return nil, err
	}
	itemClass, err := items.ParseClass(input.StartingItem)
	if err != nil {
		return nil, err
	}
	char, err := stats.Instantiate(input.Name, class)
	if err != nil {
		return nil, err
	}

	u, err := access.LoadUser(ctx, o.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}
	if !u.HasRoomForCharacter() {
		return nil, errors.ResourceExhaustedf("a user can own at most %d characters", entities.MaxCharactersPerUser).
			WithMeta("user_id", u.ID)
	}

	cost, err := economy.CreationCost(char)
	if err != nil {
		return nil, err
	}
	if err := economy.CanAfford(u.Credits, cost); err != nil {
		return nil, err
	}

	char.ID = o.idGen.Generate()
	item, err := items.Instantiate(o.idGen.Generate(), itemClass)
	if err != nil {
		return nil, err
	}
	inv := entities.NewInventory(char.ID)
	inv.Items = append(inv.Items, item)

	createdChar, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	createdInv, err := o.inventoryRepo.Create(ctx, inventoryrepo.CreateInput{Inventory: inv})
	if err != nil {
		o.rollbackCharacter(ctx, char.ID)
		return nil, errors.Wrap(err, "failed to create inventory")
	}

	updated := u.Clone()
	updated.Credits -= cost
	updated.CharacterIDs = append(updated.CharacterIDs, char.ID)
	if _, err := o.userRepo.Update(ctx, userrepo.UpdateInput{User: updated}); err != nil {
		o.rollbackInventory(ctx, char.ID)
		o.rollbackCharacter(ctx, char.ID)
		return nil, errors.Wrap(err, "failed to update user")
	}

	slog.InfoContext(ctx, "Character created",
		"user_id", u.ID,
		"character_id", char.ID,
		"class", class,
		"cost", cost,
		"starting_item", itemClass)

	return &CreateCharacterOutput{
		Character: createdChar.Character,
		Inventory: createdInv.Inventory,
		Cost:      cost,
		Credits:   updated.Credits,
		Message:   fmt.Sprintf("%s created! Spent %d credits.", char.Name, cost),
	}, nil
}

// GetCharacter returns one owned character
func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := access.LoadOwner(ctx, o.userRepo, input.UserID, input.CharacterID); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	return &GetCharacterOutput{Character: out.Character}, nil
}

// ListCharacters returns the user's characters in ownership order
func (o *Orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	u, err := access.LoadUser(ctx, o.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}
	if len(u.CharacterIDs) == 0 {
		return &ListCharactersOutput{Characters: []*entities.Character{}}, nil
	}

	out, err := o.characterRepo.GetMany(ctx, characterrepo.GetManyInput{IDs: u.CharacterIDs})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	if len(out.Missing) > 0 {
		slog.WarnContext(ctx, "Owned characters missing from store",
			"user_id", u.ID,
			"character_ids", out.Missing)
	}

	return &ListCharactersOutput{
		Characters: out.Characters,
		Missing:    out.Missing,
	}, nil
}

// UpdateCharacter renames a character. The class is fixed at creation.
func (o *Orchestrator) UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	name, err := stats.ValidateName(input.Name)
	if err != nil {
		return nil, err
	}

	if _, err := access.LoadOwner(ctx, o.userRepo, input.UserID, input.CharacterID); err != nil {
		return nil, err
	}

	current, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	char := current.Character

	if input.Class != "" {
		class, err := stats.ParseClass(input.Class)
		if err != nil {
			return nil, err
		}
		if class != char.Class {
			return nil, errors.FailedPreconditionf("class of %s cannot change from %s to %s", char.Name, char.Class, class).
				WithMeta("character_id", char.ID)
		}
	}

	oldName := char.Name
	char.Name = name
	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update character")
	}

	slog.InfoContext(ctx, "Character renamed",
		"character_id", char.ID,
		"old_name", oldName,
		"new_name", name)

	return &UpdateCharacterOutput{
		Character: updated.Character,
		Message:   "Character updated",
	}, nil
}

// DeleteCharacter removes a character and its inventory and refunds half of
// the class cost. If the user update fails the records are restored.
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	u, err := access.LoadOwner(ctx, o.userRepo, input.UserID, input.CharacterID)
	if err != nil {
		return nil, err
	}

	current, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	char := current.Character

	refund, err := economy.DeletionRefund(char)
	if err != nil {
		return nil, err
	}

	var inv *entities.Inventory
	invOut, err := o.inventoryRepo.Get(ctx, inventoryrepo.GetInput{OwnerID: char.ID})
	switch {
	case err == nil:
		inv = invOut.Inventory
	case errors.IsNotFound(err):
		slog.WarnContext(ctx, "Deleting character without inventory", "character_id", char.ID)
	default:
		return nil, errors.Wrap(err, "failed to get inventory")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: char.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}
	if inv != nil {
		if _, err := o.inventoryRepo.Delete(ctx, inventoryrepo.DeleteInput{OwnerID: char.ID}); err != nil {
			o.restore(ctx, char, nil)
			return nil, errors.Wrap(err, "failed to delete inventory")
		}
	}

	updated := u.Clone()
	updated.Credits += refund
	updated.CharacterIDs = u.WithoutCharacter(char.ID)
	if _, err := o.userRepo.Update(ctx, userrepo.UpdateInput{User: updated}); err != nil {
		o.restore(ctx, char, inv)
		return nil, errors.Wrap(err, "failed to update user")
	}

	slog.InfoContext(ctx, "Character deleted",
		"user_id", u.ID,
		"character_id", char.ID,
		"refund", refund)

	return &DeleteCharacterOutput{
		Refund:  refund,
		Credits: updated.Credits,
		Message: fmt.Sprintf("Character deleted! Refunded %d credits.", refund),
	}, nil
}

// GetCharacterStats counts the user's characters per class
func (o *Orchestrator) GetCharacterStats(ctx context.Context, input *GetCharacterStatsInput) (*GetCharacterStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	list, err := o.ListCharacters(ctx, &ListCharactersInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	out := &GetCharacterStatsOutput{
		ByClass: make(map[entities.ClassName]int, len(entities.AllClasses)),
	}
	for _, class := range entities.AllClasses {
		out.ByClass[class] = 0
	}
	for _, char := range list.Characters {
		out.ByClass[char.Class]++
		out.Total++
	}

	// ties go to the class listed first
	for _, class := range entities.AllClasses {
		if out.ByClass[class] > out.MostPlayedCount {
			out.MostPlayed = class
			out.MostPlayedCount = out.ByClass[class]
		}
	}

	return out, nil
}

// ListClasses returns every class template with its cost
func (o *Orchestrator) ListClasses(_ context.Context, _ *ListClassesInput) (*ListClassesOutput, error) {
	classes := make([]ClassInfo, 0, len(entities.AllClasses))
	for _, class := range entities.AllClasses {
		template, err := stats.Lookup(class)
		if err != nil {
			return nil, err
		}
		cost, err := stats.CostForClass(class)
		if err != nil {
			return nil, err
		}
		classes = append(classes, ClassInfo{Stats: template, Cost: cost})
	}
	return &ListClassesOutput{Classes: classes}, nil
}

func (o *Orchestrator) rollbackCharacter(ctx context.Context, id string) {
	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: id}); err != nil {
		slog.ErrorContext(ctx, "Failed to roll back character", "character_id", id, "error", err)
	}
}

func (o *Orchestrator) rollbackInventory(ctx context.Context, ownerID string) {
	if _, err := o.inventoryRepo.Delete(ctx, inventoryrepo.DeleteInput{OwnerID: ownerID}); err != nil {
		slog.ErrorContext(ctx, "Failed to roll back inventory", "character_id", ownerID, "error", err)
	}
}

// restore recreates records removed by a failed deletion
func (o *Orchestrator) restore(ctx context.Context, char *entities.Character, inv *entities.Inventory) {
	if _, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char}); err != nil {
		slog.ErrorContext(ctx, "Failed to restore character", "character_id", char.ID, "error", err)
	}
	if inv == nil {
		return
	}
	if _, err := o.inventoryRepo.Create(ctx, inventoryrepo.CreateInput{Inventory: inv}); err != nil {
		slog.ErrorContext(ctx, "Failed to restore inventory", "character_id", char.ID, "error", err)
	}
}
