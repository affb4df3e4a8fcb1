package v1alpha1

import (
	"context"
	"strings"

	arenav1alpha1 "github.com/KirkDiggler/rpg-arena/internal/api/arena/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/inventory"
	invrules "github.com/KirkDiggler/rpg-arena/internal/rules/inventory"
	"github.com/KirkDiggler/rpg-arena/internal/rules/items"
)

// InventoryHandlerConfig holds dependencies for the inventory handler
type InventoryHandlerConfig struct {
	InventoryService inventory.Service
}

// Validate ensures all required dependencies are present
func (c *InventoryHandlerConfig) Validate() error {
	if c.InventoryService == nil {
		return errors.InvalidArgument("inventory service is required")
	}
	return nil
}

// InventoryHandler implements the arena inventory gRPC service
type InventoryHandler struct {
	arenav1alpha1.UnimplementedInventoryServiceServer
	inventoryService inventory.Service
}

// NewInventoryHandler creates a new inventory handler with the given configuration
func NewInventoryHandler(cfg *InventoryHandlerConfig) (*InventoryHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &InventoryHandler{
		inventoryService: cfg.InventoryService,
	}, nil
}

// ownedCharacter resolves the acting user and checks the character id is present
func ownedCharacter(ctx context.Context, characterID string) (string, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return "", err
	}
	if characterID == "" {
		return "", errors.InvalidArgument("character_id is required")
	}
	return userID, nil
}

// GetInventory reads an owned character's inventory
func (h *InventoryHandler) GetInventory(
	ctx context.Context,
	req *arenav1alpha1.GetInventoryRequest,
) (*arenav1alpha1.GetInventoryResponse, error) {
	userID, err := ownedCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.inventoryService.GetInventory(ctx, &inventory.GetInventoryInput{
		UserID:      userID,
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arenav1alpha1.GetInventoryResponse{Inventory: convertInventoryToProto(output.Inventory)}, nil
}

// AddItem adds a stock or custom item
func (h *InventoryHandler) AddItem(
	ctx context.Context,
	req *arenav1alpha1.AddItemRequest,
) (*arenav1alpha1.AddItemResponse, error) {
	userID, err := ownedCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.inventoryService.AddItem(ctx, &inventory.AddItemInput{
		UserID:      userID,
		CharacterID: req.CharacterId,
		ItemClass:   req.ItemClass,
		Name:        req.Name,
		Value:       intFromProto(req.Value),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arenav1alpha1.AddItemResponse{
		Item:      convertItemToProto(output.Item),
		Inventory: convertInventoryToProto(output.Inventory),
		Message:   output.Message,
	}, nil
}

// RemoveItem removes an item by id
func (h *InventoryHandler) RemoveItem(
	ctx context.Context,
	req *arenav1alpha1.RemoveItemRequest,
) (*arenav1alpha1.RemoveItemResponse, error) {
	userID, err := ownedCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.ItemId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}

	output, err := h.inventoryService.RemoveItem(ctx, &inventory.RemoveItemInput{
		UserID:      userID,
		CharacterID: req.CharacterId,
		ItemID:      req.ItemId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arenav1alpha1.RemoveItemResponse{
		Item:      convertItemToProto(output.Item),
		Inventory: convertInventoryToProto(output.Inventory),
		Message:   output.Message,
	}, nil
}

// UseItem applies an item to its owner or to another owned character
func (h *InventoryHandler) UseItem(
	ctx context.Context,
	req *arenav1alpha1.UseItemRequest,
) (*arenav1alpha1.UseItemResponse, error) {
	userID, err := ownedCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.ItemName == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_name is required"))
	}

	output, err := h.inventoryService.UseItem(ctx, &inventory.UseItemInput{
		UserID:      userID,
		CharacterID: req.CharacterId,
		ItemName:    req.ItemName,
		TargetID:    req.TargetId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arenav1alpha1.UseItemResponse{
		Item:      convertItemToProto(output.Item),
		Effect:    convertEffectToProto(output.Effect),
		Consumed:  output.Consumed,
		Target:    convertCharacterToProto(output.Target),
		Inventory: convertInventoryToProto(output.Inventory),
		Message:   output.Message,
	}, nil
}

// SearchItems filters an inventory
func (h *InventoryHandler) SearchItems(
	ctx context.Context,
	req *arenav1alpha1.SearchItemsRequest,
) (*arenav1alpha1.SearchItemsResponse, error) {
	userID, err := ownedCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	var class entities.ItemClass
	if strings.TrimSpace(req.ItemClass) != "" {
		class, err = items.ParseClass(req.ItemClass)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
	}

	output, err := h.inventoryService.SearchItems(ctx, &inventory.SearchItemsInput{
		UserID:      userID,
		CharacterID: req.CharacterId,
		Criteria: invrules.Criteria{
			Name:     req.Name,
			Class:    class,
			MinValue: intFromProto(req.MinValue),
			MaxValue: intFromProto(req.MaxValue),
		},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arenav1alpha1.SearchItemsResponse{Items: convertItemsToProto(output.Items)}, nil
}

// GetInventoryStats counts an inventory's items and value
func (h *InventoryHandler) GetInventoryStats(
	ctx context.Context,
	req *arenav1alpha1.GetInventoryStatsRequest,
) (*arenav1alpha1.GetInventoryStatsResponse, error) {
	userID, err := ownedCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.inventoryService.GetInventoryStats(ctx, &inventory.GetInventoryStatsInput{
		UserID:      userID,
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	byClass := make(map[string]*arenav1alpha1.ItemClassStats, len(output.Stats.ByClass))
	for class, cs := range output.Stats.ByClass {
		byClass[string(class)] = &arenav1alpha1.ItemClassStats{
			Count:      int32(cs.Count),
			TotalValue: int32(cs.TotalValue),
		}
	}

	return &arenav1alpha1.GetInventoryStatsResponse{
		Count:      int32(output.Stats.Count),
		TotalValue: int32(output.Stats.TotalValue),
		ByClass:    byClass,
	}, nil
}

// ListItemClasses returns the item catalog
func (h *InventoryHandler) ListItemClasses(
	ctx context.Context,
	_ *arenav1alpha1.ListItemClassesRequest,
) (*arenav1alpha1.ListItemClassesResponse, error) {
	output, err := h.inventoryService.ListItemClasses(ctx, &inventory.ListItemClassesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	classes := make([]*arenav1alpha1.ItemClassInfo, 0, len(output.Definitions))
	for _, d := range output.Definitions {
		classes = append(classes, convertDefinitionToProto(d))
	}

	return &arenav1alpha1.ListItemClassesResponse{ItemClasses: classes}, nil
}
