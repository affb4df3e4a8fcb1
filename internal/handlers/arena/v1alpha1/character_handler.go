package v1alpha1

import (
	"context"

	arenav1alpha1 "github.com/KirkDiggler/rpg-arena/internal/api/arena/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/character"
)

// CharacterHandlerConfig holds dependencies for the character handler
type CharacterHandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *CharacterHandlerConfig) Validate() error {
	if c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// CharacterHandler implements the arena character gRPC service
type CharacterHandler struct {
	arenav1alpha1.UnimplementedCharacterServiceServer
	characterService character.Service
}

// NewCharacterHandler creates a new character handler with the given configuration
func NewCharacterHandler(cfg *CharacterHandlerConfig) (*CharacterHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &CharacterHandler{
		characterService: cfg.CharacterService,
	}, nil
}

// CreateCharacter buys a character for the acting user
func (h *CharacterHandler) CreateCharacter(
	ctx context.Context,
	req *arenav1alpha1.CreateCharacterRequest,
) (*arenav1alpha1.CreateCharacterResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.CreateCharacter(ctx, &character.CreateCharacterInput{
		UserID:       userID,
		Name:         req.Name,
		Class:        req.Class,
		StartingItem: req.StartingItem,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arenav1alpha1.CreateCharacterResponse{
		Character: convertCharacterToProto(output.Character),
		Inventory: convertInventoryToProto(output.Inventory),
		Cost:      output.Cost,
		Credits:   output.Credits,
		Message:   output.Message,
	}, nil
}

// GetCharacter loads an owned character
func (h *CharacterHandler) GetCharacter(
	ctx context.Context,
	req *arenav1alpha1.GetCharacterRequest,
) (*arenav1alpha1.GetCharacterResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.characterService.GetCharacter(ctx, &character.GetCharacterInput{
		UserID:      userID,
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arenav1alpha1.GetCharacterResponse{Character: convertCharacterToProto(output.Character)}, nil
}

// ListCharacters lists the acting user's characters
func (h *CharacterHandler) ListCharacters(
	ctx context.Context,
	_ *arenav1alpha1.ListCharactersRequest,
) (*arenav1alpha1.ListCharactersResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.ListCharacters(ctx, &character.ListCharactersInput{UserID: userID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arenav1alpha1.ListCharactersResponse{
		Characters: convertCharactersToProto(output.Characters),
		MissingIds: output.Missing,
	}, nil
}

// UpdateCharacter renames an owned character
func (h *CharacterHandler) UpdateCharacter(
	ctx context.Context,
	req *arenav1alpha1.UpdateCharacterRequest,
) (*arenav1alpha1.UpdateCharacterResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.characterService.UpdateCharacter(ctx, &character.UpdateCharacterInput{
		UserID:      userID,
		CharacterID: req.CharacterId,
		Name:        req.Name,
		Class:       req.Class,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arenav1alpha1.UpdateCharacterResponse{
		Character: convertCharacterToProto(output.Character),
		Message:   output.Message,
	}, nil
}

// DeleteCharacter deletes an owned character and refunds part of its cost
func (h *CharacterHandler) DeleteCharacter(
	ctx context.Context,
	req *arenav1alpha1.DeleteCharacterRequest,
) (*arenav1alpha1.DeleteCharacterResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.characterService.DeleteCharacter(ctx, &character.DeleteCharacterInput{
		UserID:      userID,
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arenav1alpha1.DeleteCharacterResponse{
		Refund:  output.Refund,
		Credits: output.Credits,
		Message: output.Message,
	}, nil
}

// GetCharacterStats counts the acting user's characters by class
func (h *CharacterHandler) GetCharacterStats(
	ctx context.Context,
	_ *arenav1alpha1.GetCharacterStatsRequest,
) (*arenav1alpha1.GetCharacterStatsResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.GetCharacterStats(ctx, &character.GetCharacterStatsInput{UserID: userID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	byClass := make(map[string]int32, len(entities.AllClasses))
	for class, count := range output.ByClass {
		byClass[string(class)] = int32(count)
	}

	return &arenav1alpha1.GetCharacterStatsResponse{
		Total:           int32(output.Total),
		ByClass:         byClass,
		MostPlayed:      string(output.MostPlayed),
		MostPlayedCount: int32(output.MostPlayedCount),
	}, nil
}

// ListClasses returns the class catalog with prices
func (h *CharacterHandler) ListClasses(
	ctx context.Context,
	_ *arenav1alpha1.ListClassesRequest,
) (*arenav1alpha1.ListClassesResponse, error) {
	output, err := h.characterService.ListClasses(ctx, &character.ListClassesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	classes := make([]*arenav1alpha1.ClassInfo, 0, len(output.Classes))
	for _, info := range output.Classes {
		classes = append(classes, convertClassToProto(info.Stats, info.Cost))
	}

	return &arenav1alpha1.ListClassesResponse{Classes: classes}, nil
}
