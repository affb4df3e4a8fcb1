package v1alpha1

import (
	"context"

	arenav1alpha1 "github.com/KirkDiggler/rpg-arena/internal/api/arena/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/combat"
)

// CombatHandlerConfig holds dependencies for the combat handler
type CombatHandlerConfig struct {
	CombatService combat.Service
}

// Validate ensures all required dependencies are present
func (c *CombatHandlerConfig) Validate() error {
	if c.CombatService == nil {
		return errors.InvalidArgument("combat service is required")
	}
	return nil
}

// CombatHandler implements the arena combat gRPC service
type CombatHandler struct {
	arenav1alpha1.UnimplementedCombatServiceServer
	combatService combat.Service
}

// NewCombatHandler creates a new combat handler with the given configuration
func NewCombatHandler(cfg *CombatHandlerConfig) (*CombatHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &CombatHandler{
		combatService: cfg.CombatService,
	}, nil
}

// StartCombat runs a battle between two of the acting user's characters
func (h *CombatHandler) StartCombat(
	ctx context.Context,
	req *arenav1alpha1.StartCombatRequest,
) (*arenav1alpha1.StartCombatResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.combatService.StartCombat(ctx, &combat.StartCombatInput{
		UserID:   userID,
		FirstID:  req.FirstCharacterId,
		SecondID: req.SecondCharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arenav1alpha1.StartCombatResponse{
		Report:   convertReportToProto(output.Report),
		First:    convertCharacterToProto(output.First),
		Second:   convertCharacterToProto(output.Second),
		Standing: convertEntryToProto(output.Standing),
	}, nil
}

// GetCombat replays a recorded battle
func (h *CombatHandler) GetCombat(
	ctx context.Context,
	req *arenav1alpha1.GetCombatRequest,
) (*arenav1alpha1.GetCombatResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.BattleId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("battle_id is required"))
	}

	output, err := h.combatService.GetCombat(ctx, &combat.GetCombatInput{
		UserID:   userID,
		BattleID: req.BattleId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arenav1alpha1.GetCombatResponse{Report: convertReportToProto(output.Report)}, nil
}

// ListCombats lists the acting user's recent battles
func (h *CombatHandler) ListCombats(
	ctx context.Context,
	req *arenav1alpha1.ListCombatsRequest,
) (*arenav1alpha1.ListCombatsResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.combatService.ListCombats(ctx, &combat.ListCombatsInput{
		UserID: userID,
		Limit:  int(req.Limit),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	reports := make([]*arenav1alpha1.BattleReport, 0, len(output.Reports))
	for _, r := range output.Reports {
		reports = append(reports, convertReportToProto(r))
	}

	return &arenav1alpha1.ListCombatsResponse{Reports: reports}, nil
}
