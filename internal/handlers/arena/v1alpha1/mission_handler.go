package v1alpha1

import (
	"context"

	arenav1alpha1 "github.com/KirkDiggler/rpg-arena/internal/api/arena/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/missions"
)

// MissionHandlerConfig holds dependencies for the mission handler
type MissionHandlerConfig struct {
	MissionService missions.Service
}

// Validate ensures all required dependencies are present
func (c *MissionHandlerConfig) Validate() error {
	if c.MissionService == nil {
		return errors.InvalidArgument("mission service is required")
	}
	return nil
}

// MissionHandler implements the arena mission gRPC service
type MissionHandler struct {
	arenav1alpha1.UnimplementedMissionServiceServer
	missionService missions.Service
}

// NewMissionHandler creates a new mission handler with the given configuration
func NewMissionHandler(cfg *MissionHandlerConfig) (*MissionHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &MissionHandler{
		missionService: cfg.MissionService,
	}, nil
}

// ListMissions lists the available missions
func (h *MissionHandler) ListMissions(
	ctx context.Context,
	_ *arenav1alpha1.ListMissionsRequest,
) (*arenav1alpha1.ListMissionsResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.missionService.ListMissions(ctx, &missions.ListMissionsInput{UserID: userID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arenav1alpha1.ListMissionsResponse{Missions: []*arenav1alpha1.Mission{}}, nil
}

// SelectMission starts a mission
func (h *MissionHandler) SelectMission(
	ctx context.Context,
	req *arenav1alpha1.SelectMissionRequest,
) (*arenav1alpha1.SelectMissionResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.missionService.SelectMission(ctx, &missions.SelectMissionInput{
		UserID:      userID,
		MissionID:   req.MissionId,
		CharacterID: req.CharacterId,
	}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arenav1alpha1.SelectMissionResponse{}, nil
}
