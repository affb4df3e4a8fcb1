// Package missions reserves the mission workflows. Every call currently
// reports Unimplemented.
package missions

//go:generate mockgen -destination=mock/mock_service.go -package=missionsmock github.com/KirkDiggler/rpg-arena/internal/orchestrators/missions Service

import (
	"context"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// ComingSoon is the message returned by every mission call
const ComingSoon = "missions are coming soon"

// ListMissionsInput defines the request for the available missions
type ListMissionsInput struct {
	UserID string
}

// ListMissionsOutput defines the response for the available missions
type ListMissionsOutput struct{}

// SelectMissionInput defines the request for starting a mission
type SelectMissionInput struct {
	UserID      string
	MissionID   string
	CharacterID string
}

// SelectMissionOutput defines the response for starting a mission
type SelectMissionOutput struct{}

// Service defines the missions orchestrator interface
type Service interface {
	ListMissions(ctx context.Context, input *ListMissionsInput) (*ListMissionsOutput, error)
	SelectMission(ctx context.Context, input *SelectMissionInput) (*SelectMissionOutput, error)
}

type orchestrator struct{}

// NewOrchestrator creates a new missions orchestrator
func NewOrchestrator() Service {
	return &orchestrator{}
}

func (o *orchestrator) ListMissions(_ context.Context, _ *ListMissionsInput) (*ListMissionsOutput, error) {
	return nil, errors.Unimplemented(ComingSoon)
}

func (o *orchestrator) SelectMission(_ context.Context, _ *SelectMissionInput) (*SelectMissionOutput, error) {
	return nil, errors.Unimplemented(ComingSoon)
}
