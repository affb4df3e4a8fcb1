package battles

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu     sync.RWMutex
	store  map[string]*entities.BattleReport
	byUser map[string][]string
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store:  make(map[string]*entities.BattleReport),
		byUser: make(map[string][]string),
	}
}

// Save stores a battle report
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Report == nil {
		return nil, errors.InvalidArgument("report is required")
	}
	if input.Report.ID == "" {
		return nil, errors.InvalidArgument("report ID is required")
	}
	if input.Report.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Report.ID]; exists {
		return nil, errors.AlreadyExistsf("battle %s already exists", input.Report.ID)
	}

	r.store[input.Report.ID] = cloneReport(input.Report)
	r.byUser[input.Report.UserID] = append(r.byUser[input.Report.UserID], input.Report.ID)

	return &SaveOutput{}, nil
}

// Get retrieves a battle report by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	report, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("battle %s not found", input.ID)
	}

	return &GetOutput{Report: cloneReport(report)}, nil
}

// ListByUser returns a user's reports, newest first
func (r *InMemoryRepository) ListByUser(_ context.Context, input *ListByUserInput) (*ListByUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byUser[input.UserID]
	reports := make([]*entities.BattleReport, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		if input.Limit > 0 && len(reports) == input.Limit {
			break
		}
		reports = append(reports, cloneReport(r.store[ids[i]]))
	}

	return &ListByUserOutput{Reports: reports}, nil
}

// Delete removes a battle report and its place in the user's history
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	report, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("battle %s not found", input.ID)
	}

	delete(r.store, input.ID)
	ids := r.byUser[report.UserID]
	for i, id := range ids {
		if id == input.ID {
			r.byUser[report.UserID] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	if len(r.byUser[report.UserID]) == 0 {
		delete(r.byUser, report.UserID)
	}

	return &DeleteOutput{}, nil
}

// cloneReport returns a copy that shares no slices with the stored report
func cloneReport(report *entities.BattleReport) *entities.BattleReport {
	clone := *report
	clone.Participants = append([]entities.Participant(nil), report.Participants...)
	clone.Log = append([]entities.TurnEntry(nil), report.Log...)
	return &clone
}
