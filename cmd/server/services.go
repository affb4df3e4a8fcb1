package main

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"google.golang.org/grpc"

	arenav1alpha1 "github.com/KirkDiggler/rpg-arena/internal/api/arena/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/handlers/arena/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/inventory"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/leaderboard"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/missions"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/user"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-arena/internal/redis"
	battlerepo "github.com/KirkDiggler/rpg-arena/internal/repositories/battles"
	characterrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/character"
	inventoryrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/inventory"
	leaderboardrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/leaderboard"
	userrepo "github.com/KirkDiggler/rpg-arena/internal/repositories/user"
)

// serviceDeps are the stores and sources the arena services run on
type serviceDeps struct {
	Redis           redisclient.Client
	UserRepo        userrepo.Repository
	DiceRoller      dice.Roller
	Clock           clock.Clock
	StartingCredits int64
}

// services holds every orchestrator behind the gRPC handlers
type services struct {
	User        user.Service
	Character   character.Service
	Inventory   inventory.Service
	Combat      combat.Service
	Leaderboard leaderboard.Service
	Missions    missions.Service
}

func buildServices(deps *serviceDeps) (*services, error) {
	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: deps.Redis, Clock: deps.Clock})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character repository")
	}
	inventoryRepo, err := inventoryrepo.NewRedis(&inventoryrepo.RedisConfig{Client: deps.Redis, Clock: deps.Clock})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create inventory repository")
	}
	leaderboardRepo, err := leaderboardrepo.NewRedis(&leaderboardrepo.RedisConfig{Client: deps.Redis})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create leaderboard repository")
	}
	battleRepo := battlerepo.NewInMemory()

	combatEngine, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: deps.DiceRoller})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create combat engine")
	}

	userService, err := user.NewOrchestrator(&user.Config{
		UserRepo:        deps.UserRepo,
		LeaderboardRepo: leaderboardRepo,
		IDGenerator:     idgen.NewUUID("user"),
		StartingCredits: deps.StartingCredits,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user service")
	}

	characterService, err := character.New(&character.Config{
		CharacterRepo: characterRepo,
		InventoryRepo: inventoryRepo,
		UserRepo:      deps.UserRepo,
		IDGenerator:   idgen.NewUUID("char"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character service")
	}

	inventoryService, err := inventory.NewOrchestrator(&inventory.Config{
		CharacterRepo: characterRepo,
		InventoryRepo: inventoryRepo,
		UserRepo:      deps.UserRepo,
		IDGenerator:   idgen.NewUUID("item"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create inventory service")
	}

	combatService, err := combat.NewOrchestrator(&combat.Config{
		UserRepo:        deps.UserRepo,
		CharacterRepo:   characterRepo,
		BattleRepo:      battleRepo,
		LeaderboardRepo: leaderboardRepo,
		Engine:          combatEngine,
		IDGenerator:     idgen.NewUUID("battle"),
		Clock:           deps.Clock,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create combat service")
	}

	leaderboardService, err := leaderboard.NewOrchestrator(&leaderboard.Config{LeaderboardRepo: leaderboardRepo})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create leaderboard service")
	}

	return &services{
		User:        userService,
		Character:   characterService,
		Inventory:   inventoryService,
		Combat:      combatService,
		Leaderboard: leaderboardService,
		Missions:    missions.NewOrchestrator(),
	}, nil
}

// registerHandlers registers every arena service on srv and returns their names
func registerHandlers(srv grpc.ServiceRegistrar, svc *services) ([]string, error) {
	userHandler, err := v1alpha1.NewUserHandler(&v1alpha1.UserHandlerConfig{UserService: svc.User})
	if err != nil {
		return nil, err
	}
	characterHandler, err := v1alpha1.NewCharacterHandler(&v1alpha1.CharacterHandlerConfig{CharacterService: svc.Character})
	if err != nil {
		return nil, err
	}
	inventoryHandler, err := v1alpha1.NewInventoryHandler(&v1alpha1.InventoryHandlerConfig{InventoryService: svc.Inventory})
	if err != nil {
		return nil, err
	}
	combatHandler, err := v1alpha1.NewCombatHandler(&v1alpha1.CombatHandlerConfig{CombatService: svc.Combat})
	if err != nil {
		return nil, err
	}
	leaderboardHandler, err := v1alpha1.NewLeaderboardHandler(&v1alpha1.LeaderboardHandlerConfig{LeaderboardService: svc.Leaderboard})
	if err != nil {
		return nil, err
	}
	missionHandler, err := v1alpha1.NewMissionHandler(&v1alpha1.MissionHandlerConfig{MissionService: svc.Missions})
	if err != nil {
		return nil, err
	}

	arenav1alpha1.RegisterUserServiceServer(srv, userHandler)
	arenav1alpha1.RegisterCharacterServiceServer(srv, characterHandler)
	arenav1alpha1.RegisterInventoryServiceServer(srv, inventoryHandler)
	arenav1alpha1.RegisterCombatServiceServer(srv, combatHandler)
	arenav1alpha1.RegisterLeaderboardServiceServer(srv, leaderboardHandler)
	arenav1alpha1.RegisterMissionServiceServer(srv, missionHandler)

	return []string{
		arenav1alpha1.UserService_ServiceName,
		arenav1alpha1.CharacterService_ServiceName,
		arenav1alpha1.InventoryService_ServiceName,
		arenav1alpha1.CombatService_ServiceName,
		arenav1alpha1.LeaderboardService_ServiceName,
		arenav1alpha1.MissionService_ServiceName,
	}, nil
}

// seedUsers creates the built-in accounts that are missing
func seedUsers(ctx context.Context, svc *services) error {
	if _, err := svc.User.SeedDefaultUsers(ctx, &user.SeedDefaultUsersInput{}); err != nil {
		return errors.Wrap(err, "failed to seed default users")
	}
	return nil
}
