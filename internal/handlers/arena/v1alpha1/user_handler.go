package v1alpha1

import (
	"context"

	arenav1alpha1 "github.com/KirkDiggler/rpg-arena/internal/api/arena/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/user"
)

// UserHandlerConfig holds dependencies for the user handler
type UserHandlerConfig struct {
	UserService user.Service
}

// Validate ensures all required dependencies are present
func (c *UserHandlerConfig) Validate() error {
	if c.UserService == nil {
		return errors.InvalidArgument("user service is required")
	}
	return nil
}

// UserHandler implements the arena user gRPC service
type UserHandler struct {
	arenav1alpha1.UnimplementedUserServiceServer
	userService user.Service
}

// NewUserHandler creates a new user handler with the given configuration
func NewUserHandler(cfg *UserHandlerConfig) (*UserHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &UserHandler{
		userService: cfg.UserService,
	}, nil
}

// RegisterUser creates an account. It is the only call that needs no acting user.
func (h *UserHandler) RegisterUser(
	ctx context.Context,
	req *arenav1alpha1.RegisterUserRequest,
) (*arenav1alpha1.RegisterUserResponse, error) {
	output, err := h.userService.RegisterUser(ctx, &user.RegisterUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arenav1alpha1.RegisterUserResponse{
		User:    convertUserToProto(output.User),
		Message: output.Message,
	}, nil
}

// GetUser returns the acting user
func (h *UserHandler) GetUser(
	ctx context.Context,
	_ *arenav1alpha1.GetUserRequest,
) (*arenav1alpha1.GetUserResponse, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.userService.GetUser(ctx, &user.GetUserInput{UserID: userID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &arenav1alpha1.GetUserResponse{User: convertUserToProto(output.User)}, nil
}
