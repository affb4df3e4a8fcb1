// Package v1alpha1 handles the arena gRPC service interfaces
package v1alpha1

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"

	arenav1alpha1 "github.com/KirkDiggler/rpg-arena/internal/api/arena/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// actingUser returns the user id the gateway asserted in the request metadata
func actingUser(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.Unauthenticated("missing request metadata")
	}
	for _, v := range md.Get(arenav1alpha1.UserIDHeader) {
		if id := strings.TrimSpace(v); id != "" {
			return id, nil
		}
	}
	return "", errors.Unauthenticated(arenav1alpha1.UserIDHeader + " is required")
}

// WithActingUser returns an outgoing context carrying the acting user id
func WithActingUser(ctx context.Context, userID string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, arenav1alpha1.UserIDHeader, userID)
}
