// SPDX-License-Identifier: MIT
package customizer

import "context"

type actorKey struct{}

// WithActor attaches the name of whoever is saving values
func WithActor(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, actorKey{}, name)
}

// ActorFrom returns the saving user, or "system"
func ActorFrom(ctx context.Context) string {
	if name, ok := ctx.Value(actorKey{}).(string); ok && name != "" {
		return name
	}
	return "system"
}
