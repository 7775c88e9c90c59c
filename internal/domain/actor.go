package domain

import "context"

// Role of the party performing an operation.
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleUser      Role = "user"
	RoleInternal  Role = "internal"
	RoleAdmin     Role = "admin"
	RoleSystem    Role = "system"
)

// Actor identifies who performs an operation.
type Actor struct {
	ID     string
	Role   Role
	Source string
}

// SystemActor is used by batch jobs and whenever no actor is bound.
var SystemActor = Actor{ID: "system", Role: RoleSystem}

type actorKey struct{}

// WithActor binds actor to ctx.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom returns the actor bound to ctx, or SystemActor.
func ActorFrom(ctx context.Context) Actor {
	if actor, ok := ctx.Value(actorKey{}).(Actor); ok && actor.ID != "" {
		return actor
	}
	return SystemActor
}
