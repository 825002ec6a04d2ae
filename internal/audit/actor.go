package audit

import "context"

// MaxActorLength bounds an actor identity to the width of the audit columns.
const MaxActorLength = 20

// Actor is the identity recorded as the author of an insert or update.
type Actor string

func (a Actor) String() string {
	return string(a)
}

// Valid reports whether a can be stored in the audit columns.
func (a Actor) Valid() bool {
	return a != "" && len(a) <= MaxActorLength
}

type contextKey struct{}

// WithActor returns a copy of ctx carrying actor.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, contextKey{}, actor)
}

// FromContext returns the actor stored in ctx, if any.
func FromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(contextKey{}).(Actor)
	return actor, ok && actor != ""
}
