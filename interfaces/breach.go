package interfaces

import "context"

// BreachClient is the boundary to the external breach index.
// Implementations must not send the raw address over the wire.
type BreachClient interface {
	LookupBreaches(ctx context.Context, email string) (int, error)
}
