package sandbox

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	crisistypes "github.com/cosmos/cosmos-sdk/x/crisis/types"
)

var _ sdk.InvariantRegistry = (*InvariantRegistry)(nil)

// InvariantRegistry collects module invariants in registration order.
type InvariantRegistry struct {
	routes []crisistypes.InvarRoute
}

// NewInvariantRegistry returns an empty registry.
func NewInvariantRegistry() *InvariantRegistry {
	return &InvariantRegistry{}
}

// RegisterRoute implements sdk.InvariantRegistry.
func (r *InvariantRegistry) RegisterRoute(moduleName, route string, invar sdk.Invariant) {
	r.routes = append(r.routes, crisistypes.NewInvarRoute(moduleName, route, invar))
}

// Routes returns the registered invariants.
func (r *InvariantRegistry) Routes() []crisistypes.InvarRoute {
	return r.routes
}

// Check runs the invariants in order and stops at the first broken one.
func (r *InvariantRegistry) Check(ctx sdk.Context) (string, bool) {
	for _, route := range r.routes {
		if msg, broken := route.Invar(ctx); broken {
			return msg, true
		}
	}
	return "", false
}
