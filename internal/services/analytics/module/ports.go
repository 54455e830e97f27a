package module

import (
	"context"

	"skypulse/internal/services/analytics/domain"
	svc "skypulse/internal/services/analytics/service"
)

// Ports exposes the module surface to other modules
type Ports struct {
	Service domain.ServicePort
	Pinger  domain.Pinger
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptServicePort struct{ svc svc.Service }

// EngagementRanking ranks the actors interacting with a profile's recent posts
func (a adaptServicePort) EngagementRanking(ctx context.Context, in domain.RankingInput) (domain.RankingOutput, error) {
	return a.svc.EngagementRanking(ctx, in)
}

// Suggestions returns ranked follow candidates from the two-hop graph
func (a adaptServicePort) Suggestions(ctx context.Context, in domain.SuggestionsInput) (domain.SuggestionsOutput, error) {
	return a.svc.Suggestions(ctx, in)
}

// ActivityProfile returns posting streak and peak-hour bins for a profile
func (a adaptServicePort) ActivityProfile(ctx context.Context, in domain.ActivityInput) (domain.ActivityOutput, error) {
	return a.svc.ActivityProfile(ctx, in)
}
