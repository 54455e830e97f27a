// Package http provides http transport for analytics
package http

import (
	stdhttp "net/http"

	"skypulse/internal/modkit/httpkit"
	"skypulse/internal/services/analytics/domain"
	svc "skypulse/internal/services/analytics/service"
)

// Register mounts analytics endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// ranked audience engagement
	httpkit.PostJSON[domain.RankingInput](r, "/ranking", h.ranking)

	// two-hop follow suggestions
	httpkit.PostJSON[domain.SuggestionsInput](r, "/suggestions", h.suggestions)

	// posting streak and peak hours
	httpkit.PostJSON[domain.ActivityInput](r, "/activity", h.activity)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /analytics/ranking Analytics analyticsRanking
// @Summary Ranked audience engagement for an actor
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.RankingInput true "Query"
// @Success 200 {object} domain.RankingOutput "ok"
// @Router /analytics/ranking [post]
func (h *handlers) ranking(r *stdhttp.Request, in domain.RankingInput) (any, error) {
	out, err := h.svc.EngagementRanking(r.Context(), in)
	if err != nil {
		return nil, err
	}
	if out.Stale {
		return httpkit.StaleOK(out), nil
	}
	return out, nil
}

// swagger:route POST /analytics/suggestions Analytics analyticsSuggestions
// @Summary Follow suggestions two hops out in the graph
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.SuggestionsInput true "Query"
// @Success 200 {object} domain.SuggestionsOutput "ok"
// @Router /analytics/suggestions [post]
func (h *handlers) suggestions(r *stdhttp.Request, in domain.SuggestionsInput) (any, error) {
	out, err := h.svc.Suggestions(r.Context(), in)
	if err != nil {
		return nil, err
	}
	if out.Stale {
		return httpkit.StaleOK(out), nil
	}
	return out, nil
}

// swagger:route POST /analytics/activity Analytics analyticsActivity
// @Summary Posting streak and favored hours for an actor
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.ActivityInput true "Query"
// @Success 200 {object} domain.ActivityOutput "ok"
// @Router /analytics/activity [post]
func (h *handlers) activity(r *stdhttp.Request, in domain.ActivityInput) (any, error) {
	out, err := h.svc.ActivityProfile(r.Context(), in)
	if err != nil {
		return nil, err
	}
	if out.Stale {
		return httpkit.StaleOK(out), nil
	}
	return out, nil
}
