package response

import "github.com/vkhomich/airport-api/internal/domain"

// RouteSummary is the list projection: one human-readable line per route.
type RouteSummary struct {
	ID        uint   `json:"id"`
	RouteInfo string `json:"route_info"`
}

// RouteDetail is the retrieve projection with both airports embedded.
type RouteDetail struct {
	ID          uint           `json:"id"`
	Source      domain.Airport `json:"source"`
	Destination domain.Airport `json:"destination"`
	Distance    int            `json:"distance"`
}

func NewRouteSummary(route domain.Route) RouteSummary {
	return RouteSummary{
		ID:        route.ID,
		RouteInfo: route.Info(),
	}
}

func NewRouteSummaries(routes []domain.Route) []RouteSummary {
	summaries := make([]RouteSummary, len(routes))
	for i, route := range routes {
		summaries[i] = NewRouteSummary(route)
	}

	return summaries
}

func NewRouteDetail(route domain.Route) RouteDetail {
	return RouteDetail{
		ID:          route.ID,
		Source:      route.Source,
		Destination: route.Destination,
		Distance:    route.Distance,
	}
}
