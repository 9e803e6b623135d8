// Package model provides data transfer objects for statistics module.
package model

// RoleStatistics aggregates players of one role.
type RoleStatistics struct {
	Role         string  `json:"role"`
	Players      int     `json:"players"`
	TotalValue   int64   `json:"total_value"`
	AverageValue float64 `json:"average_value"`
	AverageAge   float64 `json:"average_age"`
}

// RolesStatisticsResponse represents response for role statistics.
type RolesStatisticsResponse struct {
	Roles []RoleStatistics `json:"roles"`
	Total int              `json:"total"`
}

// MarketStatistics summarises the league and its transfer market.
type MarketStatistics struct {
	Teams            int     `json:"teams"`
	Players          int     `json:"players"`
	FreeAgents       int     `json:"free_agents"`
	TotalMarketValue int64   `json:"total_market_value"`
	ActiveListings   int     `json:"active_listings"`
	ListedFeeTotal   int64   `json:"listed_fee_total"`
	AverageListedFee float64 `json:"average_listed_fee"`
	ClosedListings   int     `json:"closed_listings"`
}

// MarketStatisticsResponse represents response for market statistics.
type MarketStatisticsResponse struct {
	Statistics MarketStatistics `json:"statistics"`
}
