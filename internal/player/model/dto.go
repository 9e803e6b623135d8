package model

// PlayerResponse is a player with the name of the team that owns them.
type PlayerResponse struct {
	ID          int64   `json:"id"`
	TeamID      *int64  `json:"team_id"`
	TeamName    *string `json:"team_name"`
	Role        Role    `json:"role"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Country     string  `json:"country"`
	Age         int     `json:"age"`
	MarketValue int64   `json:"market_value"`
}
