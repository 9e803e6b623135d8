package model

// SellRequest lists a player for sale. A missing fee means the player's
// current market value.
type SellRequest struct {
	Fee *int64 `json:"fee"`
}

// SellResponse echoes the created listing.
type SellResponse struct {
	PlayerID int64 `json:"player_id"`
	Fee      int64 `json:"fee"`
}

// TeamRequest names the team a player is bought into or moved to.
type TeamRequest struct {
	TeamID int64 `json:"team_id" binding:"required"`
}

// AcquireResponse describes a completed purchase.
type AcquireResponse struct {
	PlayerID      int64  `json:"player_id"`
	FromTeamID    *int64 `json:"from_team_id"`
	ToTeamID      int64  `json:"to_team_id"`
	Fee           int64  `json:"fee"`
	PreviousValue int64  `json:"previous_value"`
	MarketValue   int64  `json:"market_value"`
}

// MoveResponse describes an administrative reassignment.
type MoveResponse struct {
	PlayerID   int64  `json:"player_id"`
	FromTeamID *int64 `json:"from_team_id"`
	ToTeamID   int64  `json:"to_team_id"`
}
