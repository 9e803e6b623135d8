package model

// SignupRequest represents the request to create an account.
type SignupRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// SignupResponse represents the created account and its generated team.
type SignupResponse struct {
	User   User  `json:"user"`
	TeamID int64 `json:"team_id"`
}

// VerifyResponse represents the outcome of an e-mail verification.
type VerifyResponse struct {
	UserID     int64 `json:"user_id"`
	IsVerified bool  `json:"is_verified"`
}

// GenerateResponse describes a freshly generated team.
type GenerateResponse struct {
	TeamID  int64  `json:"team_id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Players int    `json:"players"`
}
