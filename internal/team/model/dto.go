package model

// TeamResponse is a team together with the summed market value of its players.
type TeamResponse struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	BankBalance int64  `json:"bank_balance"`
	Value       int64  `json:"value"`
}
