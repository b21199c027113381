package request

// CreatePlayerRequest is the request body for registering a player
type CreatePlayerRequest struct {
	Username string `json:"username"`
	Phone    string `json:"phone,omitempty"`
}

// UpdatePlayerRequest is the request body for updating a player
type UpdatePlayerRequest struct {
	Phone *string `json:"phone"`
}

// ScanRequest is the request body for recording a scan.
// Either Content is set, or Hash and Name describe an already-derived code.
type ScanRequest struct {
	Content string `json:"content,omitempty"`
	Hash    string `json:"hash,omitempty"`
	Name    string `json:"name,omitempty"`
	Score   int    `json:"score,omitempty"`
}
