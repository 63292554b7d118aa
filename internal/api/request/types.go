package request

// CreateStarshipRequest is the request body for registering a starship
type CreateStarshipRequest struct {
	Name   string `json:"name"`
	Prefix string `json:"prefix,omitempty"`
}

// CompareStarshipsRequest is the request body for comparing two starships
type CompareStarshipsRequest struct {
	LeftID  string `json:"left_id"`
	RightID string `json:"right_id"`
}

// RollRequest is the request body for rolling a die
type RollRequest struct {
	Sides int `json:"sides"`
	// Count defaults to 1 when omitted; an explicit value is validated as given
	Count *int `json:"count,omitempty"`
}
