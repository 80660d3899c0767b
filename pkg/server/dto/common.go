package dto

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// TreeCreated is returned after a snapshot has been stored.
type TreeCreated struct {
	ID string `json:"id"`
}

// TreeList enumerates stored tree ids.
type TreeList struct {
	Trees []string `json:"trees"`
}

// PathResponse carries a raw relation-id path between two persons.
type PathResponse struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Found bool     `json:"found"`
	Path  []string `json:"path"`
}
