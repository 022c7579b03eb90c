package delete_appointment

// DeleteResponse HTTP response model
type DeleteResponse struct {
	ID       string `json:"id"`
	Deleted  bool   `json:"deleted"`
	Degraded bool   `json:"degraded"`
}
