package get_available_slots

// Request slots query for one date
type Request struct {
	Date      string // YYYY-MM-DD
	ExcludeID string // appointment to ignore, empty = none
}

// Response free slots of the date in catalog order.
// BusinessDay false means the shop is closed and Slots is empty.
type Response struct {
	Date        string
	BusinessDay bool
	Slots       []string
	Degraded    bool // computed from the cached snapshot
}
