package health

const (
	statusUp       = "up"
	statusDown     = "down"
	statusOK       = "ok"
	statusDegraded = "degraded"
)

// HealthResponse HTTP response model
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}
