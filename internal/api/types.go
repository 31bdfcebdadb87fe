package api

// Generation modes understood by the backend.
const (
	ModeBuild   = "build"
	ModeReverse = "reverse"
)

// Kit is a named bundle of parts from the backend catalog.
type Kit struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Parts []string `json:"parts"`
}

// GenerationRequest is the body of POST /api/generate.
type GenerationRequest struct {
	Mode        string   `json:"mode"`
	Kits        []string `json:"kits"`
	CustomParts []string `json:"custom_parts"`
	Goal        string   `json:"goal"`
}

// normalized returns a copy whose slices encode as [] instead of null.
func (r GenerationRequest) normalized() GenerationRequest {
	if r.Kits == nil {
		r.Kits = []string{}
	}
	if r.CustomParts == nil {
		r.CustomParts = []string{}
	}
	return r
}

// GenerationResult is a build plan returned by the backend. Build mode fills
// Wiring and Firmware; reverse mode fills PartsNeeded, EstimatedCost and
// WhereToBuy.
type GenerationResult struct {
	Overview      string   `json:"overview"`
	Steps         []string `json:"steps"`
	Wiring        string   `json:"wiring"`
	PartsNeeded   []string `json:"parts_needed"`
	EstimatedCost string   `json:"estimated_cost"`
	WhereToBuy    []string `json:"where_to_buy"`
	Firmware      string   `json:"firmware"`
	Tips          []string `json:"tips"`
	ModelUsed     string   `json:"model_used"`
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status  string `json:"status"`
	MongoDB string `json:"mongodb"`
}

// OK reports whether the backend and its database are both up.
func (h HealthStatus) OK() bool {
	return h.Status == "ok" && h.MongoDB == "connected"
}
