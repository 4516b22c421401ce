package types

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// EstimateRequest is the body of POST /estimate. Exactly one of
// ParamsContent and ParamsPath must be set.
type EstimateRequest struct {
	ParamsContent string `json:"params_content,omitempty"`
	ParamsPath    string `json:"params_path,omitempty"`
	OutputPath    string `json:"output_path"`
	APIKey        string `json:"api_key,omitempty"`
	Debug         bool   `json:"debug,omitempty"`
}

// ResponseEnvelope is the uniform success/error wrapper returned by every
// estimation call.
type ResponseEnvelope struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	OutputPath string `json:"output_path,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
