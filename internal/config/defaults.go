package config

// Version of the estimation service, reported by /health and GET /.
const Version = "1.0.0"

const ServiceName = "ml-training-estimation"

const (
	DefaultPort = 8080
	DefaultHost = "0.0.0.0"
)

const (
	DefaultGeminiModel           = "gemini-2.0-flash-exp"
	DefaultGeminiTimeoutSeconds  = 120
	DefaultGeminiMaxAttempts     = 1
	DefaultGeminiMaxOutputTokens = 4096
)

// GCS exposes an S3-interoperable XML API at this endpoint, which lets one
// client implementation serve both gs:// and s3:// references.
const DefaultObjectStoreEndpoint = "https://storage.googleapis.com"
