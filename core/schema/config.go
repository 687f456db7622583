package schema

// ValidationConfig controls schema validation limits and caching.
type ValidationConfig struct {
	// Limits on generated or user-supplied schemas
	MaxSchemaSize  int // Max schema size in bytes (default: 1MB)
	MaxSchemaDepth int // Max schema nesting depth (default: 10)

	// $ref resolution
	AllowRemoteRef bool     // Allow remote $ref (default: false)
	AllowedSchemes []string // Allowed URL schemes (default: ["file"])

	// Compiled schema cache
	EnableCache  bool // default: true
	MaxCacheSize int  // default: 256

	AssertFormat bool // Assert standard and custom formats (default: true)
}

// DefaultValidationConfig returns the defaults.
func DefaultValidationConfig() *ValidationConfig {
	return &ValidationConfig{
		MaxSchemaSize:  1024 * 1024,
		MaxSchemaDepth: 10,
		AllowRemoteRef: false,
		AllowedSchemes: []string{"file"},
		EnableCache:    true,
		MaxCacheSize:   256,
		AssertFormat:   true,
	}
}
