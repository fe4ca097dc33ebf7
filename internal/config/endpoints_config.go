package config

// EndpointsConfig holds the configuration for the endpoint catalog.
type EndpointsConfig struct {
	// OverlayFile is an optional YAML file with extra or overriding endpoint
	// templates, merged over the built-in table.
	OverlayFile string `json:"overlay_file,omitempty" yaml:"overlay_file,omitempty" validate:"omitempty,fileexists"`
}

// NewDefaultEndpointsConfig creates an EndpointsConfig with default values.
func NewDefaultEndpointsConfig() EndpointsConfig {
	return EndpointsConfig{}
}
