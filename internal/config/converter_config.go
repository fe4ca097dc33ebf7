package config

// ConverterConfig holds the paths of the conversion artifacts. All paths are
// externally supplied; nothing in the pipeline hardcodes a location.
type ConverterConfig struct {
	ReportFile      string `json:"report_file,omitempty" yaml:"report_file,omitempty" validate:"omitempty,fileexists"`
	HTTPFile        string `json:"http_file,omitempty" yaml:"http_file,omitempty" validate:"required"`
	EnvFile         string `json:"env_file,omitempty" yaml:"env_file,omitempty" validate:"required"`
	UnknownFile     string `json:"unknown_file,omitempty" yaml:"unknown_file,omitempty" validate:"required"`
	ResponsesDir    string `json:"responses_dir,omitempty" yaml:"responses_dir,omitempty" validate:"required"`
	EnvironmentName string `json:"environment_name,omitempty" yaml:"environment_name,omitempty" validate:"required"`
	EnvSchemaURL    string `json:"env_schema_url,omitempty" yaml:"env_schema_url,omitempty"`
}

// NewDefaultConverterConfig creates a ConverterConfig with default values.
func NewDefaultConverterConfig() ConverterConfig {
	return ConverterConfig{
		HTTPFile:        DefaultConverterHTTPFile,
		EnvFile:         DefaultConverterEnvFile,
		UnknownFile:     DefaultConverterUnknownFile,
		ResponsesDir:    DefaultConverterResponseDir,
		EnvironmentName: DefaultEnvEnvironmentName,
		EnvSchemaURL:    DefaultEnvSchemaURL,
	}
}
