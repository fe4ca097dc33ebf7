package config

const (
	// Converter Defaults
	DefaultConverterHTTPFile    = "converted.http"
	DefaultConverterEnvFile     = "http-client.env.json"
	DefaultConverterUnknownFile = "unknown.txt"
	DefaultConverterResponseDir = "responses"

	// Credential store environment and schema
	DefaultEnvEnvironmentName = "dev"
	DefaultEnvSchemaURL       = "https://raw.githubusercontent.com/mistweaverco/kulala.nvim/main/schemas/http-client.env.schema.json"

	// Storage Defaults
	DefaultStorageParquetBasePath = "database"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Environment variable checked for a config file path
	ConfigPathEnvVar = "SICKRATS_CONFIG_PATH"
)
