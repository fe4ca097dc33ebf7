package config

// StorageConfig holds the configuration for the optional Parquet archive of
// parsed records.
type StorageConfig struct {
	ArchiveEnabled  bool   `json:"archive_enabled,omitempty" yaml:"archive_enabled,omitempty"`
	ParquetBasePath string `json:"parquet_base_path,omitempty" yaml:"parquet_base_path,omitempty"`
}

// NewDefaultStorageConfig creates a StorageConfig with default values.
// Archiving is off by default; the archive holds raw secret values.
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		ArchiveEnabled:  false,
		ParquetBasePath: DefaultStorageParquetBasePath,
	}
}
