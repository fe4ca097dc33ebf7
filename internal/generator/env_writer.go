package generator

import (
	"encoding/json"

	"github.com/ron-layerx/sick-rats/internal/common/errorwrapper"
	"github.com/ron-layerx/sick-rats/internal/common/filemanager"
	"github.com/ron-layerx/sick-rats/internal/identity"
	"github.com/ron-layerx/sick-rats/internal/models"
	"github.com/rs/zerolog"
)

// ArtifactCredentialStore names the credential-store artifact in errors.
const ArtifactCredentialStore = "credential-store"

// EnvStoreWriter produces the http-client environment file mapping variable
// names to real secret values. This is the only artifact allowed to carry raw
// secrets referenced by the HTTP templates.
type EnvStoreWriter struct {
	logger          zerolog.Logger
	fileManager     *filemanager.FileManager
	environmentName string
	schemaURL       string
}

// NewEnvStoreWriter creates a new EnvStoreWriter.
func NewEnvStoreWriter(environmentName, schemaURL string, logger zerolog.Logger) *EnvStoreWriter {
	componentLogger := logger.With().Str("component", "EnvStoreWriter").Logger()
	return &EnvStoreWriter{
		logger:          componentLogger,
		fileManager:     filemanager.NewFileManager(componentLogger),
		environmentName: environmentName,
		schemaURL:       schemaURL,
	}
}

// Write builds the store from the known partition and replaces any existing
// file at outputPath. On a variable-name collision the later record wins.
func (w *EnvStoreWriter) Write(outputPath string, known []models.SecretRecord) error {
	data, err := w.Render(known)
	if err != nil {
		return errorwrapper.NewArtifactError(ArtifactCredentialStore, outputPath, err)
	}

	if err := w.fileManager.WriteFile(outputPath, data, filemanager.DefaultFileWriteOptions()); err != nil {
		return errorwrapper.NewArtifactError(ArtifactCredentialStore, outputPath, err)
	}

	w.logger.Info().Str("path", outputPath).Int("credentials", len(known)).Msg("Credential store artifact written")
	return nil
}

// Render serializes the credential store document.
func (w *EnvStoreWriter) Render(known []models.SecretRecord) ([]byte, error) {
	credentials := make(map[string]string, len(known))
	for _, record := range known {
		credentials[identity.VariableName(record.GroupID, record.DetectorType)] = record.RawValue
	}

	document := map[string]any{
		"$schema":         w.schemaURL,
		w.environmentName: credentials,
	}

	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to marshal credential store")
	}
	return append(data, '\n'), nil
}
