package generator

import (
	"fmt"
	"strings"

	"github.com/ron-layerx/sick-rats/internal/common/errorwrapper"
	"github.com/ron-layerx/sick-rats/internal/common/filemanager"
	"github.com/ron-layerx/sick-rats/internal/models"
	"github.com/rs/zerolog"
)

// ArtifactUnknownSecrets names the unknown-secrets artifact in errors.
const ArtifactUnknownSecrets = "unknown-secrets"

// UnknownSecretsWriter catalogs secrets whose detector type has no endpoint
// template. Raw values appear here because no generated request references
// them; the file carries the same sensitivity as the credential store.
type UnknownSecretsWriter struct {
	logger      zerolog.Logger
	fileManager *filemanager.FileManager
}

// NewUnknownSecretsWriter creates a new UnknownSecretsWriter.
func NewUnknownSecretsWriter(logger zerolog.Logger) *UnknownSecretsWriter {
	componentLogger := logger.With().Str("component", "UnknownSecretsWriter").Logger()
	return &UnknownSecretsWriter{
		logger:      componentLogger,
		fileManager: filemanager.NewFileManager(componentLogger),
	}
}

// Write renders all unknown records in order and writes the artifact atomically.
func (w *UnknownSecretsWriter) Write(outputPath string, unknown []models.SecretRecord) error {
	content := w.Render(unknown)

	if err := w.fileManager.WriteFile(outputPath, []byte(content), filemanager.DefaultFileWriteOptions()); err != nil {
		return errorwrapper.NewArtifactError(ArtifactUnknownSecrets, outputPath, err)
	}

	w.logger.Info().Str("path", outputPath).Int("entries", len(unknown)).Msg("Unknown secrets artifact written")
	return nil
}

// Render produces the full artifact text for the unknown partition.
func (w *UnknownSecretsWriter) Render(unknown []models.SecretRecord) string {
	var sb strings.Builder
	for _, record := range unknown {
		sb.WriteString(fmt.Sprintf("Unknown Secret Type: %s\n", record.DetectorType))
		sb.WriteString(fmt.Sprintf("Extension: %s\n", record.GroupID))
		sb.WriteString(fmt.Sprintf("Raw Value: %s\n", record.RawValue))
		sb.WriteString(fmt.Sprintf("File: %s\n", record.FilePath))
		if record.LineNumber != "" {
			sb.WriteString(fmt.Sprintf("Line: %s\n", record.LineNumber))
		}
		for _, field := range record.ExtraFields {
			sb.WriteString(fmt.Sprintf("%s: %s\n", field.Key, field.Value))
		}
		sb.WriteString(fmt.Sprintf("Verified: %s\n", yesNo(record.Verified)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
