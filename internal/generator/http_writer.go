package generator

import (
	"fmt"
	"path"
	"strings"

	"github.com/ron-layerx/sick-rats/internal/common/errorwrapper"
	"github.com/ron-layerx/sick-rats/internal/common/filemanager"
	"github.com/ron-layerx/sick-rats/internal/endpoints"
	"github.com/ron-layerx/sick-rats/internal/identity"
	"github.com/ron-layerx/sick-rats/internal/models"
	"github.com/rs/zerolog"
)

// ArtifactHTTPTemplate names the redacted request-template artifact in errors.
const ArtifactHTTPTemplate = "http-template"

// HTTPTemplateWriter renders the known partition into a .http file of
// replayable request templates. Secrets never appear here, only
// {{variableName}} references resolved from the credential store.
type HTTPTemplateWriter struct {
	logger       zerolog.Logger
	fileManager  *filemanager.FileManager
	catalog      *endpoints.Catalog
	responsesDir string
}

// NewHTTPTemplateWriter creates a new HTTPTemplateWriter. responsesDir is the
// directory name used in response-redirect directives.
func NewHTTPTemplateWriter(catalog *endpoints.Catalog, responsesDir string, logger zerolog.Logger) *HTTPTemplateWriter {
	componentLogger := logger.With().Str("component", "HTTPTemplateWriter").Logger()
	return &HTTPTemplateWriter{
		logger:       componentLogger,
		fileManager:  filemanager.NewFileManager(componentLogger),
		catalog:      catalog,
		responsesDir: responsesDir,
	}
}

// Write renders all known records in order and writes the artifact atomically.
func (w *HTTPTemplateWriter) Write(outputPath string, known []models.SecretRecord) error {
	content := w.Render(known)

	if err := w.fileManager.WriteFile(outputPath, []byte(content), filemanager.DefaultFileWriteOptions()); err != nil {
		return errorwrapper.NewArtifactError(ArtifactHTTPTemplate, outputPath, err)
	}

	w.logger.Info().Str("path", outputPath).Int("requests", len(known)).Msg("HTTP template artifact written")
	return nil
}

// Render produces the full artifact text for the known partition.
func (w *HTTPTemplateWriter) Render(known []models.SecretRecord) string {
	var sb strings.Builder
	for _, record := range known {
		block := w.renderBlock(record)
		if block == "" {
			continue
		}
		sb.WriteString(block)
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderBlock produces one request block for a record, or "" when the catalog
// has no template for it.
func (w *HTTPTemplateWriter) renderBlock(record models.SecretRecord) string {
	tmpl, ok := w.catalog.Lookup(record.DetectorType)
	if !ok {
		return ""
	}

	variableRef := "{{" + identity.VariableName(record.GroupID, record.DetectorType) + "}}"

	lines := []string{
		fmt.Sprintf("### %s (%s)", record.DetectorType, record.GroupID),
		fmt.Sprintf("%s %s HTTP/1.1", tmpl.Method, tmpl.RenderURL(variableRef)),
	}

	for _, header := range tmpl.Headers {
		lines = append(lines, tmpl.RenderHeader(header, variableRef))
	}

	lines = append(lines, ">> "+w.responseRedirectPath(record))

	if len(tmpl.Body) > 0 {
		body, err := tmpl.Body.RenderJSON()
		if err != nil {
			// Static template bodies are plain JSON values; this cannot
			// happen for the built-in table.
			w.logger.Error().Err(err).Str("detector_type", record.DetectorType).Msg("Failed to marshal template body, skipping body")
		} else {
			lines = append(lines, "", body)
		}
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// responseRedirectPath builds the redirect target for a record. The file name
// is the detector type lowercased with spaces stripped, matching the variable
// naming scheme except that hyphens survive.
func (w *HTTPTemplateWriter) responseRedirectPath(record models.SecretRecord) string {
	detectorClean := strings.ReplaceAll(strings.ToLower(record.DetectorType), " ", "")
	return path.Join(w.responsesDir, record.GroupID, detectorClean+".json")
}
