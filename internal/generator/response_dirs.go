package generator

import (
	"path/filepath"

	"github.com/ron-layerx/sick-rats/internal/common/errorwrapper"
	"github.com/ron-layerx/sick-rats/internal/common/filemanager"
	"github.com/ron-layerx/sick-rats/internal/models"
	"github.com/rs/zerolog"
)

// ArtifactResponseDirs names the response-directory side effect in errors.
const ArtifactResponseDirs = "response-directories"

// ResponseDirEnsurer creates one subdirectory per group under the responses
// root, as targets for the redirect directives in the HTTP template artifact.
type ResponseDirEnsurer struct {
	logger      zerolog.Logger
	fileManager *filemanager.FileManager
}

// NewResponseDirEnsurer creates a new ResponseDirEnsurer.
func NewResponseDirEnsurer(logger zerolog.Logger) *ResponseDirEnsurer {
	componentLogger := logger.With().Str("component", "ResponseDirEnsurer").Logger()
	return &ResponseDirEnsurer{
		logger:      componentLogger,
		fileManager: filemanager.NewFileManager(componentLogger),
	}
}

// EnsureDirs creates the responses root and one subdirectory per distinct
// group id of the known partition. Pre-existing directories are left as-is.
func (e *ResponseDirEnsurer) EnsureDirs(responsesRoot string, known []models.SecretRecord) error {
	if err := e.fileManager.EnsureDirectory(responsesRoot, 0755); err != nil {
		return errorwrapper.NewArtifactError(ArtifactResponseDirs, responsesRoot, err)
	}

	groupIDs := DistinctGroupIDs(known)
	for _, groupID := range groupIDs {
		dir := filepath.Join(responsesRoot, groupID)
		if err := e.fileManager.EnsureDirectory(dir, 0755); err != nil {
			return errorwrapper.NewArtifactError(ArtifactResponseDirs, dir, err)
		}
	}

	e.logger.Info().Str("root", responsesRoot).Int("groups", len(groupIDs)).Msg("Response directories ensured")
	return nil
}

// DistinctGroupIDs returns the distinct group ids of a partition, preserving
// first-occurrence order.
func DistinctGroupIDs(records []models.SecretRecord) []string {
	seen := make(map[string]bool, len(records))
	var groupIDs []string
	for _, record := range records {
		if seen[record.GroupID] {
			continue
		}
		seen[record.GroupID] = true
		groupIDs = append(groupIDs, record.GroupID)
	}
	return groupIDs
}
