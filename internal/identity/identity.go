package identity

import (
	"regexp"
	"strings"
)

// UnknownGroupID is the sentinel group for records whose file path carries no
// extensions/<id>/ segment.
const UnknownGroupID = "unknown"

var extensionPathRegex = regexp.MustCompile(`extensions/([^/]+)/`)

// ResolveGroupID extracts the owning-extension id from a file path.
// The first path segment immediately following an "extensions/" component is
// the group id; any path lacking that pattern resolves to UnknownGroupID.
func ResolveGroupID(filePath string) string {
	if filePath == "" {
		return UnknownGroupID
	}

	match := extensionPathRegex.FindStringSubmatch(filePath)
	if match == nil {
		return UnknownGroupID
	}
	return match[1]
}

// NormalizeDetectorType lowercases a scanner detector-type name and strips
// spaces and hyphens. This is the key form used by the endpoint catalog and
// for variable names.
func NormalizeDetectorType(detectorType string) string {
	normalized := strings.ToLower(detectorType)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	return normalized
}

// VariableName derives the placeholder/credential-store key for a record:
// "<groupID>_<normalized detector type>". Two distinct secrets in the same
// group with the same detector type collide on purpose (last write wins in
// the credential store).
func VariableName(groupID, detectorType string) string {
	return groupID + "_" + NormalizeDetectorType(detectorType)
}
