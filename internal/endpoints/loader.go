package endpoints

import (
	"gopkg.in/yaml.v3"

	"github.com/ron-layerx/sick-rats/internal/common/errorwrapper"
	"github.com/ron-layerx/sick-rats/internal/common/filemanager"
	"github.com/ron-layerx/sick-rats/internal/identity"
	"github.com/rs/zerolog"
)

// overlayTemplate mirrors EndpointTemplate in the YAML overlay file.
// Headers and body are decoded from yaml.Nodes so their document order
// survives.
type overlayTemplate struct {
	Method  string    `yaml:"method"`
	URL     string    `yaml:"url"`
	Headers yaml.Node `yaml:"headers"`
	Body    yaml.Node `yaml:"body"`
}

// CatalogLoader builds catalogs from the built-in table plus an optional
// YAML overlay file with extra or overriding templates.
type CatalogLoader struct {
	logger      zerolog.Logger
	fileManager *filemanager.FileManager
}

// NewCatalogLoader creates a new CatalogLoader.
func NewCatalogLoader(logger zerolog.Logger) *CatalogLoader {
	componentLogger := logger.With().Str("component", "CatalogLoader").Logger()
	return &CatalogLoader{
		logger:      componentLogger,
		fileManager: filemanager.NewFileManager(componentLogger),
	}
}

// Load returns the default catalog, merged with the overlay file when a path
// is given. Overlay keys are normalized, so "My-Custom API" and "mycustomapi"
// address the same entry.
func (cl *CatalogLoader) Load(overlayPath string) (*Catalog, error) {
	catalog := DefaultCatalog()
	if overlayPath == "" {
		return catalog, nil
	}

	data, err := cl.fileManager.ReadFile(overlayPath, filemanager.DefaultFileReadOptions())
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read endpoint overlay file: "+overlayPath)
	}

	overlay := make(map[string]overlayTemplate)
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse endpoint overlay file: "+overlayPath)
	}

	for key, ot := range overlay {
		tmpl, err := ot.toTemplate()
		if err != nil {
			return nil, errorwrapper.WrapError(err, "invalid overlay entry: "+key)
		}
		catalog.templates[identity.NormalizeDetectorType(key)] = tmpl
	}

	cl.logger.Info().Int("overlay_entries", len(overlay)).Int("total", catalog.Len()).Str("file", overlayPath).Msg("Loaded endpoint catalog with overlay")
	return catalog, nil
}

func (ot overlayTemplate) toTemplate() (EndpointTemplate, error) {
	tmpl := EndpointTemplate{
		Method: ot.Method,
		URL:    ot.URL,
	}

	if tmpl.Method == "" {
		return tmpl, errorwrapper.NewValidationError("method", tmpl.Method, "method is required")
	}
	if tmpl.URL == "" {
		return tmpl, errorwrapper.NewValidationError("url", tmpl.URL, "url is required")
	}

	headers, err := decodeOrderedHeaders(ot.Headers)
	if err != nil {
		return tmpl, err
	}
	tmpl.Headers = headers

	body, err := decodeOrderedBody(ot.Body)
	if err != nil {
		return tmpl, err
	}
	tmpl.Body = body
	return tmpl, nil
}

// decodeOrderedHeaders turns a YAML mapping node into a header slice,
// preserving the order the headers appear in the file.
func decodeOrderedHeaders(node yaml.Node) ([]HeaderPattern, error) {
	if node.Kind == 0 || node.Kind == yaml.ScalarNode && node.Value == "" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, errorwrapper.NewValidationError("headers", node.Kind, "headers must be a mapping")
	}

	headers := make([]HeaderPattern, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		headers = append(headers, HeaderPattern{
			Name:    node.Content[i].Value,
			Pattern: node.Content[i+1].Value,
		})
	}
	return headers, nil
}

// decodeOrderedBody turns a YAML mapping node into a body document whose
// top-level keys keep their order in the file.
func decodeOrderedBody(node yaml.Node) (BodyDocument, error) {
	if node.Kind == 0 || node.Kind == yaml.ScalarNode && node.Value == "" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, errorwrapper.NewValidationError("body", node.Kind, "body must be a mapping")
	}

	body := make(BodyDocument, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return nil, errorwrapper.WrapError(err, "invalid body value for key: "+node.Content[i].Value)
		}
		body = append(body, BodyField{Key: node.Content[i].Value, Value: value})
	}
	return body, nil
}
