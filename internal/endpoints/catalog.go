package endpoints

import (
	"github.com/ron-layerx/sick-rats/internal/identity"
)

// Catalog maps normalized detector-type names to endpoint templates.
// It is built once and read-only afterwards.
type Catalog struct {
	templates map[string]EndpointTemplate
}

// NewCatalog creates a catalog from a template table. The keys must already
// be in normalized form.
func NewCatalog(templates map[string]EndpointTemplate) *Catalog {
	table := make(map[string]EndpointTemplate, len(templates))
	for key, tmpl := range templates {
		table[key] = tmpl
	}
	return &Catalog{templates: table}
}

// Lookup returns the template for a detector type as reported by the scanner.
// The name is normalized before the lookup.
func (c *Catalog) Lookup(detectorType string) (EndpointTemplate, bool) {
	tmpl, ok := c.templates[identity.NormalizeDetectorType(detectorType)]
	return tmpl, ok
}

// Has reports whether a detector type is classifiable.
func (c *Catalog) Has(detectorType string) bool {
	_, ok := c.Lookup(detectorType)
	return ok
}

// Len returns the number of registered templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}
