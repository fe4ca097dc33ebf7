package endpoints

import (
	"encoding/json"
	"strconv"
	"strings"
)

// PlaceholderMarker is the substitution point inside a template's URL or
// header patterns. Rendering replaces it with a {{variableName}} reference,
// never with a raw secret value.
const PlaceholderMarker = "{{var}}"

// HeaderPattern is one header of an endpoint template. Header order is part
// of the template, so headers are a slice rather than a map.
type HeaderPattern struct {
	Name    string
	Pattern string
}

// BodyField is one top-level key of a template's request body.
type BodyField struct {
	Key   string
	Value any
}

// BodyDocument is a request body whose top-level keys keep their declared
// order, like Headers.
type BodyDocument []BodyField

// Value returns the body value for a key, if present.
func (d BodyDocument) Value(key string) (any, bool) {
	for _, f := range d {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// RenderJSON serializes the body as indented JSON with the keys in declared
// order.
func (d BodyDocument) RenderJSON() (string, error) {
	if len(d) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	for i, f := range d {
		data, err := json.MarshalIndent(f.Value, "  ", "  ")
		if err != nil {
			return "", err
		}
		sb.WriteString("  " + strconv.Quote(f.Key) + ": " + string(data))
		if i < len(d)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String(), nil
}

// EndpointTemplate describes the HTTP request used to exercise a credential
// of one detector type. Exactly one placeholder marker appears in the URL
// pattern or a header pattern.
type EndpointTemplate struct {
	Method  string
	URL     string
	Headers []HeaderPattern
	Body    BodyDocument
}

// RenderURL substitutes the placeholder marker with a variable reference.
func (t EndpointTemplate) RenderURL(variableRef string) string {
	return strings.ReplaceAll(t.URL, PlaceholderMarker, variableRef)
}

// RenderHeader substitutes the placeholder marker in one header pattern.
func (t EndpointTemplate) RenderHeader(h HeaderPattern, variableRef string) string {
	return h.Name + ": " + strings.ReplaceAll(h.Pattern, PlaceholderMarker, variableRef)
}
