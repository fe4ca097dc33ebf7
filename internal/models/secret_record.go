package models

// ExtraField is one auxiliary key/value line attached to a report record.
// Kept as a slice to preserve encounter order.
type ExtraField struct {
	Key   string
	Value string
}

// SecretRecord represents one credential occurrence recovered from a scanner report.
type SecretRecord struct {
	DetectorType string
	DecoderType  string
	RawValue     string // the actual secret, never written to the HTTP template artifact
	FilePath     string
	LineNumber   string
	Verified     bool
	GroupID      string // derived from FilePath, "unknown" when underivable
	ExtraFields  []ExtraField
}

// HasRawValue reports whether the record carries a secret value.
// Records without one are dropped by the parser.
func (r *SecretRecord) HasRawValue() bool {
	return r.RawValue != ""
}

// GetExtraField returns the value for an auxiliary key, if present.
func (r *SecretRecord) GetExtraField(key string) (string, bool) {
	for _, f := range r.ExtraFields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}
