package classifier

import (
	"github.com/ron-layerx/sick-rats/internal/endpoints"
	"github.com/ron-layerx/sick-rats/internal/identity"
	"github.com/ron-layerx/sick-rats/internal/models"
	"github.com/rs/zerolog"
)

// Classifier deduplicates parsed records and partitions them by whether the
// endpoint catalog can classify their detector type.
type Classifier struct {
	logger  zerolog.Logger
	catalog *endpoints.Catalog
}

// NewClassifier creates a new Classifier backed by the given catalog.
func NewClassifier(catalog *endpoints.Catalog, logger zerolog.Logger) *Classifier {
	return &Classifier{
		logger:  logger.With().Str("component", "Classifier").Logger(),
		catalog: catalog,
	}
}

// Deduplicate removes records whose raw value was already seen, keeping the
// first occurrence. Order is preserved.
func (c *Classifier) Deduplicate(records []models.SecretRecord) []models.SecretRecord {
	seen := make(map[string]bool, len(records))
	unique := make([]models.SecretRecord, 0, len(records))

	for _, record := range records {
		if seen[record.RawValue] {
			continue
		}
		seen[record.RawValue] = true
		unique = append(unique, record)
	}

	return unique
}

// Partition deduplicates the input and splits the survivors into records the
// catalog knows and records it does not. Every record lands in exactly one
// partition, in deduplicated order, with its group id resolved.
func (c *Classifier) Partition(records []models.SecretRecord) (known, unknown []models.SecretRecord) {
	unique := c.Deduplicate(records)

	for _, record := range unique {
		record.GroupID = identity.ResolveGroupID(record.FilePath)
		if c.catalog.Has(record.DetectorType) {
			known = append(known, record)
		} else {
			unknown = append(unknown, record)
		}
	}

	c.logger.Debug().
		Int("total", len(records)).
		Int("unique", len(unique)).
		Int("known", len(known)).
		Int("unknown", len(unknown)).
		Msg("Partitioned secret records")

	return known, unknown
}
