package classifier_test

import (
	"testing"

	"github.com/ron-layerx/sick-rats/internal/classifier"
	"github.com/ron-layerx/sick-rats/internal/endpoints"
	"github.com/ron-layerx/sick-rats/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier() *classifier.Classifier {
	return classifier.NewClassifier(endpoints.DefaultCatalog(), zerolog.Nop())
}

func TestClassifier_Deduplicate(t *testing.T) {
	c := newTestClassifier()

	t.Run("keeps first occurrence", func(t *testing.T) {
		records := []models.SecretRecord{
			{DetectorType: "OpenAI", RawValue: "secret-1", FilePath: "first.js"},
			{DetectorType: "Miro", RawValue: "secret-1", FilePath: "second.js"},
			{DetectorType: "Infura", RawValue: "secret-2"},
		}

		unique := c.Deduplicate(records)
		require.Len(t, unique, 2)
		assert.Equal(t, "OpenAI", unique[0].DetectorType)
		assert.Equal(t, "first.js", unique[0].FilePath)
		assert.Equal(t, "secret-2", unique[1].RawValue)
	})

	t.Run("no duplicate raw values survive", func(t *testing.T) {
		records := []models.SecretRecord{
			{RawValue: "a"}, {RawValue: "b"}, {RawValue: "a"}, {RawValue: "b"}, {RawValue: "a"},
		}
		unique := c.Deduplicate(records)

		seen := make(map[string]bool)
		for _, record := range unique {
			assert.False(t, seen[record.RawValue], "duplicate raw value %q", record.RawValue)
			seen[record.RawValue] = true
		}
		assert.Len(t, unique, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, c.Deduplicate(nil))
	})
}

func TestClassifier_Partition(t *testing.T) {
	c := newTestClassifier()

	t.Run("total and exclusive", func(t *testing.T) {
		records := []models.SecretRecord{
			{DetectorType: "OpenAI", RawValue: "s1", FilePath: "/x/extensions/abc/y.js"},
			{DetectorType: "FooBarService", RawValue: "s2", FilePath: "/tmp/file.js"},
			{DetectorType: "Telegram Bot Token", RawValue: "s3"},
			{DetectorType: "", RawValue: "s4"},
		}

		known, unknown := c.Partition(records)
		assert.Len(t, known, 2)
		assert.Len(t, unknown, 2)
		assert.Equal(t, len(records), len(known)+len(unknown))
	})

	t.Run("group ids are resolved", func(t *testing.T) {
		records := []models.SecretRecord{
			{DetectorType: "OpenAI", RawValue: "s1", FilePath: "/x/extensions/abc/y.js"},
			{DetectorType: "FooBarService", RawValue: "s2", FilePath: "/tmp/file.js"},
		}

		known, unknown := c.Partition(records)
		require.Len(t, known, 1)
		require.Len(t, unknown, 1)
		assert.Equal(t, "abc", known[0].GroupID)
		assert.Equal(t, "unknown", unknown[0].GroupID)
	})

	t.Run("order within partitions follows input", func(t *testing.T) {
		records := []models.SecretRecord{
			{DetectorType: "Miro", RawValue: "k1"},
			{DetectorType: "Nope", RawValue: "u1"},
			{DetectorType: "Infura", RawValue: "k2"},
			{DetectorType: "AlsoNope", RawValue: "u2"},
		}

		known, unknown := c.Partition(records)
		require.Len(t, known, 2)
		require.Len(t, unknown, 2)
		assert.Equal(t, "k1", known[0].RawValue)
		assert.Equal(t, "k2", known[1].RawValue)
		assert.Equal(t, "u1", unknown[0].RawValue)
		assert.Equal(t, "u2", unknown[1].RawValue)
	})

	t.Run("duplicates removed before classification", func(t *testing.T) {
		records := []models.SecretRecord{
			{DetectorType: "OpenAI", RawValue: "same"},
			{DetectorType: "FooBarService", RawValue: "same"},
		}

		known, unknown := c.Partition(records)
		assert.Len(t, known, 1)
		assert.Empty(t, unknown)
	})
}
