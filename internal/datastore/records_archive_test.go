package datastore_test

import (
	"context"
	"testing"

	"github.com/ron-layerx/sick-rats/internal/config"
	"github.com/ron-layerx/sick-rats/internal/datastore"
	"github.com/ron-layerx/sick-rats/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArchive(t *testing.T) *datastore.RecordsArchive {
	t.Helper()
	cfg := &config.StorageConfig{
		ArchiveEnabled:  true,
		ParquetBasePath: t.TempDir(),
	}
	archive, err := datastore.NewRecordsArchive(cfg, zerolog.Nop())
	require.NoError(t, err)
	return archive
}

func TestNewRecordsArchive_MissingBasePath(t *testing.T) {
	_, err := datastore.NewRecordsArchive(&config.StorageConfig{}, zerolog.Nop())
	assert.Error(t, err)
}

func TestRecordsArchive_StoreAndLoad(t *testing.T) {
	archive := newTestArchive(t)
	ctx := context.Background()

	records := []models.SecretRecord{
		{
			DetectorType: "OpenAI",
			DecoderType:  "PLAIN",
			RawValue:     "sk-test123",
			FilePath:     "/x/extensions/abc/y.js",
			LineNumber:   "12",
			Verified:     true,
			GroupID:      "abc",
			ExtraFields:  []models.ExtraField{{Key: "Username", Value: "bob"}},
		},
		{
			DetectorType: "FooBarService",
			RawValue:     "foo-secret",
			GroupID:      "unknown",
		},
	}

	require.NoError(t, archive.StoreRecords(ctx, records))

	rows, err := archive.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "OpenAI", rows[0].DetectorType)
	assert.Equal(t, "sk-test123", rows[0].RawValue)
	assert.Equal(t, "abc", rows[0].GroupID)
	assert.True(t, rows[0].Verified)
	assert.Contains(t, rows[0].ExtraDataJSON, "Username")
	assert.NotZero(t, rows[0].ArchivedAtUnix)

	assert.Equal(t, "unknown", rows[1].GroupID)
	assert.Empty(t, rows[1].ExtraDataJSON)
}

func TestRecordsArchive_StoreAcrossRuns(t *testing.T) {
	archive := newTestArchive(t)
	ctx := context.Background()

	firstRun := []models.SecretRecord{
		{DetectorType: "OpenAI", RawValue: "sk-first", GroupID: "abc"},
		{DetectorType: "Infura", RawValue: "infura-first", GroupID: "def"},
	}
	secondRun := []models.SecretRecord{
		{DetectorType: "Miro", RawValue: "miro-second", GroupID: "abc"},
	}

	require.NoError(t, archive.StoreRecords(ctx, firstRun))
	require.NoError(t, archive.StoreRecords(ctx, secondRun))

	rows, err := archive.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "sk-first", rows[0].RawValue)
	assert.Equal(t, "infura-first", rows[1].RawValue)
	assert.Equal(t, "miro-second", rows[2].RawValue)
}

func TestRecordsArchive_LoadWithoutFile(t *testing.T) {
	archive := newTestArchive(t)

	rows, err := archive.LoadRecords(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRecordsArchive_StoreNothing(t *testing.T) {
	archive := newTestArchive(t)
	assert.NoError(t, archive.StoreRecords(context.Background(), nil))
}
