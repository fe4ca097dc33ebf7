package datastore

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/ron-layerx/sick-rats/internal/common/errorwrapper"
	"github.com/ron-layerx/sick-rats/internal/config"
	"github.com/ron-layerx/sick-rats/internal/models"
	"github.com/rs/zerolog"
)

// ArchivedRecord is the Parquet row shape for one parsed secret record.
// Extra fields are flattened to a JSON string. The archive stores raw secret
// values and must be protected like the credential store.
type ArchivedRecord struct {
	DetectorType   string `parquet:"detector_type"`
	DecoderType    string `parquet:"decoder_type,optional"`
	RawValue       string `parquet:"raw_value"`
	FilePath       string `parquet:"file_path,optional"`
	LineNumber     string `parquet:"line_number,optional"`
	Verified       bool   `parquet:"verified"`
	GroupID        string `parquet:"group_id"`
	ExtraDataJSON  string `parquet:"extra_data_json,optional"`
	ArchivedAtUnix int64  `parquet:"archived_at_unix"`
}

// RecordsArchive appends parsed secret records to a Parquet file.
type RecordsArchive struct {
	config *config.StorageConfig
	logger zerolog.Logger
}

// NewRecordsArchive creates a new RecordsArchive.
func NewRecordsArchive(cfg *config.StorageConfig, logger zerolog.Logger) (*RecordsArchive, error) {
	if cfg.ParquetBasePath == "" {
		return nil, errorwrapper.NewValidationError("parquet_base_path", cfg.ParquetBasePath, "ParquetBasePath is not configured")
	}
	return &RecordsArchive{
		config: cfg,
		logger: logger.With().Str("component", "RecordsArchive").Logger(),
	}, nil
}

// StoreRecords adds a slice of records to the archive Parquet file.
// A Parquet file cannot be appended to in place, so existing rows are read
// back, merged with the new ones and the whole file is rewritten.
func (ra *RecordsArchive) StoreRecords(ctx context.Context, records []models.SecretRecord) error {
	if len(records) == 0 {
		return nil
	}

	filePath, err := ra.prepareOutputFile()
	if err != nil {
		return err
	}

	rows, err := ra.readArchiveRows(ctx, filePath)
	if err != nil {
		return err
	}

	now := time.Now().Unix()
	for _, record := range records {
		rows = append(rows, toArchivedRecord(record, now))
	}

	if err := ra.writeToParquetFile(filePath, rows); err != nil {
		return err
	}

	ra.logger.Info().Str("file_path", filePath).Int("records_added", len(records)).Int("records_total", len(rows)).Msg("Archived secret records to Parquet file")
	return nil
}

// LoadRecords reads all archived records back.
func (ra *RecordsArchive) LoadRecords(ctx context.Context) ([]ArchivedRecord, error) {
	filePath, err := ra.prepareOutputFile()
	if err != nil {
		return nil, err
	}
	return ra.readArchiveRows(ctx, filePath)
}

// readArchiveRows returns every row of the archive file, or an empty slice
// when the file does not exist yet.
func (ra *RecordsArchive) readArchiveRows(ctx context.Context, filePath string) ([]ArchivedRecord, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return []ArchivedRecord{}, nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to open records archive for reading: "+filePath)
	}
	defer file.Close()

	reader := parquet.NewGenericReader[ArchivedRecord](file)
	defer reader.Close()

	rows := make([]ArchivedRecord, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, errorwrapper.WrapError(err, "archive read cancelled")
		}

		batch := make([]ArchivedRecord, 100)
		n, err := reader.Read(batch)
		if n > 0 {
			rows = append(rows, batch[:n]...)
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errorwrapper.WrapError(err, "failed to read records archive")
		}
	}

	return rows, nil
}

func (ra *RecordsArchive) prepareOutputFile() (string, error) {
	archiveDir := filepath.Join(ra.config.ParquetBasePath, "records")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", errorwrapper.WrapError(err, "failed to create records archive directory: "+archiveDir)
	}
	return filepath.Join(archiveDir, "records.parquet"), nil
}

func (ra *RecordsArchive) writeToParquetFile(filePath string, rows []ArchivedRecord) error {
	file, err := os.OpenFile(filePath, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to open records archive file: "+filePath)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[ArchivedRecord](file, parquet.Compression(&parquet.Zstd))

	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return errorwrapper.WrapError(err, "failed to write records to archive file")
	}

	return writer.Close()
}

func toArchivedRecord(record models.SecretRecord, archivedAt int64) ArchivedRecord {
	row := ArchivedRecord{
		DetectorType:   record.DetectorType,
		DecoderType:    record.DecoderType,
		RawValue:       record.RawValue,
		FilePath:       record.FilePath,
		LineNumber:     record.LineNumber,
		Verified:       record.Verified,
		GroupID:        record.GroupID,
		ArchivedAtUnix: archivedAt,
	}

	if len(record.ExtraFields) > 0 {
		extra := make(map[string]string, len(record.ExtraFields))
		for _, field := range record.ExtraFields {
			extra[field.Key] = field.Value
		}
		if data, err := json.Marshal(extra); err == nil {
			row.ExtraDataJSON = string(data)
		}
	}

	return row
}
