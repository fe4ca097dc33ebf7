package reportparser

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/ron-layerx/sick-rats/internal/common/errorwrapper"
	"github.com/ron-layerx/sick-rats/internal/common/filemanager"
	"github.com/ron-layerx/sick-rats/internal/models"
	"github.com/rs/zerolog"
)

// Marker phrases that open a new occurrence block in the scanner report.
const (
	verifiedMarker   = "Found verified result"
	unverifiedMarker = "Found unverified result"
)

// Recognized field prefixes inside an occurrence block.
const (
	prefixDetectorType = "Detector Type:"
	prefixDecoderType  = "Decoder Type:"
	prefixRawResult    = "Raw result:"
	prefixFile         = "File:"
	prefixLine         = "Line:"
)

// parserState drives the single-slot record accumulator.
type parserState int

const (
	stateIdle parserState = iota
	stateAccumulating
)

// Parser converts a flat-text scanner report into secret records.
type Parser struct {
	logger      zerolog.Logger
	fileManager *filemanager.FileManager
}

// NewParser creates a new report Parser.
func NewParser(logger zerolog.Logger) *Parser {
	componentLogger := logger.With().Str("component", "ReportParser").Logger()
	return &Parser{
		logger:      componentLogger,
		fileManager: filemanager.NewFileManager(componentLogger),
	}
}

// ParseFile reads and parses a report file.
func (p *Parser) ParseFile(path string) ([]models.SecretRecord, error) {
	data, err := p.fileManager.ReadFile(path, filemanager.DefaultFileReadOptions())
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read report file: "+path)
	}
	return p.Parse(data)
}

// Parse scans the report line by line. A marker line closes the record under
// construction (kept only if it has a raw value) and opens a new one; field
// lines populate the current record; unrecognized lines are skipped. Output
// order matches input order.
func (p *Parser) Parse(data []byte) ([]models.SecretRecord, error) {
	// Invalid bytes are dropped rather than failing the whole report.
	data = bytes.ToValidUTF8(data, nil)

	var records []models.SecretRecord
	state := stateIdle
	var current models.SecretRecord

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")

		if isMarkerLine(line) {
			if state == stateAccumulating && current.HasRawValue() {
				records = append(records, current)
			}
			current = models.SecretRecord{
				Verified: strings.Contains(line, verifiedMarker),
			}
			state = stateAccumulating
			continue
		}

		if state == stateIdle {
			continue
		}

		p.applyFieldLine(&current, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to scan report text")
	}

	if state == stateAccumulating && current.HasRawValue() {
		records = append(records, current)
	}

	p.logger.Debug().Int("records", len(records)).Msg("Parsed scanner report")
	return records, nil
}

// applyFieldLine populates one record field from a report line. Lines that
// match none of the known shapes are ignored.
func (p *Parser) applyFieldLine(record *models.SecretRecord, line string) {
	switch {
	case strings.HasPrefix(line, prefixDetectorType):
		record.DetectorType = valueAfterColon(line)
	case strings.HasPrefix(line, prefixDecoderType):
		record.DecoderType = valueAfterColon(line)
	case strings.HasPrefix(line, prefixRawResult):
		record.RawValue = valueAfterColon(line)
	case strings.HasPrefix(line, prefixFile):
		record.FilePath = valueAfterColon(line)
	case strings.HasPrefix(line, prefixLine):
		record.LineNumber = valueAfterColon(line)
	case isExtraFieldLine(line):
		key, value, _ := strings.Cut(line, ":")
		record.ExtraFields = append(record.ExtraFields, models.ExtraField{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
}

func isMarkerLine(line string) bool {
	return strings.Contains(line, verifiedMarker) || strings.Contains(line, unverifiedMarker)
}

// isExtraFieldLine reports whether a line is an auxiliary key:value pair:
// it contains a colon and does not start with whitespace.
func isExtraFieldLine(line string) bool {
	if line == "" || !strings.Contains(line, ":") {
		return false
	}
	return line[0] != ' ' && line[0] != '\t'
}

// valueAfterColon returns everything after the first colon, trimmed.
func valueAfterColon(line string) string {
	_, value, _ := strings.Cut(line, ":")
	return strings.TrimSpace(value)
}
