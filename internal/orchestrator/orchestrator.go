package orchestrator

import (
	"context"
	"time"

	"github.com/ron-layerx/sick-rats/internal/classifier"
	"github.com/ron-layerx/sick-rats/internal/config"
	"github.com/ron-layerx/sick-rats/internal/datastore"
	"github.com/ron-layerx/sick-rats/internal/endpoints"
	"github.com/ron-layerx/sick-rats/internal/generator"
	"github.com/ron-layerx/sick-rats/internal/models"
	"github.com/ron-layerx/sick-rats/internal/reportparser"
	"github.com/rs/zerolog"
)

// Orchestrator sequences the conversion pipeline: parse the scanner report,
// deduplicate and classify, then emit the three artifacts and the response
// directory tree.
type Orchestrator struct {
	config        *config.GlobalConfig
	logger        zerolog.Logger
	parser        *reportparser.Parser
	classifier    *classifier.Classifier
	dirEnsurer    *generator.ResponseDirEnsurer
	httpWriter    *generator.HTTPTemplateWriter
	envWriter     *generator.EnvStoreWriter
	unknownWriter *generator.UnknownSecretsWriter
	archive       *datastore.RecordsArchive
}

// NewOrchestrator wires the pipeline components around a loaded catalog.
// The archive may be nil when archiving is disabled.
func NewOrchestrator(
	cfg *config.GlobalConfig,
	catalog *endpoints.Catalog,
	archive *datastore.RecordsArchive,
	logger zerolog.Logger,
) *Orchestrator {
	orchestratorLogger := logger.With().Str("component", "Orchestrator").Logger()
	converterCfg := cfg.ConverterConfig

	return &Orchestrator{
		config:        cfg,
		logger:        orchestratorLogger,
		parser:        reportparser.NewParser(logger),
		classifier:    classifier.NewClassifier(catalog, logger),
		dirEnsurer:    generator.NewResponseDirEnsurer(logger),
		httpWriter:    generator.NewHTTPTemplateWriter(catalog, converterCfg.ResponsesDir, logger),
		envWriter:     generator.NewEnvStoreWriter(converterCfg.EnvironmentName, converterCfg.EnvSchemaURL, logger),
		unknownWriter: generator.NewUnknownSecretsWriter(logger),
		archive:       archive,
	}
}

// ExecuteConversion runs the pipeline over the report at reportPath and
// returns a summary. The first artifact failure aborts the run; earlier
// artifacts stay valid because every write is atomic.
func (o *Orchestrator) ExecuteConversion(ctx context.Context, reportPath string) (models.ConversionSummary, error) {
	startTime := time.Now()
	summary := models.GetDefaultConversionSummary()
	summary.ReportPath = reportPath
	summary.HTTPFilePath = o.config.ConverterConfig.HTTPFile
	summary.EnvFilePath = o.config.ConverterConfig.EnvFile
	summary.UnknownFilePath = o.config.ConverterConfig.UnknownFile
	summary.ResponsesDir = o.config.ConverterConfig.ResponsesDir

	o.logger.Info().Str("report", reportPath).Msg("Parsing scanner report")
	records, err := o.parser.ParseFile(reportPath)
	if err != nil {
		return o.failSummary(summary, startTime, err), err
	}
	summary.TotalRecords = len(records)
	o.logger.Info().Int("records", len(records)).Msg("Report parsed")

	if len(records) == 0 {
		summary.Status = models.ConversionStatusNoSecrets
		summary.Duration = time.Since(startTime)
		o.logger.Warn().Msg("Report contained no usable secret records")
	}

	o.logger.Info().Msg("Deduplicating and classifying records")
	known, unknown := o.classifier.Partition(records)
	summary.KnownRecords = len(known)
	summary.UnknownRecords = len(unknown)
	summary.GroupCount = len(generator.DistinctGroupIDs(known))
	o.logger.Info().Int("known", len(known)).Int("unknown", len(unknown)).Msg("Records classified")

	if err := o.archiveRecords(ctx, known, unknown); err != nil {
		// The archive is a convenience copy; a failure does not invalidate
		// the artifacts, so the run continues.
		o.logger.Error().Err(err).Msg("Failed to archive parsed records")
		summary.ErrorMessages = append(summary.ErrorMessages, err.Error())
	}

	o.logger.Info().Str("root", summary.ResponsesDir).Msg("Ensuring response directories")
	if err := o.dirEnsurer.EnsureDirs(summary.ResponsesDir, known); err != nil {
		return o.failSummary(summary, startTime, err), err
	}

	o.logger.Info().Str("path", summary.HTTPFilePath).Msg("Generating HTTP template artifact")
	if err := o.httpWriter.Write(summary.HTTPFilePath, known); err != nil {
		return o.failSummary(summary, startTime, err), err
	}

	o.logger.Info().Str("path", summary.EnvFilePath).Msg("Generating credential store artifact")
	if err := o.envWriter.Write(summary.EnvFilePath, known); err != nil {
		return o.failSummary(summary, startTime, err), err
	}

	o.logger.Info().Str("path", summary.UnknownFilePath).Msg("Generating unknown secrets artifact")
	if err := o.unknownWriter.Write(summary.UnknownFilePath, unknown); err != nil {
		return o.failSummary(summary, startTime, err), err
	}

	summary.Duration = time.Since(startTime)
	o.logger.Info().
		Int("known", summary.KnownRecords).
		Int("unknown", summary.UnknownRecords).
		Int("groups", summary.GroupCount).
		Dur("duration", summary.Duration).
		Msg("Conversion completed")

	return summary, nil
}

func (o *Orchestrator) archiveRecords(ctx context.Context, known, unknown []models.SecretRecord) error {
	if o.archive == nil {
		return nil
	}

	all := make([]models.SecretRecord, 0, len(known)+len(unknown))
	all = append(all, known...)
	all = append(all, unknown...)
	return o.archive.StoreRecords(ctx, all)
}

func (o *Orchestrator) failSummary(summary models.ConversionSummary, startTime time.Time, err error) models.ConversionSummary {
	summary.Status = models.ConversionStatusFailed
	summary.ErrorMessages = append(summary.ErrorMessages, err.Error())
	summary.Duration = time.Since(startTime)
	return summary
}
