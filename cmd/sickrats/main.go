package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ron-layerx/sick-rats/internal/config"
	"github.com/ron-layerx/sick-rats/internal/datastore"
	"github.com/ron-layerx/sick-rats/internal/endpoints"
	"github.com/ron-layerx/sick-rats/internal/logger"
	"github.com/ron-layerx/sick-rats/internal/models"
	"github.com/ron-layerx/sick-rats/internal/orchestrator"
)

func main() {
	fmt.Println("sick-rats secret converter starting...")

	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile, logger.NopLogger())
	if err != nil {
		log.Fatalf("[FATAL] Could not load global config using path '%s': %v", flags.GlobalConfigFile, err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}
	zLogger.Info().Msg("Logger initialized successfully.")

	// Flags take precedence over config for the report and output locations.
	if flags.ReportFile != "" {
		gCfg.ConverterConfig.ReportFile = flags.ReportFile
	}
	if gCfg.ConverterConfig.ReportFile == "" {
		exitUsage("-report argument (or converter_config.report_file) is required")
	}
	if flags.OutputDir != "" {
		applyOutputDir(&gCfg.ConverterConfig, flags.OutputDir)
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}
	zLogger.Info().Msg("Configuration validated successfully.")

	catalogLoader := endpoints.NewCatalogLoader(zLogger)
	catalog, err := catalogLoader.Load(gCfg.EndpointsConfig.OverlayFile)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to load endpoint catalog")
	}
	zLogger.Info().Int("templates", catalog.Len()).Msg("Endpoint catalog loaded")

	var archive *datastore.RecordsArchive
	if gCfg.StorageConfig.ArchiveEnabled {
		archive, err = datastore.NewRecordsArchive(&gCfg.StorageConfig, zLogger)
		if err != nil {
			zLogger.Error().Err(err).Msg("Failed to initialize records archive, continuing without archiving")
			archive = nil
		}
	}

	pipeline := orchestrator.NewOrchestrator(gCfg, catalog, archive, zLogger)
	summary, err := pipeline.ExecuteConversion(context.Background(), gCfg.ConverterConfig.ReportFile)
	if err != nil {
		zLogger.Error().Err(err).Msg("Conversion failed")
		printSummary(summary)
		os.Exit(1)
	}

	printSummary(summary)
}

// applyOutputDir resolves relative artifact paths against the output directory.
func applyOutputDir(cfg *config.ConverterConfig, outputDir string) {
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(outputDir, p)
	}
	cfg.HTTPFile = join(cfg.HTTPFile)
	cfg.EnvFile = join(cfg.EnvFile)
	cfg.UnknownFile = join(cfg.UnknownFile)
	cfg.ResponsesDir = join(cfg.ResponsesDir)
}

func printSummary(summary models.ConversionSummary) {
	fmt.Println("----------------------------------------")
	fmt.Printf("Status:           %s\n", summary.Status)
	fmt.Printf("Total records:    %d\n", summary.TotalRecords)
	fmt.Printf("Known secrets:    %d\n", summary.KnownRecords)
	fmt.Printf("Unknown secrets:  %d\n", summary.UnknownRecords)
	fmt.Printf("Extension groups: %d\n", summary.GroupCount)
	fmt.Printf("HTTP templates:   %s\n", summary.HTTPFilePath)
	fmt.Printf("Credential store: %s\n", summary.EnvFilePath)
	fmt.Printf("Unknown report:   %s\n", summary.UnknownFilePath)
	fmt.Printf("Duration:         %s\n", summary.Duration)
	for _, msg := range summary.ErrorMessages {
		fmt.Printf("Error:            %s\n", msg)
	}
	fmt.Println("----------------------------------------")
}
