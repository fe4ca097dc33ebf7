package orchestrator_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ron-layerx/sick-rats/internal/config"
	"github.com/ron-layerx/sick-rats/internal/endpoints"
	"github.com/ron-layerx/sick-rats/internal/models"
	"github.com/ron-layerx/sick-rats/internal/orchestrator"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *config.GlobalConfig {
	t.Helper()
	outputDir := t.TempDir()

	cfg := config.NewDefaultGlobalConfig()
	cfg.ConverterConfig.HTTPFile = filepath.Join(outputDir, "converted.http")
	cfg.ConverterConfig.EnvFile = filepath.Join(outputDir, "http-client.env.json")
	cfg.ConverterConfig.UnknownFile = filepath.Join(outputDir, "unknown.txt")
	cfg.ConverterConfig.ResponsesDir = filepath.Join(outputDir, "responses")
	return cfg
}

func runConversion(t *testing.T, cfg *config.GlobalConfig, report string) models.ConversionSummary {
	t.Helper()
	reportPath := filepath.Join(t.TempDir(), "scan.txt")
	require.NoError(t, os.WriteFile(reportPath, []byte(report), 0644))

	pipeline := orchestrator.NewOrchestrator(cfg, endpoints.DefaultCatalog(), nil, zerolog.Nop())
	summary, err := pipeline.ExecuteConversion(context.Background(), reportPath)
	require.NoError(t, err)
	return summary
}

func TestOrchestrator_VerifiedKnownSecret(t *testing.T) {
	cfg := newTestConfig(t)
	report := "Found verified result 🐷🔑\n" +
		"Detector Type: OpenAI\n" +
		"Raw result: sk-test123\n" +
		"File: /x/extensions/abc/y.js\n"

	summary := runConversion(t, cfg, report)
	assert.Equal(t, models.ConversionStatusCompleted, summary.Status)
	assert.Equal(t, 1, summary.TotalRecords)
	assert.Equal(t, 1, summary.KnownRecords)
	assert.Equal(t, 0, summary.UnknownRecords)

	httpContent, err := os.ReadFile(cfg.ConverterConfig.HTTPFile)
	require.NoError(t, err)
	assert.Contains(t, string(httpContent), "GET https://api.openai.com/v1/models HTTP/1.1")
	assert.Contains(t, string(httpContent), "Authorization: Bearer {{abc_openai}}")
	assert.NotContains(t, string(httpContent), "sk-test123")

	envContent, err := os.ReadFile(cfg.ConverterConfig.EnvFile)
	require.NoError(t, err)
	var document struct {
		Dev map[string]string `json:"dev"`
	}
	require.NoError(t, json.Unmarshal(envContent, &document))
	assert.Equal(t, "sk-test123", document.Dev["abc_openai"])

	unknownContent, err := os.ReadFile(cfg.ConverterConfig.UnknownFile)
	require.NoError(t, err)
	assert.Empty(t, string(unknownContent))

	assert.DirExists(t, filepath.Join(cfg.ConverterConfig.ResponsesDir, "abc"))
}

func TestOrchestrator_UnverifiedUnknownSecret(t *testing.T) {
	cfg := newTestConfig(t)
	report := "Found unverified result 🐷🔑\n" +
		"Detector Type: FooBarService\n" +
		"Raw result: foo-secret\n" +
		"File: /tmp/file.js\n"

	summary := runConversion(t, cfg, report)
	assert.Equal(t, 0, summary.KnownRecords)
	assert.Equal(t, 1, summary.UnknownRecords)

	httpContent, err := os.ReadFile(cfg.ConverterConfig.HTTPFile)
	require.NoError(t, err)
	assert.Empty(t, string(httpContent))

	envContent, err := os.ReadFile(cfg.ConverterConfig.EnvFile)
	require.NoError(t, err)
	var document struct {
		Dev map[string]string `json:"dev"`
	}
	require.NoError(t, json.Unmarshal(envContent, &document))
	assert.Empty(t, document.Dev)

	unknownContent, err := os.ReadFile(cfg.ConverterConfig.UnknownFile)
	require.NoError(t, err)
	assert.Contains(t, string(unknownContent), "Unknown Secret Type: FooBarService")
	assert.Contains(t, string(unknownContent), "Raw Value: foo-secret")
	assert.Contains(t, string(unknownContent), "Verified: No")
}

func TestOrchestrator_RoundTrip(t *testing.T) {
	cfg := newTestConfig(t)
	report := strings.Join([]string{
		"Found verified result",
		"Detector Type: OpenAI",
		"Raw result: sk-one",
		"File: /x/extensions/abc/a.js",
		"Found verified result",
		"Detector Type: Infura",
		"Raw result: infura-two",
		"File: /x/extensions/def/b.js",
		"Found unverified result",
		"Detector Type: Miro",
		"Raw result: miro-three",
		"File: /x/extensions/abc/c.js",
	}, "\n")

	summary := runConversion(t, cfg, report)
	assert.Equal(t, 3, summary.KnownRecords)
	assert.Equal(t, 2, summary.GroupCount)

	httpContent, err := os.ReadFile(cfg.ConverterConfig.HTTPFile)
	require.NoError(t, err)
	envContent, err := os.ReadFile(cfg.ConverterConfig.EnvFile)
	require.NoError(t, err)

	var document struct {
		Dev map[string]string `json:"dev"`
	}
	require.NoError(t, json.Unmarshal(envContent, &document))

	// Every variable referenced in the HTTP artifact resolves in the store.
	expected := map[string]string{
		"abc_openai": "sk-one",
		"def_infura": "infura-two",
		"abc_miro":   "miro-three",
	}
	assert.Equal(t, expected, document.Dev)
	for variable := range expected {
		assert.Contains(t, string(httpContent), "{{"+variable+"}}")
	}

	// No raw value leaks into the template artifact.
	for _, raw := range expected {
		assert.NotContains(t, string(httpContent), raw)
	}
}

func TestOrchestrator_DuplicatesAndCollisions(t *testing.T) {
	cfg := newTestConfig(t)
	report := strings.Join([]string{
		"Found verified result",
		"Detector Type: OpenAI",
		"Raw result: sk-dup",
		"File: /x/extensions/abc/a.js",
		"Found verified result",
		"Detector Type: OpenAI",
		"Raw result: sk-dup",
		"File: /x/extensions/abc/copy.js",
		"Found verified result",
		"Detector Type: OpenAI",
		"Raw result: sk-collide",
		"File: /x/extensions/abc/other.js",
	}, "\n")

	summary := runConversion(t, cfg, report)
	// Literal duplicate removed; the colliding pair survives dedup.
	assert.Equal(t, 2, summary.KnownRecords)

	httpContent, err := os.ReadFile(cfg.ConverterConfig.HTTPFile)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(httpContent), "### OpenAI (abc)"))

	envContent, err := os.ReadFile(cfg.ConverterConfig.EnvFile)
	require.NoError(t, err)
	var document struct {
		Dev map[string]string `json:"dev"`
	}
	require.NoError(t, json.Unmarshal(envContent, &document))
	// Last write wins for the shared variable name.
	assert.Equal(t, map[string]string{"abc_openai": "sk-collide"}, document.Dev)
}

func TestOrchestrator_EmptyReport(t *testing.T) {
	cfg := newTestConfig(t)

	summary := runConversion(t, cfg, "nothing to see here\n")
	assert.Equal(t, models.ConversionStatusNoSecrets, summary.Status)
	assert.Equal(t, 0, summary.TotalRecords)

	// Artifacts are still produced, just empty.
	assert.FileExists(t, cfg.ConverterConfig.HTTPFile)
	assert.FileExists(t, cfg.ConverterConfig.EnvFile)
	assert.FileExists(t, cfg.ConverterConfig.UnknownFile)
}

func TestOrchestrator_MissingReport(t *testing.T) {
	cfg := newTestConfig(t)
	pipeline := orchestrator.NewOrchestrator(cfg, endpoints.DefaultCatalog(), nil, zerolog.Nop())

	summary, err := pipeline.ExecuteConversion(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Equal(t, models.ConversionStatusFailed, summary.Status)
	assert.NotEmpty(t, summary.ErrorMessages)
}
