package models

import "time"

// ConversionStatus represents the final state of a conversion run.
type ConversionStatus string

const (
	ConversionStatusCompleted ConversionStatus = "COMPLETED"
	ConversionStatusFailed    ConversionStatus = "FAILED"
	ConversionStatusNoSecrets ConversionStatus = "NO_SECRETS"
)

// ConversionSummary aggregates the results of one conversion run.
type ConversionSummary struct {
	ReportPath      string
	TotalRecords    int
	KnownRecords    int
	UnknownRecords  int
	GroupCount      int
	HTTPFilePath    string
	EnvFilePath     string
	UnknownFilePath string
	ResponsesDir    string
	Duration        time.Duration
	Status          ConversionStatus
	ErrorMessages   []string
}

// GetDefaultConversionSummary creates an empty summary with status pre-set.
func GetDefaultConversionSummary() ConversionSummary {
	return ConversionSummary{
		Status: ConversionStatusCompleted,
	}
}
