package main

import (
	"flag"
	"fmt"
	"os"
)

type AppFlags struct {
	ReportFile       string
	OutputDir        string
	GlobalConfigFile string
}

func ParseFlags() AppFlags {
	reportFile := flag.String("report", "", "Path to the scanner report file to convert.")
	reportFileAlias := flag.String("r", "", "Alias for -report")

	outputDir := flag.String("output", "", "Directory where the artifacts are written. Relative artifact paths from the config are resolved against it.")
	outputDirAlias := flag.String("o", "", "Alias for -output")

	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	flag.Parse()

	flags := AppFlags{}

	if *reportFile != "" {
		flags.ReportFile = *reportFile
	} else if *reportFileAlias != "" {
		flags.ReportFile = *reportFileAlias
	}

	if *outputDir != "" {
		flags.OutputDir = *outputDir
	} else if *outputDirAlias != "" {
		flags.OutputDir = *outputDirAlias
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	return flags
}

func exitUsage(message string) {
	fmt.Fprintln(os.Stderr, "[FATAL] "+message)
	flag.Usage()
	os.Exit(1)
}
