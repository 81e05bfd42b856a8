package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"brewdex/src/directors"
	"brewdex/src/engine"
	"brewdex/src/settings"
	"brewdex/src/store"
)

// printUsage prints helpful usage information
func printUsage() {
	log.Println("brewdex - BeerXML recipe import/export")
	log.Println("\nUsage:")
	log.Println("  brewdex [options]")
	log.Println("\nOptions:")
	flag.PrintDefaults()

	log.Println("\nExamples:")
	log.Println("  brewdex --import=recipes.xml --datadir=/data")
	log.Println("  brewdex --export=- --kind=Recipe")
}

func newLogger(args *settings.Arguments) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if args.Debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		if !args.Verbose {
			cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		}
	}
	if args.LogFile != "" {
		cfg.OutputPaths = []string{args.LogFile}
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("error configuring logger: %w", err)
	}
	return logger.Sugar(), nil
}

func main() {
	// Get the global settings instance and map the command line onto it
	args := settings.GetSettings()

	flag.StringVar(&args.DataDir, "datadir", "./datafiles", "Directory to store the entity snapshot")
	flag.StringVar(&args.ImportFile, "import", "", "BeerXML file to import (may be given a comma-separated list)")
	flag.StringVar(&args.ExportFile, "export", "", "File to export records to (use - for stdout)")
	flag.StringVar(&args.ExportKind, "kind", "Recipe", "Record kind to export (Recipe, Hop, Yeast, ...)")
	flag.StringVar(&args.LogFile, "logfile", "", "Log file (default: stderr)")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&args.Debug, "debug", false, "Enable debug mode")
	flag.StringVar(&args.Version, "version", "0.1.0", "Shows version")

	flag.Parse()

	if args.ImportFile == "" && args.ExportFile == "" {
		fmt.Fprintf(os.Stderr, "Error: nothing to do, give --import or --export\n\n")
		printUsage()
		os.Exit(1)
	}

	logger, err := newLogger(args)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logger.Sync()

	entityStore, err := store.NewEntityStore(args.DataDir, logger)
	if err != nil {
		logger.Fatalf("Failed to open entity store: %v", err)
	}
	if err := entityStore.LoadSnapshot(); err != nil {
		logger.Fatalf("Failed to load entity store: %v", err)
	}

	coding := engine.NewBeerXMLCoding(logger)

	if args.ImportFile != "" {
		importService := directors.NewImportService(coding, entityStore, logger, args)

		var userMessage strings.Builder
		err := importService.ImportFiles(strings.Split(args.ImportFile, ","), &userMessage)
		fmt.Print(userMessage.String())
		if err != nil {
			logger.Errorf("import finished with errors: %v", err)
			os.Exit(1)
		}

		if err := entityStore.SaveSnapshot(); err != nil {
			logger.Fatalf("Failed to save entity store: %v", err)
		}
	}

	if args.ExportFile != "" {
		exportService := directors.NewExportService(coding, entityStore, logger, args)
		if err := exportService.ExportKindToFile(args.ExportKind, args.ExportFile); err != nil {
			logger.Fatalf("Export failed: %v", err)
		}
	}
}
