package directors

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"brewdex/src/engine"
	"brewdex/src/settings"
	"brewdex/src/store"
	"brewdex/src/xmltree"
)

// ImportService reads BeerXML documents into the entity store
type ImportService struct {
	coding   *engine.Coding
	store    *store.EntityStore
	settings *settings.Arguments
	logger   *zap.SugaredLogger
}

func NewImportService(coding *engine.Coding, entityStore *store.EntityStore,
	logger *zap.SugaredLogger, settings *settings.Arguments) *ImportService {
	return &ImportService{
		coding:   coding,
		store:    entityStore,
		settings: settings,
		logger:   logger,
	}
}

// ImportFile imports one document. Messages for the user (parse diagnostics
// and the final per-kind tally) are appended to userMessage.
func (s *ImportService) ImportFile(path string, userMessage io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening import file %s: %w", path, err)
	}
	defer file.Close()

	s.logger.Infof("importing %s", path)
	return s.Import(file, userMessage)
}

// ImportFiles imports several documents, carrying on past individual
// failures and returning the combined errors
func (s *ImportService) ImportFiles(paths []string, userMessage io.Writer) error {
	var errs error
	for _, path := range paths {
		if err := s.ImportFile(path, userMessage); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Import runs the two-phase import on one document: load the whole record
// tree into memory, then normalise and store it
func (s *ImportService) Import(r io.Reader, userMessage io.Writer) error {
	root, err := xmltree.Parse(r)
	if err != nil {
		fmt.Fprintf(userMessage, "Could not parse document: %v\n", err)
		return err
	}

	record, err := s.coding.NewRecord(root.Tag)
	if err != nil {
		fmt.Fprintf(userMessage, "Unrecognized document root <%s>\n", root.Tag)
		return err
	}

	if !record.Load(root, userMessage) {
		return fmt.Errorf("document failed to load")
	}

	stats := engine.NewImportRecordCount()
	result := record.NormaliseAndStoreInDb(nil, s.store, userMessage, stats)
	stats.WriteSummary(userMessage)

	if result == engine.Failed {
		return fmt.Errorf("document failed to store")
	}
	return nil
}
