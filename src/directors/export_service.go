package directors

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"brewdex/src/engine"
	"brewdex/src/settings"
	"brewdex/src/store"
)

const xmlHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

// ExportService writes stored entities back out as BeerXML documents
type ExportService struct {
	coding   *engine.Coding
	store    *store.EntityStore
	settings *settings.Arguments
	logger   *zap.SugaredLogger
}

func NewExportService(coding *engine.Coding, entityStore *store.EntityStore,
	logger *zap.SugaredLogger, settings *settings.Arguments) *ExportService {
	return &ExportService{
		coding:   coding,
		store:    entityStore,
		settings: settings,
		logger:   logger,
	}
}

// ExportKind writes every stored entity of one kind, wrapped in the kind's
// container tag
func (s *ExportService) ExportKind(kind string, out io.Writer) error {
	recordType, ok := s.coding.LookupKind(kind)
	if !ok {
		return fmt.Errorf("no %s record type for kind %s", s.coding.Name, kind)
	}
	if recordType.ContainerTag == "" {
		return fmt.Errorf("%s records cannot be exported on their own", kind)
	}

	entities := s.store.FindAll(kind)
	s.logger.Infof("exporting %d %s entities", len(entities), kind)

	fmt.Fprint(out, xmlHeader)
	fmt.Fprintf(out, "<%s>\n", recordType.ContainerTag)
	record := s.coding.NewRecordFor(recordType)
	for _, entity := range entities {
		record.ToXml(entity, out, 1, engine.DefaultIndent)
	}
	fmt.Fprintf(out, "</%s>\n", recordType.ContainerTag)
	return nil
}

// ExportKindToFile writes ExportKind output to a file, or to stdout when
// path is "-"
func (s *ExportService) ExportKindToFile(kind, path string) error {
	if path == "-" {
		return s.ExportKind(kind, os.Stdout)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating export file %s: %w", path, err)
	}
	defer file.Close()

	if err := s.ExportKind(kind, file); err != nil {
		return err
	}
	s.logger.Infof("exported %s records to %s", kind, path)
	return nil
}
