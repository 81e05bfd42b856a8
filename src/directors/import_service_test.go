package directors

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"brewdex/src/engine"
	"brewdex/src/settings"
	"brewdex/src/store"
)

const hopsDoc = `<?xml version="1.0" encoding="UTF-8"?>
<HOPS>
	<HOP>
		<VERSION>1</VERSION>
		<NAME>Cascade</NAME>
		<ALPHA>5.5</ALPHA>
		<USE>Boil</USE>
		<FORM>Pellet</FORM>
	</HOP>
	<HOP>
		<VERSION>1</VERSION>
		<NAME>Saaz</NAME>
		<ALPHA>3.5</ALPHA>
		<USE>Aroma</USE>
		<FORM>Leaf</FORM>
	</HOP>
</HOPS>`

func newTestServices(t *testing.T) (*ImportService, *ExportService, *store.EntityStore) {
	t.Helper()
	logger := zap.NewNop().Sugar()
	entityStore, err := store.NewEntityStore(t.TempDir(), logger)
	require.NoError(t, err)

	coding := engine.NewBeerXMLCoding(logger)
	args := settings.GetSettings()
	return NewImportService(coding, entityStore, logger, args),
		NewExportService(coding, entityStore, logger, args),
		entityStore
}

func TestImportThenExport(t *testing.T) {
	importService, exportService, entityStore := newTestServices(t)

	var userMessage strings.Builder
	require.NoError(t, importService.Import(strings.NewReader(hopsDoc), &userMessage))
	assert.Contains(t, userMessage.String(), "Hop: 2 stored, 0 skipped as duplicates")
	assert.Len(t, entityStore.FindAll("Hop"), 2)

	var out strings.Builder
	require.NoError(t, exportService.ExportKind("Hop", &out))
	xml := out.String()
	assert.True(t, strings.HasPrefix(xml, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<HOPS>\n"))
	assert.True(t, strings.HasSuffix(xml, "</HOPS>\n"))
	assert.Contains(t, xml, "<NAME>Cascade</NAME>")
	assert.Contains(t, xml, "<NAME>Saaz</NAME>")
}

func TestImportReportsDuplicatesOnSecondRun(t *testing.T) {
	importService, _, entityStore := newTestServices(t)

	var first strings.Builder
	require.NoError(t, importService.Import(strings.NewReader(hopsDoc), &first))

	var second strings.Builder
	require.NoError(t, importService.Import(strings.NewReader(hopsDoc), &second))
	assert.Contains(t, second.String(), "Hop: 0 stored, 2 skipped as duplicates")
	assert.Len(t, entityStore.FindAll("Hop"), 2)
}

func TestImportFileDiagnosticsOnBadDocument(t *testing.T) {
	importService, _, entityStore := newTestServices(t)

	path := filepath.Join(t.TempDir(), "bad.xml")
	badDoc := `<HOPS><HOP><VERSION>3</VERSION><NAME>Cascade</NAME></HOP></HOPS>`
	require.NoError(t, os.WriteFile(path, []byte(badDoc), 0644))

	var userMessage strings.Builder
	err := importService.ImportFile(path, &userMessage)
	assert.Error(t, err)
	assert.Contains(t, userMessage.String(), "VERSION")
	assert.Empty(t, entityStore.FindAll("Hop"))
}

func TestImportUnrecognizedRoot(t *testing.T) {
	importService, _, _ := newTestServices(t)

	var userMessage strings.Builder
	err := importService.Import(strings.NewReader("<GADGETS></GADGETS>"), &userMessage)
	assert.Error(t, err)
	assert.Contains(t, userMessage.String(), "GADGETS")
}

func TestImportFilesAggregatesErrors(t *testing.T) {
	importService, _, _ := newTestServices(t)

	dir := t.TempDir()
	good := filepath.Join(dir, "good.xml")
	require.NoError(t, os.WriteFile(good, []byte(hopsDoc), 0644))

	var userMessage strings.Builder
	err := importService.ImportFiles([]string{good, filepath.Join(dir, "missing.xml")}, &userMessage)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing.xml")
}
