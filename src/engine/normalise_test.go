package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"brewdex/src/models"
)

func loadRecord(t *testing.T, coding *Coding, doc string) *RecordEngine {
	t.Helper()
	root := parseDoc(t, doc)
	record, err := coding.NewRecord(root.Tag)
	require.NoError(t, err)

	var userMessage strings.Builder
	require.True(t, record.Load(root, &userMessage), "load diagnostics: %s", userMessage.String())
	return record
}

func TestNormaliseAndStoreSimpleRecord(t *testing.T) {
	coding := testCoding()
	record := loadRecord(t, coding, hopDoc)

	entityStore := newFakeStore()
	stats := NewImportRecordCount()
	var userMessage strings.Builder

	result := record.NormaliseAndStoreInDb(nil, entityStore, &userMessage, stats)
	assert.Equal(t, Succeeded, result)

	require.Len(t, entityStore.entities, 1)
	hop := entityStore.entities[0].(*models.Hop)
	assert.Equal(t, "Cascade", hop.Name)
	assert.Equal(t, 5.5, hop.AlphaPct)
	assert.NotEmpty(t, hop.GetID())
	assert.Equal(t, 1, stats.StoredCount("Hop"))
	assert.Equal(t, 0, stats.SkippedCount("Hop"))
}

func TestNormaliseAndStoreFindsDuplicate(t *testing.T) {
	coding := testCoding()

	entityStore := newFakeStore()
	existing := &models.Hop{}
	existing.Name = "Cascade"
	existing.AlphaPct = 5.5
	existing.Use = models.HopUseBoil
	existing.Form = models.HopFormPellet
	_, err := entityStore.Insert(existing)
	require.NoError(t, err)

	record := loadRecord(t, coding, hopDoc)
	stats := NewImportRecordCount()
	var userMessage strings.Builder

	result := record.NormaliseAndStoreInDb(nil, entityStore, &userMessage, stats)
	assert.Equal(t, FoundDuplicate, result)

	// Nothing new was stored and the engine now points at the stored entity
	assert.Len(t, entityStore.entities, 1)
	assert.Same(t, existing, record.Entity().(*models.Hop))
	assert.Equal(t, 0, stats.StoredCount("Hop"))
	assert.Equal(t, 1, stats.SkippedCount("Hop"))
}

func TestNormaliseAndStoreRenamesOnNameClash(t *testing.T) {
	coding := testCoding()

	entityStore := newFakeStore()
	existing := &models.Hop{}
	existing.Name = "Cascade"
	existing.AlphaPct = 7.1 // different alpha, so not a duplicate
	existing.Use = models.HopUseBoil
	existing.Form = models.HopFormPellet
	_, err := entityStore.Insert(existing)
	require.NoError(t, err)

	record := loadRecord(t, coding, hopDoc)
	stats := NewImportRecordCount()
	var userMessage strings.Builder

	result := record.NormaliseAndStoreInDb(nil, entityStore, &userMessage, stats)
	assert.Equal(t, Succeeded, result)

	require.Len(t, entityStore.entities, 2)
	assert.Equal(t, "Cascade (1)", entityStore.entities[1].GetName())
}

func TestNameClashAgainstOtherKinds(t *testing.T) {
	// Name uniqueness is global, not per kind
	coding := testCoding()

	entityStore := newFakeStore()
	existing := &models.Recipe{}
	existing.Name = "Cascade"
	_, err := entityStore.Insert(existing)
	require.NoError(t, err)

	record := loadRecord(t, coding, hopDoc)
	stats := NewImportRecordCount()
	var userMessage strings.Builder

	require.Equal(t, Succeeded, record.NormaliseAndStoreInDb(nil, entityStore, &userMessage, stats))
	assert.Equal(t, "Cascade (1)", record.Entity().GetName())
}

const mashDoc = `<MASH>
	<VERSION>1</VERSION>
	<NAME>Single Infusion</NAME>
	<GRAIN_TEMP>22</GRAIN_TEMP>
	<MASH_STEPS>
		<MASH_STEP><VERSION>1</VERSION><NAME>Mash In</NAME><STEP_TEMP>67</STEP_TEMP></MASH_STEP>
	</MASH_STEPS>
</MASH>`

func TestMashStepAttachesToContainingMash(t *testing.T) {
	coding := testCoding()
	record := loadRecord(t, coding, mashDoc)

	entityStore := newFakeStore()
	stats := NewImportRecordCount()
	var userMessage strings.Builder

	require.Equal(t, Succeeded, record.NormaliseAndStoreInDb(nil, entityStore, &userMessage, stats))

	mash := record.Entity().(*models.Mash)
	require.Len(t, mash.MashSteps, 1)
	step := mash.MashSteps[0]
	assert.Equal(t, "Mash In", step.Name)
	// The owned step carries its container's identity from creation
	assert.Equal(t, mash.GetID(), step.MashID)

	// Mash steps are sub-parts and never appear in user-visible counts
	assert.Equal(t, 1, stats.StoredCount("Mash"))
	assert.Equal(t, 0, stats.StoredCount("MashStep"))
	assert.Equal(t, 0, stats.SkippedCount("MashStep"))
}

func TestChildStorageFailureRollsBackParent(t *testing.T) {
	coding := testCoding()
	record := loadRecord(t, coding, mashDoc)

	entityStore := newFakeStore()
	entityStore.failKinds["MashStep"] = true
	stats := NewImportRecordCount()
	var userMessage strings.Builder

	result := record.NormaliseAndStoreInDb(nil, entityStore, &userMessage, stats)
	assert.Equal(t, Failed, result)
	assert.Contains(t, userMessage.String(), "store rejected MashStep")

	// The just-stored mash row was deleted again: no partial writes survive
	assert.Empty(t, entityStore.entities)
	assert.Len(t, entityStore.deleted, 1)
	assert.Equal(t, 0, stats.StoredCount("Mash"))
}

func TestDuplicateParentStillMergesChildren(t *testing.T) {
	// A duplicate mash is skipped, but its steps are still stored and
	// attached to the pre-existing mash
	coding := testCoding()

	entityStore := newFakeStore()
	existing := &models.Mash{}
	existing.Name = "Single Infusion"
	existing.GrainTempC = 22
	_, err := entityStore.Insert(existing)
	require.NoError(t, err)

	record := loadRecord(t, coding, mashDoc)
	stats := NewImportRecordCount()
	var userMessage strings.Builder

	result := record.NormaliseAndStoreInDb(nil, entityStore, &userMessage, stats)
	assert.Equal(t, FoundDuplicate, result)

	require.Len(t, existing.MashSteps, 1)
	assert.Equal(t, existing.GetID(), existing.MashSteps[0].MashID)
	assert.Equal(t, 1, stats.SkippedCount("Mash"))
}

func TestConstructFailureIsReported(t *testing.T) {
	coding := NewCoding("test", zap.NewNop().Sugar())
	coding.Register(&RecordType{
		Tag:            "HOP",
		Kind:           "Hop",
		IncludeInStats: true,
		Fields: FieldDefinitions{
			{Type: FieldString, XPath: "NAME", PropertyName: "name", Required: true},
		},
		Construct: newHop,
	})

	record := loadRecord(t, coding, "<HOP><NAME></NAME></HOP>")

	entityStore := newFakeStore()
	stats := NewImportRecordCount()
	var userMessage strings.Builder

	result := record.NormaliseAndStoreInDb(nil, entityStore, &userMessage, stats)
	assert.Equal(t, Failed, result)
	assert.Contains(t, userMessage.String(), "hop record has no name")
	assert.Empty(t, entityStore.entities)
	assert.Nil(t, record.Entity())
}
