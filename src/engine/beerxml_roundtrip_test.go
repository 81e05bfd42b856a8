package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewdex/src/models"
)

const recipeDoc = `<RECIPES>
	<RECIPE>
		<VERSION>1</VERSION>
		<NAME>Oatmeal Stout</NAME>
		<TYPE>All Grain</TYPE>
		<STYLE>
			<VERSION>1</VERSION>
			<NAME>Sweet Stout</NAME>
			<CATEGORY>Stout</CATEGORY>
			<STYLE_LETTER>A</STYLE_LETTER>
			<TYPE>Ale</TYPE>
		</STYLE>
		<BREWER>J. Doe</BREWER>
		<BATCH_SIZE>20.5</BATCH_SIZE>
		<BOIL_SIZE>24</BOIL_SIZE>
		<BOIL_TIME>60</BOIL_TIME>
		<EFFICIENCY>72</EFFICIENCY>
		<HOPS>
			<HOP>
				<VERSION>1</VERSION>
				<NAME>East Kent Goldings</NAME>
				<ALPHA>5</ALPHA>
				<AMOUNT>0.04</AMOUNT>
				<USE>Boil</USE>
				<TIME>60</TIME>
				<FORM>Leaf</FORM>
			</HOP>
		</HOPS>
		<FERMENTABLES>
			<FERMENTABLE>
				<VERSION>1</VERSION>
				<NAME>Pale Malt</NAME>
				<TYPE>Grain</TYPE>
				<AMOUNT>4.5</AMOUNT>
				<YIELD>78</YIELD>
				<COLOR>3</COLOR>
			</FERMENTABLE>
		</FERMENTABLES>
		<YEASTS>
			<YEAST>
				<VERSION>1</VERSION>
				<NAME>Irish Ale</NAME>
				<TYPE>Ale</TYPE>
				<FORM>Liquid</FORM>
				<LABORATORY>Wyeast</LABORATORY>
				<PRODUCT_ID>1084</PRODUCT_ID>
			</YEAST>
		</YEASTS>
		<MASH>
			<VERSION>1</VERSION>
			<NAME>Single Infusion</NAME>
			<GRAIN_TEMP>22</GRAIN_TEMP>
			<MASH_STEPS>
				<MASH_STEP>
					<VERSION>1</VERSION>
					<NAME>Saccharification</NAME>
					<TYPE>Infusion</TYPE>
					<STEP_TEMP>67</STEP_TEMP>
					<STEP_TIME>60</STEP_TIME>
				</MASH_STEP>
			</MASH_STEPS>
		</MASH>
		<DATE>2023-11-05</DATE>
	</RECIPE>
</RECIPES>`

func importDoc(t *testing.T, coding *Coding, entityStore *fakeStore, doc string) (*ImportRecordCount, ProcessingResult) {
	t.Helper()
	root := parseDoc(t, doc)
	record, err := coding.NewRecord(root.Tag)
	require.NoError(t, err)

	var userMessage strings.Builder
	require.True(t, record.Load(root, &userMessage), "load diagnostics: %s", userMessage.String())

	stats := NewImportRecordCount()
	result := record.NormaliseAndStoreInDb(nil, entityStore, &userMessage, stats)
	require.NotEqual(t, Failed, result, "store diagnostics: %s", userMessage.String())
	return stats, result
}

func TestImportFullRecipe(t *testing.T) {
	coding := testCoding()
	entityStore := newFakeStore()

	stats, _ := importDoc(t, coding, entityStore, recipeDoc)

	assert.Equal(t, 1, stats.StoredCount("Recipe"))
	assert.Equal(t, 1, stats.StoredCount("Hop"))
	assert.Equal(t, 1, stats.StoredCount("Style"))
	assert.Equal(t, 1, stats.StoredCount("Mash"))
	assert.Equal(t, 0, stats.StoredCount("MashStep"))

	recipes := entityStore.FindAll("Recipe")
	require.Len(t, recipes, 1)
	recipe := recipes[0].(*models.Recipe)
	assert.Equal(t, "Oatmeal Stout", recipe.Name)
	assert.Equal(t, models.RecipeTypeAllGrain, recipe.Type)
	assert.Equal(t, 20.5, recipe.BatchSizeL)
	require.NotNil(t, recipe.Style)
	assert.Equal(t, "Sweet Stout", recipe.Style.Name)
	require.Len(t, recipe.Hops, 1)
	assert.Equal(t, "East Kent Goldings", recipe.Hops[0].Name)
	require.NotNil(t, recipe.Mash)
	require.Len(t, recipe.Mash.MashSteps, 1)
	assert.Equal(t, "Saccharification", recipe.Mash.MashSteps[0].Name)
	assert.Equal(t, "2023-11-05", recipe.Date.Format(DateFormat))
}

func TestRoundTripFindsDuplicate(t *testing.T) {
	// Exporting a stored recipe and importing the result must be recognized
	// as a duplicate of the original
	coding := testCoding()
	entityStore := newFakeStore()
	importDoc(t, coding, entityStore, recipeDoc)

	recipe := entityStore.FindAll("Recipe")[0]
	recordType, _ := coding.Lookup("RECIPE")

	var exported strings.Builder
	exported.WriteString("<RECIPES>\n")
	coding.NewRecordFor(recordType).ToXml(recipe, &exported, 1, DefaultIndent)
	exported.WriteString("</RECIPES>\n")

	stats, _ := importDoc(t, coding, entityStore, exported.String())

	assert.Equal(t, 0, stats.StoredCount("Recipe"))
	assert.Equal(t, 1, stats.SkippedCount("Recipe"))
	assert.Equal(t, 1, stats.SkippedCount("Hop"))
	assert.Equal(t, 1, stats.SkippedCount("Style"))

	// Still exactly one of each top-level entity
	assert.Len(t, entityStore.FindAll("Recipe"), 1)
	assert.Len(t, entityStore.FindAll("Hop"), 1)
	assert.Len(t, entityStore.FindAll("Style"), 1)
	assert.Len(t, entityStore.FindAll("Mash"), 1)

	// Children of a duplicate record are merged onto the stored entity, so
	// the duplicate mash's steps are added to the existing mash again
	mash := entityStore.FindAll("Mash")[0].(*models.Mash)
	assert.Len(t, mash.MashSteps, 2)
}
