package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewdex/src/models"
)

func TestHopToXml(t *testing.T) {
	hop := &models.Hop{}
	hop.Name = "Cascade"
	hop.AlphaPct = 5.5
	hop.AmountKg = 0.05
	hop.Use = models.HopUseBoil
	hop.TimeMin = 60
	hop.Form = models.HopFormPellet
	hop.BetaPct = 6

	coding := testCoding()
	recordType, ok := coding.Lookup("HOP")
	require.True(t, ok)

	var out strings.Builder
	coding.NewRecordFor(recordType).ToXml(hop, &out, 1, DefaultIndent)

	expected := `  <HOP>
    <VERSION>1</VERSION>
    <NAME>Cascade</NAME>
    <ALPHA>5.5</ALPHA>
    <AMOUNT>0.05</AMOUNT>
    <USE>Boil</USE>
    <TIME>60</TIME>
    <FORM>Pellet</FORM>
    <BETA>6</BETA>
  </HOP>
`
	assert.Equal(t, expected, out.String())
}

func TestToXmlEscapesText(t *testing.T) {
	hop := &models.Hop{}
	hop.Name = "Fuggles & <Friends>"
	hop.Use = models.HopUseBoil
	hop.Form = models.HopFormLeaf

	coding := testCoding()
	recordType, _ := coding.Lookup("HOP")

	var out strings.Builder
	coding.NewRecordFor(recordType).ToXml(hop, &out, 0, DefaultIndent)
	assert.Contains(t, out.String(), "<NAME>Fuggles &amp; &lt;Friends&gt;</NAME>")
}

func TestMashToXmlWritesStepsInOrder(t *testing.T) {
	mash := &models.Mash{}
	mash.Name = "Single Infusion"
	mash.GrainTempC = 22
	mash.MashSteps = []*models.MashStep{
		{Base: models.Base{Name: "Mash In"}, Type: models.MashStepTypeInfusion, StepTempC: 67},
		{Base: models.Base{Name: "Mash Out"}, Type: models.MashStepTypeTemperature, StepTempC: 75},
	}

	coding := testCoding()
	recordType, _ := coding.Lookup("MASH")

	var out strings.Builder
	coding.NewRecordFor(recordType).ToXml(mash, &out, 0, DefaultIndent)

	xml := out.String()
	assert.Contains(t, xml, "<MASH_STEPS>")
	first := strings.Index(xml, "<NAME>Mash In</NAME>")
	second := strings.Index(xml, "<NAME>Mash Out</NAME>")
	require.Greater(t, first, 0)
	assert.Greater(t, second, first)
}

func TestToXmlMarksMissingSubRecords(t *testing.T) {
	// An absent contained record is a visible comment, not a silent gap
	mash := &models.Mash{}
	mash.Name = "Empty"

	coding := testCoding()
	recordType, _ := coding.Lookup("MASH")

	var out strings.Builder
	coding.NewRecordFor(recordType).ToXml(mash, &out, 0, DefaultIndent)
	assert.Contains(t, out.String(), "<!-- No MASH_STEP records in this MASH -->")
	assert.NotContains(t, out.String(), "<MASH_STEPS>")
}

func TestToXmlOmitsUnmappableEnum(t *testing.T) {
	hop := &models.Hop{}
	hop.Name = "Odd"
	hop.Use = "Sparge" // no such BeerXML token
	hop.Form = models.HopFormPellet

	coding := testCoding()
	recordType, _ := coding.Lookup("HOP")

	var out strings.Builder
	coding.NewRecordFor(recordType).ToXml(hop, &out, 0, DefaultIndent)
	assert.NotContains(t, out.String(), "<USE>")
	assert.Contains(t, out.String(), "<FORM>Pellet</FORM>")
}
