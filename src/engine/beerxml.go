package engine

import (
	"go.uber.org/zap"
)

// beerXMLVersion is the VERSION constant every BeerXML 1.0 record carries
const beerXMLVersion = "1"

// Enum token tables for the BeerXML 1.0 coding. BeerXML's tokens happen to
// match our internal values for most of these, but the mapping stays
// explicit so the dialect can diverge from the model without touching the
// traversal.
var (
	recipeTypeMap = NewEnumStringMap().
			Add("Extract", "Extract").
			Add("Partial Mash", "Partial Mash").
			Add("All Grain", "All Grain")

	styleTypeMap = NewEnumStringMap().
			Add("Lager", "Lager").
			Add("Ale", "Ale").
			Add("Mead", "Mead").
			Add("Wheat", "Wheat").
			Add("Mixed", "Mixed").
			Add("Cider", "Cider")

	fermentableTypeMap = NewEnumStringMap().
				Add("Grain", "Grain").
				Add("Sugar", "Sugar").
				Add("Extract", "Extract").
				Add("Dry Extract", "Dry Extract").
				Add("Adjunct", "Adjunct")

	hopUseMap = NewEnumStringMap().
			Add("Boil", "Boil").
			Add("Dry Hop", "Dry Hop").
			Add("Mash", "Mash").
			Add("First Wort", "First Wort").
			Add("Aroma", "Aroma")

	hopFormMap = NewEnumStringMap().
			Add("Pellet", "Pellet").
			Add("Plug", "Plug").
			Add("Leaf", "Leaf")

	miscTypeMap = NewEnumStringMap().
			Add("Spice", "Spice").
			Add("Fining", "Fining").
			Add("Water Agent", "Water Agent").
			Add("Herb", "Herb").
			Add("Flavor", "Flavor").
			Add("Other", "Other")

	miscUseMap = NewEnumStringMap().
			Add("Boil", "Boil").
			Add("Mash", "Mash").
			Add("Primary", "Primary").
			Add("Secondary", "Secondary").
			Add("Bottling", "Bottling")

	yeastTypeMap = NewEnumStringMap().
			Add("Ale", "Ale").
			Add("Lager", "Lager").
			Add("Wheat", "Wheat").
			Add("Wine", "Wine").
			Add("Champagne", "Champagne")

	yeastFormMap = NewEnumStringMap().
			Add("Liquid", "Liquid").
			Add("Dry", "Dry").
			Add("Slant", "Slant").
			Add("Culture", "Culture")

	mashStepTypeMap = NewEnumStringMap().
			Add("Infusion", "Infusion").
			Add("Temperature", "Temperature").
			Add("Decoction", "Decoction")
)

// NewBeerXMLCoding builds the registry for the BeerXML 1.0 dialect: one
// record type per tag, each with its field schema and type-specific hooks
func NewBeerXMLCoding(logger *zap.SugaredLogger) *Coding {
	c := NewCoding("BeerXML 1.0", logger)

	c.Register(&RecordType{
		Tag:            "RECIPE",
		ContainerTag:   "RECIPES",
		Kind:           "Recipe",
		IncludeInStats: true,
		UniqueNames:    true,
		Fields: FieldDefinitions{
			{Type: FieldRequiredConstant, XPath: "VERSION", PropertyName: beerXMLVersion},
			{Type: FieldString, XPath: "NAME", PropertyName: "name", Required: true},
			{Type: FieldEnum, XPath: "TYPE", PropertyName: "type", EnumMap: recipeTypeMap},
			{Type: FieldRecordSimple, XPath: "STYLE", PropertyName: "style"},
			{Type: FieldRecordSimple, XPath: "EQUIPMENT", PropertyName: "equipment"},
			{Type: FieldString, XPath: "BREWER", PropertyName: "brewer"},
			{Type: FieldDouble, XPath: "BATCH_SIZE", PropertyName: "batchSize"},
			{Type: FieldDouble, XPath: "BOIL_SIZE", PropertyName: "boilSize"},
			{Type: FieldDouble, XPath: "BOIL_TIME", PropertyName: "boilTime"},
			{Type: FieldDouble, XPath: "EFFICIENCY", PropertyName: "efficiency"},
			{Type: FieldRecordComplex, XPath: "HOPS/HOP", PropertyName: "hops"},
			{Type: FieldRecordComplex, XPath: "FERMENTABLES/FERMENTABLE", PropertyName: "fermentables"},
			{Type: FieldRecordComplex, XPath: "MISCS/MISC", PropertyName: "miscs"},
			{Type: FieldRecordComplex, XPath: "YEASTS/YEAST", PropertyName: "yeasts"},
			{Type: FieldRecordComplex, XPath: "WATERS/WATER", PropertyName: "waters"},
			{Type: FieldRecordSimple, XPath: "MASH", PropertyName: "mash"},
			{Type: FieldInt, XPath: "FERMENTATION_STAGES", PropertyName: "fermentationStages"},
			{Type: FieldDate, XPath: "DATE", PropertyName: "date"},
			{Type: FieldString, XPath: "NOTES", PropertyName: "notes"},
		},
		Construct:     newRecipe,
		Equivalent:    recipeEquivalent,
		AttachChild:   recipeAttachChild,
		ChildEntities: recipeChildEntities,
		PropertyValue: recipeProperty,
	})

	c.Register(&RecordType{
		Tag:            "STYLE",
		ContainerTag:   "STYLES",
		Kind:           "Style",
		IncludeInStats: true,
		UniqueNames:    true,
		Fields: FieldDefinitions{
			{Type: FieldRequiredConstant, XPath: "VERSION", PropertyName: beerXMLVersion},
			{Type: FieldString, XPath: "NAME", PropertyName: "name", Required: true},
			{Type: FieldString, XPath: "CATEGORY", PropertyName: "category"},
			{Type: FieldString, XPath: "CATEGORY_NUMBER", PropertyName: "categoryNumber"},
			{Type: FieldString, XPath: "STYLE_LETTER", PropertyName: "styleLetter"},
			{Type: FieldString, XPath: "STYLE_GUIDE", PropertyName: "styleGuide"},
			{Type: FieldEnum, XPath: "TYPE", PropertyName: "type", EnumMap: styleTypeMap},
			{Type: FieldDouble, XPath: "OG_MIN", PropertyName: "ogMin"},
			{Type: FieldDouble, XPath: "OG_MAX", PropertyName: "ogMax"},
			{Type: FieldDouble, XPath: "FG_MIN", PropertyName: "fgMin"},
			{Type: FieldDouble, XPath: "FG_MAX", PropertyName: "fgMax"},
			{Type: FieldDouble, XPath: "IBU_MIN", PropertyName: "ibuMin"},
			{Type: FieldDouble, XPath: "IBU_MAX", PropertyName: "ibuMax"},
			{Type: FieldDouble, XPath: "COLOR_MIN", PropertyName: "colorMin"},
			{Type: FieldDouble, XPath: "COLOR_MAX", PropertyName: "colorMax"},
			{Type: FieldString, XPath: "NOTES", PropertyName: "notes"},
		},
		Construct:     newStyle,
		Equivalent:    styleEquivalent,
		PropertyValue: styleProperty,
	})

	c.Register(&RecordType{
		Tag:            "EQUIPMENT",
		ContainerTag:   "EQUIPMENTS",
		Kind:           "Equipment",
		IncludeInStats: true,
		UniqueNames:    true,
		Fields: FieldDefinitions{
			{Type: FieldRequiredConstant, XPath: "VERSION", PropertyName: beerXMLVersion},
			{Type: FieldString, XPath: "NAME", PropertyName: "name", Required: true},
			{Type: FieldDouble, XPath: "BOIL_SIZE", PropertyName: "boilSize"},
			{Type: FieldDouble, XPath: "BATCH_SIZE", PropertyName: "batchSize"},
			{Type: FieldDouble, XPath: "TUN_VOLUME", PropertyName: "tunVolume"},
			{Type: FieldDouble, XPath: "TUN_WEIGHT", PropertyName: "tunWeight"},
			{Type: FieldDouble, XPath: "EVAP_RATE", PropertyName: "evapRate"},
			{Type: FieldDouble, XPath: "BOIL_TIME", PropertyName: "boilTime"},
			{Type: FieldBool, XPath: "CALC_BOIL_VOLUME", PropertyName: "calcBoilVolume"},
			{Type: FieldString, XPath: "NOTES", PropertyName: "notes"},
		},
		Construct:     newEquipment,
		Equivalent:    equipmentEquivalent,
		PropertyValue: equipmentProperty,
	})

	c.Register(&RecordType{
		Tag:            "FERMENTABLE",
		ContainerTag:   "FERMENTABLES",
		Kind:           "Fermentable",
		IncludeInStats: true,
		UniqueNames:    true,
		Fields: FieldDefinitions{
			{Type: FieldRequiredConstant, XPath: "VERSION", PropertyName: beerXMLVersion},
			{Type: FieldString, XPath: "NAME", PropertyName: "name", Required: true},
			{Type: FieldEnum, XPath: "TYPE", PropertyName: "type", EnumMap: fermentableTypeMap},
			{Type: FieldDouble, XPath: "AMOUNT", PropertyName: "amount"},
			{Type: FieldDouble, XPath: "YIELD", PropertyName: "yield"},
			{Type: FieldDouble, XPath: "COLOR", PropertyName: "color"},
			{Type: FieldBool, XPath: "ADD_AFTER_BOIL", PropertyName: "addAfterBoil"},
			{Type: FieldString, XPath: "NOTES", PropertyName: "notes"},
		},
		Construct:     newFermentable,
		Equivalent:    fermentableEquivalent,
		PropertyValue: fermentableProperty,
	})

	c.Register(&RecordType{
		Tag:            "HOP",
		ContainerTag:   "HOPS",
		Kind:           "Hop",
		IncludeInStats: true,
		UniqueNames:    true,
		Fields: FieldDefinitions{
			{Type: FieldRequiredConstant, XPath: "VERSION", PropertyName: beerXMLVersion},
			{Type: FieldString, XPath: "NAME", PropertyName: "name", Required: true},
			{Type: FieldDouble, XPath: "ALPHA", PropertyName: "alpha"},
			{Type: FieldDouble, XPath: "AMOUNT", PropertyName: "amount"},
			{Type: FieldEnum, XPath: "USE", PropertyName: "use", EnumMap: hopUseMap},
			{Type: FieldDouble, XPath: "TIME", PropertyName: "time"},
			{Type: FieldEnum, XPath: "FORM", PropertyName: "form", EnumMap: hopFormMap},
			{Type: FieldDouble, XPath: "BETA", PropertyName: "beta"},
			{Type: FieldString, XPath: "NOTES", PropertyName: "notes"},
		},
		Construct:     newHop,
		Equivalent:    hopEquivalent,
		PropertyValue: hopProperty,
	})

	c.Register(&RecordType{
		Tag:            "MISC",
		ContainerTag:   "MISCS",
		Kind:           "Misc",
		IncludeInStats: true,
		UniqueNames:    true,
		Fields: FieldDefinitions{
			{Type: FieldRequiredConstant, XPath: "VERSION", PropertyName: beerXMLVersion},
			{Type: FieldString, XPath: "NAME", PropertyName: "name", Required: true},
			{Type: FieldEnum, XPath: "TYPE", PropertyName: "type", EnumMap: miscTypeMap},
			{Type: FieldEnum, XPath: "USE", PropertyName: "use", EnumMap: miscUseMap},
			{Type: FieldDouble, XPath: "TIME", PropertyName: "time"},
			{Type: FieldDouble, XPath: "AMOUNT", PropertyName: "amount"},
			{Type: FieldBool, XPath: "AMOUNT_IS_WEIGHT", PropertyName: "amountIsWeight"},
			{Type: FieldString, XPath: "NOTES", PropertyName: "notes"},
		},
		Construct:     newMisc,
		Equivalent:    miscEquivalent,
		PropertyValue: miscProperty,
	})

	c.Register(&RecordType{
		Tag:            "YEAST",
		ContainerTag:   "YEASTS",
		Kind:           "Yeast",
		IncludeInStats: true,
		UniqueNames:    true,
		Fields: FieldDefinitions{
			{Type: FieldRequiredConstant, XPath: "VERSION", PropertyName: beerXMLVersion},
			{Type: FieldString, XPath: "NAME", PropertyName: "name", Required: true},
			{Type: FieldEnum, XPath: "TYPE", PropertyName: "type", EnumMap: yeastTypeMap},
			{Type: FieldEnum, XPath: "FORM", PropertyName: "form", EnumMap: yeastFormMap},
			{Type: FieldDouble, XPath: "AMOUNT", PropertyName: "amount"},
			{Type: FieldBool, XPath: "AMOUNT_IS_WEIGHT", PropertyName: "amountIsWeight"},
			{Type: FieldString, XPath: "LABORATORY", PropertyName: "laboratory"},
			{Type: FieldString, XPath: "PRODUCT_ID", PropertyName: "productId"},
			{Type: FieldDouble, XPath: "ATTENUATION", PropertyName: "attenuation"},
			{Type: FieldUInt, XPath: "TIMES_CULTURED", PropertyName: "timesCultured"},
			{Type: FieldBool, XPath: "ADD_TO_SECONDARY", PropertyName: "addToSecondary"},
			{Type: FieldString, XPath: "NOTES", PropertyName: "notes"},
		},
		Construct:     newYeast,
		Equivalent:    yeastEquivalent,
		PropertyValue: yeastProperty,
	})

	c.Register(&RecordType{
		Tag:            "WATER",
		ContainerTag:   "WATERS",
		Kind:           "Water",
		IncludeInStats: true,
		UniqueNames:    true,
		Fields: FieldDefinitions{
			{Type: FieldRequiredConstant, XPath: "VERSION", PropertyName: beerXMLVersion},
			{Type: FieldString, XPath: "NAME", PropertyName: "name", Required: true},
			{Type: FieldDouble, XPath: "AMOUNT", PropertyName: "amount"},
			{Type: FieldDouble, XPath: "CALCIUM", PropertyName: "calcium"},
			{Type: FieldDouble, XPath: "BICARBONATE", PropertyName: "bicarbonate"},
			{Type: FieldDouble, XPath: "SULFATE", PropertyName: "sulfate"},
			{Type: FieldDouble, XPath: "CHLORIDE", PropertyName: "chloride"},
			{Type: FieldDouble, XPath: "SODIUM", PropertyName: "sodium"},
			{Type: FieldDouble, XPath: "MAGNESIUM", PropertyName: "magnesium"},
			{Type: FieldDouble, XPath: "PH", PropertyName: "ph"},
			{Type: FieldString, XPath: "NOTES", PropertyName: "notes"},
		},
		Construct:     newWater,
		Equivalent:    waterEquivalent,
		PropertyValue: waterProperty,
	})

	c.Register(&RecordType{
		Tag:            "MASH",
		ContainerTag:   "MASHS",
		Kind:           "Mash",
		IncludeInStats: true,
		UniqueNames:    true,
		Fields: FieldDefinitions{
			{Type: FieldRequiredConstant, XPath: "VERSION", PropertyName: beerXMLVersion},
			{Type: FieldString, XPath: "NAME", PropertyName: "name", Required: true},
			{Type: FieldDouble, XPath: "GRAIN_TEMP", PropertyName: "grainTemp"},
			{Type: FieldRecordComplex, XPath: "MASH_STEPS/MASH_STEP", PropertyName: "mashSteps"},
			{Type: FieldDouble, XPath: "TUN_TEMP", PropertyName: "tunTemp"},
			{Type: FieldDouble, XPath: "PH", PropertyName: "ph"},
			{Type: FieldString, XPath: "NOTES", PropertyName: "notes"},
		},
		Construct:     newMash,
		Equivalent:    mashEquivalent,
		AttachChild:   mashAttachChild,
		ChildEntities: mashChildEntities,
		PropertyValue: mashProperty,
	})

	// Mash steps only exist as parts of a mash: no duplicate detection, no
	// unique names, and the user is not told about them in the import stats
	c.Register(&RecordType{
		Tag:  "MASH_STEP",
		Kind: "MashStep",
		Fields: FieldDefinitions{
			{Type: FieldRequiredConstant, XPath: "VERSION", PropertyName: beerXMLVersion},
			{Type: FieldString, XPath: "NAME", PropertyName: "name", Required: true},
			{Type: FieldEnum, XPath: "TYPE", PropertyName: "type", EnumMap: mashStepTypeMap},
			{Type: FieldDouble, XPath: "INFUSE_AMOUNT", PropertyName: "infuseAmount"},
			{Type: FieldDouble, XPath: "STEP_TEMP", PropertyName: "stepTemp"},
			{Type: FieldDouble, XPath: "STEP_TIME", PropertyName: "stepTime"},
			{Type: FieldDouble, XPath: "RAMP_TIME", PropertyName: "rampTime"},
			{Type: FieldDouble, XPath: "END_TEMP", PropertyName: "endTemp"},
		},
		Construct:     newMashStep,
		SetContaining: mashStepSetContaining,
		PropertyValue: mashStepProperty,
	})

	// Top-level container records: one per plural wrapper tag, no entity of
	// their own
	containers := []struct {
		tag      string
		childTag string
	}{
		{"RECIPES", "RECIPE"},
		{"STYLES", "STYLE"},
		{"EQUIPMENTS", "EQUIPMENT"},
		{"FERMENTABLES", "FERMENTABLE"},
		{"HOPS", "HOP"},
		{"MISCS", "MISC"},
		{"YEASTS", "YEAST"},
		{"WATERS", "WATER"},
		{"MASHS", "MASH"},
	}
	for _, container := range containers {
		c.Register(&RecordType{
			Tag: container.tag,
			Fields: FieldDefinitions{
				{Type: FieldRecordComplex, XPath: container.childTag, PropertyName: "records"},
			},
		})
	}

	return c
}
