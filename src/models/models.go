package models

import "time"

// NamedEntity is the lifecycle contract every stored domain object satisfies.
// The record engine constructs entities generically from parsed field data and
// only ever talks to them through this interface; the concrete fields belong
// to each entity type.
type NamedEntity interface {
	// GetID returns the store-assigned identifier, or "" before storage
	GetID() string
	SetID(id string)

	GetName() string
	SetName(name string)

	// Kind returns the entity type name, eg "Hop" or "Recipe"
	Kind() string
}

// Base carries the fields shared by every named entity
type Base struct {
	ID   string `bson:"id"`
	Name string `bson:"name"`
}

func (b *Base) GetID() string       { return b.ID }
func (b *Base) SetID(id string)     { b.ID = id }
func (b *Base) GetName() string     { return b.Name }
func (b *Base) SetName(name string) { b.Name = name }

// Recipe type values
const (
	RecipeTypeExtract     = "Extract"
	RecipeTypePartialMash = "Partial Mash"
	RecipeTypeAllGrain    = "All Grain"
)

type Recipe struct {
	Base `bson:",inline"`

	Type               string    `bson:"type"`
	Brewer             string    `bson:"brewer"`
	BatchSizeL         float64   `bson:"batch_size_l"`
	BoilSizeL          float64   `bson:"boil_size_l"`
	BoilTimeMin        float64   `bson:"boil_time_min"`
	EfficiencyPct      float64   `bson:"efficiency_pct"`
	FermentationStages int       `bson:"fermentation_stages"`
	Date               time.Time `bson:"date"`
	Notes              string    `bson:"notes"`

	// Contained records, populated as child records are stored
	Style        *Style         `bson:"style,omitempty"`
	Equipment    *Equipment     `bson:"equipment,omitempty"`
	Mash         *Mash          `bson:"mash,omitempty"`
	Hops         []*Hop         `bson:"hops,omitempty"`
	Fermentables []*Fermentable `bson:"fermentables,omitempty"`
	Miscs        []*Misc        `bson:"miscs,omitempty"`
	Yeasts       []*Yeast       `bson:"yeasts,omitempty"`
	Waters       []*Water       `bson:"waters,omitempty"`
}

func (r *Recipe) Kind() string { return "Recipe" }

// Style type values
const (
	StyleTypeLager = "Lager"
	StyleTypeAle   = "Ale"
	StyleTypeMead  = "Mead"
	StyleTypeWheat = "Wheat"
	StyleTypeMixed = "Mixed"
	StyleTypeCider = "Cider"
)

type Style struct {
	Base `bson:",inline"`

	Category       string  `bson:"category"`
	CategoryNumber string  `bson:"category_number"`
	StyleLetter    string  `bson:"style_letter"`
	StyleGuide     string  `bson:"style_guide"`
	Type           string  `bson:"type"`
	OgMin          float64 `bson:"og_min"`
	OgMax          float64 `bson:"og_max"`
	FgMin          float64 `bson:"fg_min"`
	FgMax          float64 `bson:"fg_max"`
	IbuMin         float64 `bson:"ibu_min"`
	IbuMax         float64 `bson:"ibu_max"`
	ColorMin       float64 `bson:"color_min"`
	ColorMax       float64 `bson:"color_max"`
	Notes          string  `bson:"notes"`
}

func (s *Style) Kind() string { return "Style" }

type Equipment struct {
	Base `bson:",inline"`

	BoilSizeL      float64 `bson:"boil_size_l"`
	BatchSizeL     float64 `bson:"batch_size_l"`
	TunVolumeL     float64 `bson:"tun_volume_l"`
	TunWeightKg    float64 `bson:"tun_weight_kg"`
	EvapRate       float64 `bson:"evap_rate"`
	BoilTimeMin    float64 `bson:"boil_time_min"`
	CalcBoilVolume bool    `bson:"calc_boil_volume"`
	Notes          string  `bson:"notes"`
}

func (e *Equipment) Kind() string { return "Equipment" }

// Fermentable type values
const (
	FermentableTypeGrain      = "Grain"
	FermentableTypeSugar      = "Sugar"
	FermentableTypeExtract    = "Extract"
	FermentableTypeDryExtract = "Dry Extract"
	FermentableTypeAdjunct    = "Adjunct"
)

type Fermentable struct {
	Base `bson:",inline"`

	Type         string  `bson:"type"`
	AmountKg     float64 `bson:"amount_kg"`
	YieldPct     float64 `bson:"yield_pct"`
	ColorSrm     float64 `bson:"color_srm"`
	AddAfterBoil bool    `bson:"add_after_boil"`
	Notes        string  `bson:"notes"`
}

func (f *Fermentable) Kind() string { return "Fermentable" }

// Hop use values
const (
	HopUseBoil      = "Boil"
	HopUseDryHop    = "Dry Hop"
	HopUseMash      = "Mash"
	HopUseFirstWort = "First Wort"
	HopUseAroma     = "Aroma"
)

// Hop form values
const (
	HopFormPellet = "Pellet"
	HopFormPlug   = "Plug"
	HopFormLeaf   = "Leaf"
)

type Hop struct {
	Base `bson:",inline"`

	AlphaPct float64 `bson:"alpha_pct"`
	BetaPct  float64 `bson:"beta_pct"`
	AmountKg float64 `bson:"amount_kg"`
	Use      string  `bson:"use"`
	TimeMin  float64 `bson:"time_min"`
	Form     string  `bson:"form"`
	Notes    string  `bson:"notes"`
}

func (h *Hop) Kind() string { return "Hop" }

// Misc type values
const (
	MiscTypeSpice      = "Spice"
	MiscTypeFining     = "Fining"
	MiscTypeWaterAgent = "Water Agent"
	MiscTypeHerb       = "Herb"
	MiscTypeFlavor     = "Flavor"
	MiscTypeOther      = "Other"
)

// Misc use values
const (
	MiscUseBoil      = "Boil"
	MiscUseMash      = "Mash"
	MiscUsePrimary   = "Primary"
	MiscUseSecondary = "Secondary"
	MiscUseBottling  = "Bottling"
)

type Misc struct {
	Base `bson:",inline"`

	Type           string  `bson:"type"`
	Use            string  `bson:"use"`
	TimeMin        float64 `bson:"time_min"`
	Amount         float64 `bson:"amount"`
	AmountIsWeight bool    `bson:"amount_is_weight"`
	Notes          string  `bson:"notes"`
}

func (m *Misc) Kind() string { return "Misc" }

// Yeast type values
const (
	YeastTypeAle       = "Ale"
	YeastTypeLager     = "Lager"
	YeastTypeWheat     = "Wheat"
	YeastTypeWine      = "Wine"
	YeastTypeChampagne = "Champagne"
)

// Yeast form values
const (
	YeastFormLiquid  = "Liquid"
	YeastFormDry     = "Dry"
	YeastFormSlant   = "Slant"
	YeastFormCulture = "Culture"
)

type Yeast struct {
	Base `bson:",inline"`

	Type           string  `bson:"type"`
	Form           string  `bson:"form"`
	Amount         float64 `bson:"amount"`
	AmountIsWeight bool    `bson:"amount_is_weight"`
	Laboratory     string  `bson:"laboratory"`
	ProductID      string  `bson:"product_id"`
	AttenuationPct float64 `bson:"attenuation_pct"`
	TimesCultured  uint    `bson:"times_cultured"`
	AddToSecondary bool    `bson:"add_to_secondary"`
	Notes          string  `bson:"notes"`
}

func (y *Yeast) Kind() string { return "Yeast" }

type Water struct {
	Base `bson:",inline"`

	AmountL      float64 `bson:"amount_l"`
	CalciumPpm   float64 `bson:"calcium_ppm"`
	BicarbPpm    float64 `bson:"bicarbonate_ppm"`
	SulfatePpm   float64 `bson:"sulfate_ppm"`
	ChloridePpm  float64 `bson:"chloride_ppm"`
	SodiumPpm    float64 `bson:"sodium_ppm"`
	MagnesiumPpm float64 `bson:"magnesium_ppm"`
	PH           float64 `bson:"ph"`
	Notes        string  `bson:"notes"`
}

func (w *Water) Kind() string { return "Water" }

type Mash struct {
	Base `bson:",inline"`

	GrainTempC float64 `bson:"grain_temp_c"`
	TunTempC   float64 `bson:"tun_temp_c"`
	PH         float64 `bson:"ph"`
	Notes      string  `bson:"notes"`

	MashSteps []*MashStep `bson:"mash_steps,omitempty"`
}

func (m *Mash) Kind() string { return "Mash" }

// Mash step type values
const (
	MashStepTypeInfusion    = "Infusion"
	MashStepTypeTemperature = "Temperature"
	MashStepTypeDecoction   = "Decoction"
)

type MashStep struct {
	Base `bson:",inline"`

	Type          string  `bson:"type"`
	InfuseAmountL float64 `bson:"infuse_amount_l"`
	StepTempC     float64 `bson:"step_temp_c"`
	StepTimeMin   float64 `bson:"step_time_min"`
	RampTimeMin   float64 `bson:"ramp_time_min"`
	EndTempC      float64 `bson:"end_temp_c"`

	// Identifier of the containing mash, set before storage
	MashID string `bson:"mash_id"`
}

func (s *MashStep) Kind() string { return "MashStep" }
