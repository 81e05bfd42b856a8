package engine

import (
	"fmt"

	"brewdex/src/models"
)

// Construct, duplicate-equivalence, containment and property-access hooks
// for the BeerXML record types. These are the only places that know the
// concrete entity types; the traversal in RecordEngine stays generic.

func requireName(b *ParameterBundle, kind string) (string, error) {
	name, ok := b.String("name")
	if !ok || name == "" {
		return "", fmt.Errorf("%s record has no name", kind)
	}
	return name, nil
}

// --- Recipe ---

func newRecipe(b *ParameterBundle) (models.NamedEntity, error) {
	name, err := requireName(b, "recipe")
	if err != nil {
		return nil, err
	}
	r := &models.Recipe{}
	r.Name = name
	r.Type = models.RecipeTypeAllGrain
	if v, ok := b.String("type"); ok {
		r.Type = v
	}
	if v, ok := b.String("brewer"); ok {
		r.Brewer = v
	}
	if v, ok := b.Float("batchSize"); ok {
		r.BatchSizeL = v
	}
	if v, ok := b.Float("boilSize"); ok {
		r.BoilSizeL = v
	}
	if v, ok := b.Float("boilTime"); ok {
		r.BoilTimeMin = v
	}
	if v, ok := b.Float("efficiency"); ok {
		r.EfficiencyPct = v
	}
	if v, ok := b.Int("fermentationStages"); ok {
		r.FermentationStages = v
	}
	if v, ok := b.Time("date"); ok {
		r.Date = v
	}
	if v, ok := b.String("notes"); ok {
		r.Notes = v
	}
	return r, nil
}

func recipeEquivalent(candidate, existing models.NamedEntity) bool {
	a := candidate.(*models.Recipe)
	b := existing.(*models.Recipe)
	return a.Name == b.Name &&
		a.Brewer == b.Brewer &&
		a.Type == b.Type &&
		a.BatchSizeL == b.BatchSizeL
}

func recipeAttachChild(parent, child models.NamedEntity) {
	r := parent.(*models.Recipe)
	switch c := child.(type) {
	case *models.Style:
		r.Style = c
	case *models.Equipment:
		r.Equipment = c
	case *models.Mash:
		r.Mash = c
	case *models.Hop:
		r.Hops = append(r.Hops, c)
	case *models.Fermentable:
		r.Fermentables = append(r.Fermentables, c)
	case *models.Misc:
		r.Miscs = append(r.Miscs, c)
	case *models.Yeast:
		r.Yeasts = append(r.Yeasts, c)
	case *models.Water:
		r.Waters = append(r.Waters, c)
	}
}

func recipeChildEntities(entity models.NamedEntity, field *FieldDefinition) []models.NamedEntity {
	r := entity.(*models.Recipe)
	var children []models.NamedEntity
	switch field.PropertyName {
	case "style":
		if r.Style != nil {
			children = append(children, r.Style)
		}
	case "equipment":
		if r.Equipment != nil {
			children = append(children, r.Equipment)
		}
	case "mash":
		if r.Mash != nil {
			children = append(children, r.Mash)
		}
	case "hops":
		for _, h := range r.Hops {
			children = append(children, h)
		}
	case "fermentables":
		for _, f := range r.Fermentables {
			children = append(children, f)
		}
	case "miscs":
		for _, m := range r.Miscs {
			children = append(children, m)
		}
	case "yeasts":
		for _, y := range r.Yeasts {
			children = append(children, y)
		}
	case "waters":
		for _, w := range r.Waters {
			children = append(children, w)
		}
	}
	return children
}

func recipeProperty(entity models.NamedEntity, property string) (any, bool) {
	r := entity.(*models.Recipe)
	switch property {
	case "name":
		return r.Name, true
	case "type":
		return r.Type, true
	case "brewer":
		return r.Brewer, r.Brewer != ""
	case "batchSize":
		return r.BatchSizeL, true
	case "boilSize":
		return r.BoilSizeL, true
	case "boilTime":
		return r.BoilTimeMin, true
	case "efficiency":
		return r.EfficiencyPct, true
	case "fermentationStages":
		return r.FermentationStages, r.FermentationStages != 0
	case "date":
		return r.Date, !r.Date.IsZero()
	case "notes":
		return r.Notes, r.Notes != ""
	}
	return nil, false
}

// --- Style ---

func newStyle(b *ParameterBundle) (models.NamedEntity, error) {
	name, err := requireName(b, "style")
	if err != nil {
		return nil, err
	}
	s := &models.Style{}
	s.Name = name
	s.Type = models.StyleTypeAle
	if v, ok := b.String("type"); ok {
		s.Type = v
	}
	if v, ok := b.String("category"); ok {
		s.Category = v
	}
	if v, ok := b.String("categoryNumber"); ok {
		s.CategoryNumber = v
	}
	if v, ok := b.String("styleLetter"); ok {
		s.StyleLetter = v
	}
	if v, ok := b.String("styleGuide"); ok {
		s.StyleGuide = v
	}
	if v, ok := b.Float("ogMin"); ok {
		s.OgMin = v
	}
	if v, ok := b.Float("ogMax"); ok {
		s.OgMax = v
	}
	if v, ok := b.Float("fgMin"); ok {
		s.FgMin = v
	}
	if v, ok := b.Float("fgMax"); ok {
		s.FgMax = v
	}
	if v, ok := b.Float("ibuMin"); ok {
		s.IbuMin = v
	}
	if v, ok := b.Float("ibuMax"); ok {
		s.IbuMax = v
	}
	if v, ok := b.Float("colorMin"); ok {
		s.ColorMin = v
	}
	if v, ok := b.Float("colorMax"); ok {
		s.ColorMax = v
	}
	if v, ok := b.String("notes"); ok {
		s.Notes = v
	}
	return s, nil
}

func styleEquivalent(candidate, existing models.NamedEntity) bool {
	a := candidate.(*models.Style)
	b := existing.(*models.Style)
	return a.Name == b.Name &&
		a.Category == b.Category &&
		a.StyleLetter == b.StyleLetter &&
		a.StyleGuide == b.StyleGuide
}

func styleProperty(entity models.NamedEntity, property string) (any, bool) {
	s := entity.(*models.Style)
	switch property {
	case "name":
		return s.Name, true
	case "category":
		return s.Category, s.Category != ""
	case "categoryNumber":
		return s.CategoryNumber, s.CategoryNumber != ""
	case "styleLetter":
		return s.StyleLetter, s.StyleLetter != ""
	case "styleGuide":
		return s.StyleGuide, s.StyleGuide != ""
	case "type":
		return s.Type, true
	case "ogMin":
		return s.OgMin, true
	case "ogMax":
		return s.OgMax, true
	case "fgMin":
		return s.FgMin, true
	case "fgMax":
		return s.FgMax, true
	case "ibuMin":
		return s.IbuMin, true
	case "ibuMax":
		return s.IbuMax, true
	case "colorMin":
		return s.ColorMin, true
	case "colorMax":
		return s.ColorMax, true
	case "notes":
		return s.Notes, s.Notes != ""
	}
	return nil, false
}

// --- Equipment ---

func newEquipment(b *ParameterBundle) (models.NamedEntity, error) {
	name, err := requireName(b, "equipment")
	if err != nil {
		return nil, err
	}
	e := &models.Equipment{}
	e.Name = name
	if v, ok := b.Float("boilSize"); ok {
		e.BoilSizeL = v
	}
	if v, ok := b.Float("batchSize"); ok {
		e.BatchSizeL = v
	}
	if v, ok := b.Float("tunVolume"); ok {
		e.TunVolumeL = v
	}
	if v, ok := b.Float("tunWeight"); ok {
		e.TunWeightKg = v
	}
	if v, ok := b.Float("evapRate"); ok {
		e.EvapRate = v
	}
	if v, ok := b.Float("boilTime"); ok {
		e.BoilTimeMin = v
	}
	if v, ok := b.Bool("calcBoilVolume"); ok {
		e.CalcBoilVolume = v
	}
	if v, ok := b.String("notes"); ok {
		e.Notes = v
	}
	return e, nil
}

func equipmentEquivalent(candidate, existing models.NamedEntity) bool {
	a := candidate.(*models.Equipment)
	b := existing.(*models.Equipment)
	return a.Name == b.Name &&
		a.BoilSizeL == b.BoilSizeL &&
		a.BatchSizeL == b.BatchSizeL
}

func equipmentProperty(entity models.NamedEntity, property string) (any, bool) {
	e := entity.(*models.Equipment)
	switch property {
	case "name":
		return e.Name, true
	case "boilSize":
		return e.BoilSizeL, true
	case "batchSize":
		return e.BatchSizeL, true
	case "tunVolume":
		return e.TunVolumeL, true
	case "tunWeight":
		return e.TunWeightKg, true
	case "evapRate":
		return e.EvapRate, true
	case "boilTime":
		return e.BoilTimeMin, true
	case "calcBoilVolume":
		return e.CalcBoilVolume, true
	case "notes":
		return e.Notes, e.Notes != ""
	}
	return nil, false
}

// --- Fermentable ---

func newFermentable(b *ParameterBundle) (models.NamedEntity, error) {
	name, err := requireName(b, "fermentable")
	if err != nil {
		return nil, err
	}
	f := &models.Fermentable{}
	f.Name = name
	f.Type = models.FermentableTypeGrain
	if v, ok := b.String("type"); ok {
		f.Type = v
	}
	if v, ok := b.Float("amount"); ok {
		f.AmountKg = v
	}
	if v, ok := b.Float("yield"); ok {
		f.YieldPct = v
	}
	if v, ok := b.Float("color"); ok {
		f.ColorSrm = v
	}
	if v, ok := b.Bool("addAfterBoil"); ok {
		f.AddAfterBoil = v
	}
	if v, ok := b.String("notes"); ok {
		f.Notes = v
	}
	return f, nil
}

func fermentableEquivalent(candidate, existing models.NamedEntity) bool {
	a := candidate.(*models.Fermentable)
	b := existing.(*models.Fermentable)
	return a.Name == b.Name &&
		a.Type == b.Type &&
		a.YieldPct == b.YieldPct &&
		a.ColorSrm == b.ColorSrm
}

func fermentableProperty(entity models.NamedEntity, property string) (any, bool) {
	f := entity.(*models.Fermentable)
	switch property {
	case "name":
		return f.Name, true
	case "type":
		return f.Type, true
	case "amount":
		return f.AmountKg, true
	case "yield":
		return f.YieldPct, true
	case "color":
		return f.ColorSrm, true
	case "addAfterBoil":
		return f.AddAfterBoil, true
	case "notes":
		return f.Notes, f.Notes != ""
	}
	return nil, false
}

// --- Hop ---

func newHop(b *ParameterBundle) (models.NamedEntity, error) {
	name, err := requireName(b, "hop")
	if err != nil {
		return nil, err
	}
	h := &models.Hop{}
	h.Name = name
	h.Use = models.HopUseBoil
	h.Form = models.HopFormPellet
	if v, ok := b.Float("alpha"); ok {
		h.AlphaPct = v
	}
	if v, ok := b.Float("beta"); ok {
		h.BetaPct = v
	}
	if v, ok := b.Float("amount"); ok {
		h.AmountKg = v
	}
	if v, ok := b.String("use"); ok {
		h.Use = v
	}
	if v, ok := b.Float("time"); ok {
		h.TimeMin = v
	}
	if v, ok := b.String("form"); ok {
		h.Form = v
	}
	if v, ok := b.String("notes"); ok {
		h.Notes = v
	}
	return h, nil
}

func hopEquivalent(candidate, existing models.NamedEntity) bool {
	a := candidate.(*models.Hop)
	b := existing.(*models.Hop)
	return a.Name == b.Name &&
		a.AlphaPct == b.AlphaPct &&
		a.Use == b.Use &&
		a.Form == b.Form
}

func hopProperty(entity models.NamedEntity, property string) (any, bool) {
	h := entity.(*models.Hop)
	switch property {
	case "name":
		return h.Name, true
	case "alpha":
		return h.AlphaPct, true
	case "amount":
		return h.AmountKg, true
	case "use":
		return h.Use, true
	case "time":
		return h.TimeMin, true
	case "form":
		return h.Form, true
	case "beta":
		return h.BetaPct, true
	case "notes":
		return h.Notes, h.Notes != ""
	}
	return nil, false
}

// --- Misc ---

func newMisc(b *ParameterBundle) (models.NamedEntity, error) {
	name, err := requireName(b, "misc")
	if err != nil {
		return nil, err
	}
	m := &models.Misc{}
	m.Name = name
	m.Type = models.MiscTypeOther
	m.Use = models.MiscUseBoil
	if v, ok := b.String("type"); ok {
		m.Type = v
	}
	if v, ok := b.String("use"); ok {
		m.Use = v
	}
	if v, ok := b.Float("time"); ok {
		m.TimeMin = v
	}
	if v, ok := b.Float("amount"); ok {
		m.Amount = v
	}
	if v, ok := b.Bool("amountIsWeight"); ok {
		m.AmountIsWeight = v
	}
	if v, ok := b.String("notes"); ok {
		m.Notes = v
	}
	return m, nil
}

func miscEquivalent(candidate, existing models.NamedEntity) bool {
	a := candidate.(*models.Misc)
	b := existing.(*models.Misc)
	return a.Name == b.Name &&
		a.Type == b.Type &&
		a.Use == b.Use
}

func miscProperty(entity models.NamedEntity, property string) (any, bool) {
	m := entity.(*models.Misc)
	switch property {
	case "name":
		return m.Name, true
	case "type":
		return m.Type, true
	case "use":
		return m.Use, true
	case "time":
		return m.TimeMin, true
	case "amount":
		return m.Amount, true
	case "amountIsWeight":
		return m.AmountIsWeight, true
	case "notes":
		return m.Notes, m.Notes != ""
	}
	return nil, false
}

// --- Yeast ---

func newYeast(b *ParameterBundle) (models.NamedEntity, error) {
	name, err := requireName(b, "yeast")
	if err != nil {
		return nil, err
	}
	y := &models.Yeast{}
	y.Name = name
	y.Type = models.YeastTypeAle
	y.Form = models.YeastFormLiquid
	if v, ok := b.String("type"); ok {
		y.Type = v
	}
	if v, ok := b.String("form"); ok {
		y.Form = v
	}
	if v, ok := b.Float("amount"); ok {
		y.Amount = v
	}
	if v, ok := b.Bool("amountIsWeight"); ok {
		y.AmountIsWeight = v
	}
	if v, ok := b.String("laboratory"); ok {
		y.Laboratory = v
	}
	if v, ok := b.String("productId"); ok {
		y.ProductID = v
	}
	if v, ok := b.Float("attenuation"); ok {
		y.AttenuationPct = v
	}
	if v, ok := b.Uint("timesCultured"); ok {
		y.TimesCultured = v
	}
	if v, ok := b.Bool("addToSecondary"); ok {
		y.AddToSecondary = v
	}
	if v, ok := b.String("notes"); ok {
		y.Notes = v
	}
	return y, nil
}

func yeastEquivalent(candidate, existing models.NamedEntity) bool {
	a := candidate.(*models.Yeast)
	b := existing.(*models.Yeast)
	return a.Name == b.Name &&
		a.Laboratory == b.Laboratory &&
		a.ProductID == b.ProductID
}

func yeastProperty(entity models.NamedEntity, property string) (any, bool) {
	y := entity.(*models.Yeast)
	switch property {
	case "name":
		return y.Name, true
	case "type":
		return y.Type, true
	case "form":
		return y.Form, true
	case "amount":
		return y.Amount, true
	case "amountIsWeight":
		return y.AmountIsWeight, true
	case "laboratory":
		return y.Laboratory, y.Laboratory != ""
	case "productId":
		return y.ProductID, y.ProductID != ""
	case "attenuation":
		return y.AttenuationPct, true
	case "timesCultured":
		return y.TimesCultured, y.TimesCultured != 0
	case "addToSecondary":
		return y.AddToSecondary, true
	case "notes":
		return y.Notes, y.Notes != ""
	}
	return nil, false
}

// --- Water ---

func newWater(b *ParameterBundle) (models.NamedEntity, error) {
	name, err := requireName(b, "water")
	if err != nil {
		return nil, err
	}
	w := &models.Water{}
	w.Name = name
	if v, ok := b.Float("amount"); ok {
		w.AmountL = v
	}
	if v, ok := b.Float("calcium"); ok {
		w.CalciumPpm = v
	}
	if v, ok := b.Float("bicarbonate"); ok {
		w.BicarbPpm = v
	}
	if v, ok := b.Float("sulfate"); ok {
		w.SulfatePpm = v
	}
	if v, ok := b.Float("chloride"); ok {
		w.ChloridePpm = v
	}
	if v, ok := b.Float("sodium"); ok {
		w.SodiumPpm = v
	}
	if v, ok := b.Float("magnesium"); ok {
		w.MagnesiumPpm = v
	}
	if v, ok := b.Float("ph"); ok {
		w.PH = v
	}
	if v, ok := b.String("notes"); ok {
		w.Notes = v
	}
	return w, nil
}

func waterEquivalent(candidate, existing models.NamedEntity) bool {
	a := candidate.(*models.Water)
	b := existing.(*models.Water)
	return a.Name == b.Name && a.PH == b.PH
}

func waterProperty(entity models.NamedEntity, property string) (any, bool) {
	w := entity.(*models.Water)
	switch property {
	case "name":
		return w.Name, true
	case "amount":
		return w.AmountL, true
	case "calcium":
		return w.CalciumPpm, true
	case "bicarbonate":
		return w.BicarbPpm, true
	case "sulfate":
		return w.SulfatePpm, true
	case "chloride":
		return w.ChloridePpm, true
	case "sodium":
		return w.SodiumPpm, true
	case "magnesium":
		return w.MagnesiumPpm, true
	case "ph":
		return w.PH, true
	case "notes":
		return w.Notes, w.Notes != ""
	}
	return nil, false
}

// --- Mash ---

func newMash(b *ParameterBundle) (models.NamedEntity, error) {
	name, err := requireName(b, "mash")
	if err != nil {
		return nil, err
	}
	m := &models.Mash{}
	m.Name = name
	if v, ok := b.Float("grainTemp"); ok {
		m.GrainTempC = v
	}
	if v, ok := b.Float("tunTemp"); ok {
		m.TunTempC = v
	}
	if v, ok := b.Float("ph"); ok {
		m.PH = v
	}
	if v, ok := b.String("notes"); ok {
		m.Notes = v
	}
	return m, nil
}

func mashEquivalent(candidate, existing models.NamedEntity) bool {
	a := candidate.(*models.Mash)
	b := existing.(*models.Mash)
	return a.Name == b.Name && a.GrainTempC == b.GrainTempC
}

func mashAttachChild(parent, child models.NamedEntity) {
	m := parent.(*models.Mash)
	if step, ok := child.(*models.MashStep); ok {
		m.MashSteps = append(m.MashSteps, step)
	}
}

func mashChildEntities(entity models.NamedEntity, field *FieldDefinition) []models.NamedEntity {
	m := entity.(*models.Mash)
	var children []models.NamedEntity
	if field.PropertyName == "mashSteps" {
		for _, step := range m.MashSteps {
			children = append(children, step)
		}
	}
	return children
}

func mashProperty(entity models.NamedEntity, property string) (any, bool) {
	m := entity.(*models.Mash)
	switch property {
	case "name":
		return m.Name, true
	case "grainTemp":
		return m.GrainTempC, true
	case "tunTemp":
		return m.TunTempC, true
	case "ph":
		return m.PH, true
	case "notes":
		return m.Notes, m.Notes != ""
	}
	return nil, false
}

// --- MashStep ---

func newMashStep(b *ParameterBundle) (models.NamedEntity, error) {
	name, err := requireName(b, "mash step")
	if err != nil {
		return nil, err
	}
	s := &models.MashStep{}
	s.Name = name
	s.Type = models.MashStepTypeInfusion
	if v, ok := b.String("type"); ok {
		s.Type = v
	}
	if v, ok := b.Float("infuseAmount"); ok {
		s.InfuseAmountL = v
	}
	if v, ok := b.Float("stepTemp"); ok {
		s.StepTempC = v
	}
	if v, ok := b.Float("stepTime"); ok {
		s.StepTimeMin = v
	}
	if v, ok := b.Float("rampTime"); ok {
		s.RampTimeMin = v
	}
	if v, ok := b.Float("endTemp"); ok {
		s.EndTempC = v
	}
	return s, nil
}

func mashStepSetContaining(entity, containing models.NamedEntity) {
	step := entity.(*models.MashStep)
	if mash, ok := containing.(*models.Mash); ok {
		step.MashID = mash.GetID()
	}
}

func mashStepProperty(entity models.NamedEntity, property string) (any, bool) {
	s := entity.(*models.MashStep)
	switch property {
	case "name":
		return s.Name, true
	case "type":
		return s.Type, true
	case "infuseAmount":
		return s.InfuseAmountL, true
	case "stepTemp":
		return s.StepTempC, true
	case "stepTime":
		return s.StepTimeMin, true
	case "rampTime":
		return s.RampTimeMin, true
	case "endTemp":
		return s.EndTempC, true
	}
	return nil, false
}
