package engine

import (
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"

	"brewdex/src/helpers"
	"brewdex/src/models"
	"brewdex/src/settings"
	"brewdex/src/xmltree"
)

// ChildRecord is one nested record discovered under a parent, remembered
// together with the field that led us to it
type ChildRecord struct {
	Field  *FieldDefinition
	Record *RecordEngine
}

// RecordEngine reads one record of a document into a ParameterBundle plus a
// set of child records, then (in a separate phase) constructs the domain
// entity, resolves duplicates and name clashes, and commits it to the entity
// store. It also runs the same schema in reverse to export a stored entity
// back to XML.
//
// One engine instance handles one record instance; nested records get their
// own engines, owned by the parent.
type RecordEngine struct {
	coding     *Coding
	recordType *RecordType
	logger     *zap.SugaredLogger

	bundle       *ParameterBundle
	childRecords []ChildRecord

	// The entity constructed from the bundle. Owned by the engine until
	// Insert succeeds, after which the store's reference is authoritative
	// and this one is only used to let containing records attach to it.
	entity models.NamedEntity

	// Identifier assigned by the store, "" until stored. Stays "" for
	// duplicates, which are never inserted.
	storedID string
}

// Bundle exposes the parameter bundle read in from this record. Needed so
// one record's processing can inspect another's data.
func (e *RecordEngine) Bundle() *ParameterBundle {
	return e.bundle
}

// Entity returns the record's entity: nil for container records and failed
// constructions, the pre-existing stored entity after a duplicate was found
func (e *RecordEngine) Entity() models.NamedEntity {
	return e.entity
}

// ChildRecords exposes the nested records found during Load, in document
// order
func (e *RecordEngine) ChildRecords() []ChildRecord {
	return e.childRecords
}

// Load reads this record's data out of the document subtree rooted at root,
// including any records nested inside it. Error messages for the user are
// appended to userMessage. No entity is constructed here; a failed load
// never leaves a half-built domain object.
func (e *RecordEngine) Load(root *xmltree.Node, userMessage io.Writer) bool {
	for i := range e.recordType.Fields {
		field := &e.recordType.Fields[i]
		nodes := root.Query(field.XPath)

		switch field.Type {
		case FieldRecordSimple, FieldRecordComplex:
			if !e.loadChildRecords(field, nodes, userMessage) {
				return false
			}

		case FieldRequiredConstant:
			if len(nodes) == 0 {
				fmt.Fprintf(userMessage, "Required constant field %s missing from %s record\n",
					field.XPath, e.recordType.Tag)
				return false
			}
			actual := nodes[0].TrimmedText()
			if actual != field.PropertyName {
				fmt.Fprintf(userMessage, "Expected %s field of %s record to contain \"%s\" but found \"%s\"\n",
					field.XPath, e.recordType.Tag, field.PropertyName, actual)
				return false
			}

		default:
			if len(nodes) == 0 {
				if field.Required {
					fmt.Fprintf(userMessage, "Required field %s missing from %s record\n",
						field.XPath, e.recordType.Tag)
					return false
				}
				// Absent optional field: leave unset in the bundle
				continue
			}
			if !e.loadScalar(field, nodes[0], userMessage) {
				return false
			}
		}
	}

	if settings.GetSettings().Debug {
		e.logger.Debugf("loaded %s record: %s", e.recordType.Tag, e.bundle.Dump())
	}
	return true
}

// loadScalar parses one scalar field's text per its declared type and puts
// the value in the bundle
func (e *RecordEngine) loadScalar(field *FieldDefinition, node *xmltree.Node, userMessage io.Writer) bool {
	text := node.TrimmedText()

	switch field.Type {
	case FieldBool:
		b, ok := helpers.ParseXMLBool(text)
		if !ok {
			fmt.Fprintf(userMessage, "Could not parse \"%s\" as TRUE/FALSE for %s field of %s record\n",
				text, field.XPath, e.recordType.Tag)
			return false
		}
		e.bundle.Set(field.PropertyName, cty.BoolVal(b))

	case FieldInt:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			fmt.Fprintf(userMessage, "Could not parse \"%s\" as integer for %s field of %s record\n",
				text, field.XPath, e.recordType.Tag)
			return false
		}
		e.bundle.Set(field.PropertyName, cty.NumberIntVal(i))

	case FieldUInt:
		u, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			fmt.Fprintf(userMessage, "Could not parse \"%s\" as unsigned integer for %s field of %s record\n",
				text, field.XPath, e.recordType.Tag)
			return false
		}
		e.bundle.Set(field.PropertyName, cty.NumberUIntVal(u))

	case FieldDouble:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			fmt.Fprintf(userMessage, "Could not parse \"%s\" as decimal number for %s field of %s record\n",
				text, field.XPath, e.recordType.Tag)
			return false
		}
		e.bundle.Set(field.PropertyName, cty.NumberFloatVal(f))

	case FieldString:
		e.bundle.Set(field.PropertyName, cty.StringVal(text))

	case FieldDate:
		t, err := parseDate(text)
		if err != nil {
			fmt.Fprintf(userMessage, "Could not parse \"%s\" as date for %s field of %s record\n",
				text, field.XPath, e.recordType.Tag)
			return false
		}
		e.bundle.Set(field.PropertyName, cty.StringVal(t.Format(DateFormat)))

	case FieldEnum:
		native, ok := field.EnumMap.Native(text)
		if !ok {
			fmt.Fprintf(userMessage, "Unknown value \"%s\" for %s field of %s record (valid values are: %s)\n",
				text, field.XPath, e.recordType.Tag, field.EnumMap.XMLTokens())
			return false
		}
		e.bundle.Set(field.PropertyName, cty.StringVal(native))
	}

	return true
}

// loadChildRecords resolves the nested record type for each matching node
// from the node's own tag and recursively loads it. The algorithm is fully
// generic; which nested records a type has is data in its field schema.
func (e *RecordEngine) loadChildRecords(field *FieldDefinition, nodes []*xmltree.Node, userMessage io.Writer) bool {
	for _, node := range nodes {
		childType, ok := e.coding.Lookup(node.Tag)
		if !ok {
			// A tag we have no record type for is simply not traversed
			e.logger.Debugf("skipping unrecognized tag %s inside %s record", node.Tag, e.recordType.Tag)
			continue
		}

		if field.Type == FieldRecordSimple && e.countChildrenOf(field) > 0 {
			fmt.Fprintf(userMessage, "Found more than one %s record inside %s record where at most one is allowed\n",
				node.Tag, e.recordType.Tag)
			return false
		}

		child := e.coding.NewRecordFor(childType)
		if !child.Load(node, userMessage) {
			// Propagate the nested diagnostics unchanged so the user keeps
			// the line-level context
			return false
		}
		e.childRecords = append(e.childRecords, ChildRecord{Field: field, Record: child})
	}
	return true
}

func (e *RecordEngine) countChildrenOf(field *FieldDefinition) int {
	count := 0
	for _, c := range e.childRecords {
		if c.Field == field {
			count++
		}
	}
	return count
}

var clashingNameSuffix = regexp.MustCompile(` \((\d+)\)$`)

// ModifyClashingName proposes an alternative for a name that clashes with an
// existing one. "Oatmeal Stout" becomes "Oatmeal Stout (1)"; if that clashes
// too, the next call turns it into "Oatmeal Stout (2)" and never
// "Oatmeal Stout (1) (1)". Callers repeat until a free name is found.
func ModifyClashingName(candidateName string) string {
	if m := clashingNameSuffix.FindStringSubmatch(candidateName); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			base := clashingNameSuffix.ReplaceAllString(candidateName, "")
			return fmt.Sprintf("%s (%d)", base, n+1)
		}
	}
	return candidateName + " (1)"
}
