package engine

// FieldType enumerates the kinds of fields the record engine knows how to
// read from and write to a document
type FieldType int

const (
	FieldBool FieldType = iota
	FieldInt
	FieldUInt
	FieldDouble
	FieldString
	FieldDate
	// A string that we need to map to/from our own internal value
	FieldEnum
	// A fixed value we have to find and write out in the record (used for
	// the BeerXML VERSION tag)
	FieldRequiredConstant
	// Single contained record
	FieldRecordSimple
	// Zero, one or more contained records
	FieldRecordComplex
)

func (t FieldType) String() string {
	switch t {
	case FieldBool:
		return "Bool"
	case FieldInt:
		return "Int"
	case FieldUInt:
		return "UInt"
	case FieldDouble:
		return "Double"
	case FieldString:
		return "String"
	case FieldDate:
		return "Date"
	case FieldEnum:
		return "Enum"
	case FieldRequiredConstant:
		return "RequiredConstant"
	case FieldRecordSimple:
		return "RecordSimple"
	case FieldRecordComplex:
		return "RecordComplex"
	}
	return "Unknown"
}

// FieldDefinition describes how one field of a record maps between the
// document and an entity property
type FieldDefinition struct {
	Type FieldType

	// XPath locates the field's node(s) relative to the record's root node,
	// eg "NAME" or "MASH_STEPS/MASH_STEP"
	XPath string

	// PropertyName is the bundle/property key the parsed value is stored
	// under. For FieldRequiredConstant this instead holds the literal value
	// that must appear in the document and is emitted verbatim on export.
	PropertyName string

	// Required marks scalar fields whose absence fails the whole load
	Required bool

	// EnumMap is only set when Type == FieldEnum
	EnumMap *EnumStringMap
}

// FieldDefinitions is the full schema for one record type. Order matters: it
// determines the order fields are written on export.
type FieldDefinitions []FieldDefinition
