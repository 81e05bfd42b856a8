package engine

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"brewdex/src/helpers"
	"brewdex/src/models"
)

// DefaultIndent is the per-level indent used when exporting XML
const DefaultIndent = "  "

// ToXml writes the given entity out as one record of this engine's type,
// indented indentLevel levels deep. Export assumes a valid, already-stored
// entity graph, so there is no failure verdict; an unmappable enum value is
// logged and its element omitted.
func (e *RecordEngine) ToXml(entity models.NamedEntity, out io.Writer, indentLevel int, indentString string) {
	indent := strings.Repeat(indentString, indentLevel)
	fmt.Fprintf(out, "%s<%s>\n", indent, e.recordType.Tag)

	inner := indent + indentString
	for i := range e.recordType.Fields {
		field := &e.recordType.Fields[i]

		switch field.Type {
		case FieldRequiredConstant:
			writeElement(out, inner, field.XPath, field.PropertyName)

		case FieldRecordSimple, FieldRecordComplex:
			e.subRecordsToXml(field, entity, out, indentLevel+1, indentString)

		default:
			value, ok := e.recordType.PropertyValue(entity, field.PropertyName)
			if !ok {
				continue
			}
			text, ok := e.formatScalar(field, value)
			if !ok {
				continue
			}
			writeElement(out, inner, field.XPath, text)
		}
	}

	fmt.Fprintf(out, "%s</%s>\n", indent, e.recordType.Tag)
}

// formatScalar renders a property value in the canonical textual form for
// its field type
func (e *RecordEngine) formatScalar(field *FieldDefinition, value any) (string, bool) {
	switch field.Type {
	case FieldBool:
		return helpers.FormatXMLBool(value.(bool)), true
	case FieldInt:
		return strconv.Itoa(value.(int)), true
	case FieldUInt:
		return strconv.FormatUint(uint64(value.(uint)), 10), true
	case FieldDouble:
		return strconv.FormatFloat(value.(float64), 'f', -1, 64), true
	case FieldString:
		return value.(string), true
	case FieldDate:
		return value.(time.Time).Format(DateFormat), true
	case FieldEnum:
		token, ok := field.EnumMap.XML(value.(string))
		if !ok {
			e.logger.Errorf("no %s token for internal %s value \"%v\" of %s record, omitting field",
				e.coding.Name, field.XPath, value, e.recordType.Tag)
			return "", false
		}
		return token, true
	}
	return "", false
}

// subRecordsToXml exports the sub-entities a record field refers to,
// delegating each one to a single reusable child engine one indent level
// deeper. When there is nothing to export, a comment marks the omission as
// intentional.
func (e *RecordEngine) subRecordsToXml(field *FieldDefinition, entity models.NamedEntity, out io.Writer, indentLevel int, indentString string) {
	segments := strings.Split(field.XPath, "/")
	leafTag := segments[len(segments)-1]
	wrappers := segments[:len(segments)-1]

	childType, ok := e.coding.Lookup(leafTag)
	if !ok {
		e.logger.Errorf("no record type for tag %s while exporting %s record", leafTag, e.recordType.Tag)
		return
	}

	children := e.recordType.ChildEntities(entity, field)
	indent := strings.Repeat(indentString, indentLevel)

	if len(children) == 0 {
		fmt.Fprintf(out, "%s<!-- No %s records in this %s -->\n", indent, leafTag, e.recordType.Tag)
		return
	}

	for level, wrapper := range wrappers {
		fmt.Fprintf(out, "%s<%s>\n", strings.Repeat(indentString, indentLevel+level), wrapper)
	}

	subRecord := e.coding.NewRecordFor(childType)
	for _, child := range children {
		subRecord.ToXml(child, out, indentLevel+len(wrappers), indentString)
	}

	for level := len(wrappers) - 1; level >= 0; level-- {
		fmt.Fprintf(out, "%s</%s>\n", strings.Repeat(indentString, indentLevel+level), wrappers[level])
	}
}

// writeElement emits one <TAG>value</TAG> line with XML-escaped content
func writeElement(out io.Writer, indent, tag, value string) {
	var escaped strings.Builder
	xml.EscapeText(&escaped, []byte(value))
	fmt.Fprintf(out, "%s<%s>%s</%s>\n", indent, tag, escaped.String(), tag)
}
