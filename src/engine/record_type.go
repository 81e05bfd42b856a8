package engine

import "brewdex/src/models"

// EntityStore is the persistence collaborator the engine stores entities
// into. The concrete implementation lives in src/store; tests substitute
// their own.
type EntityStore interface {
	// Insert stores a fully constructed entity and returns its assigned
	// identifier
	Insert(entity models.NamedEntity) (string, error)

	// Delete removes a previously inserted entity (used for rollback)
	Delete(id string) error

	// FindAll returns every stored entity of the given kind, in insertion
	// order
	FindAll(kind string) []models.NamedEntity

	// ContainsName reports whether any stored entity, of any kind, has the
	// given name
	ContainsName(name string) bool
}

// RecordType bundles the field schema for one record tag with the pluggable
// per-type behaviour the generic engine cannot know: how to construct the
// entity, what counts as a duplicate, and how records attach to each other.
// The traversal algorithm itself never changes when a new type is added; a
// new RecordType is just registered with the coding.
type RecordType struct {
	// Tag is the element around one record of this type, eg "RECIPE"
	Tag string

	// ContainerTag is the plural element records of this type are wrapped in
	// at the top level of a document, eg "RECIPES"
	ContainerTag string

	// Kind is the entity type name, eg "Hop". Empty for pure container
	// records, which have no entity of their own.
	Kind string

	Fields FieldDefinitions

	// IncludeInStats is false for record types that are entirely owned
	// sub-parts of another record (eg mash steps), which the user is not
	// told about individually
	IncludeInStats bool

	// UniqueNames marks types whose entities must have globally unique
	// human-readable names; clashing names get a " (n)" suffix before
	// storage
	UniqueNames bool

	// Construct builds the entity from a fully loaded bundle. It must either
	// return a ready-to-validate entity or an error with nothing retained.
	Construct func(bundle *ParameterBundle) (models.NamedEntity, error)

	// Equivalent reports whether a newly constructed candidate duplicates an
	// already-stored entity of the same kind. Nil means the type does not
	// participate in duplicate detection.
	Equivalent func(candidate, existing models.NamedEntity) bool

	// SetContaining attaches the containing entity's identity to an owned
	// entity before it is stored (eg a mash step learning its mash). Nil for
	// types that are never owned.
	SetContaining func(entity, containing models.NamedEntity)

	// AttachChild hooks a successfully processed child entity onto this
	// record's entity (eg a hop onto its recipe). Called after the child is
	// stored, or resolved to a pre-existing duplicate.
	AttachChild func(parent, child models.NamedEntity)

	// ChildEntities returns the sub-entities a record field refers to on
	// export. May return zero, one or many.
	ChildEntities func(entity models.NamedEntity, field *FieldDefinition) []models.NamedEntity

	// PropertyValue reads a scalar property off the entity on export. The
	// second return value is false when the property has nothing to emit.
	PropertyValue func(entity models.NamedEntity, property string) (any, bool)
}
