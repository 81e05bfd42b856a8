package engine

import (
	"fmt"

	"go.uber.org/zap"
)

// Coding is the registry for one document dialect (eg BeerXML 1.0): it maps
// record tags to their RecordType so that nested records can be resolved at
// traversal time from the tag alone
type Coding struct {
	Name string

	types map[string]*RecordType

	logger *zap.SugaredLogger
}

func NewCoding(name string, logger *zap.SugaredLogger) *Coding {
	return &Coding{
		Name:   name,
		types:  make(map[string]*RecordType),
		logger: logger,
	}
}

// Register adds a record type under its tag. Exactly one type may exist per
// tag; a second registration for the same tag is a programming error.
func (c *Coding) Register(rt *RecordType) {
	if _, ok := c.types[rt.Tag]; ok {
		panic(fmt.Sprintf("record type for tag %s registered twice in coding %s", rt.Tag, c.Name))
	}
	c.types[rt.Tag] = rt
}

// Lookup returns the record type registered for a tag
func (c *Coding) Lookup(tag string) (*RecordType, bool) {
	rt, ok := c.types[tag]
	return rt, ok
}

// LookupKind finds the (non-container) record type for an entity kind, eg
// "Hop" -> the HOP record type
func (c *Coding) LookupKind(kind string) (*RecordType, bool) {
	for _, rt := range c.types {
		if rt.Kind == kind {
			return rt, true
		}
	}
	return nil, false
}

// NewRecord creates a fresh engine for the record type registered under tag
func (c *Coding) NewRecord(tag string) (*RecordEngine, error) {
	rt, ok := c.types[tag]
	if !ok {
		return nil, fmt.Errorf("no record type registered for tag %s in coding %s", tag, c.Name)
	}
	return c.NewRecordFor(rt), nil
}

// NewRecordFor creates a fresh engine for a known record type
func (c *Coding) NewRecordFor(rt *RecordType) *RecordEngine {
	return &RecordEngine{
		coding:     c,
		recordType: rt,
		logger:     c.logger,
		bundle:     NewParameterBundle(),
	}
}
