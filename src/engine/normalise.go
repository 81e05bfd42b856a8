package engine

import (
	"fmt"
	"io"

	"brewdex/src/models"
)

// NormaliseAndStoreInDb runs the second phase on a fully loaded record: any
// final validation and data correction that the document grammar cannot
// express (duplicates, name clashes), then storage of the entity and,
// recursively, of its child records. containing is the entity that contains
// this one (eg the mash for a mash step), or nil for a freestanding record.
//
// A FoundDuplicate verdict is not a failure: the engine keeps a reference to
// the already-stored entity so that child records and the containing record
// still have something to attach to.
func (e *RecordEngine) NormaliseAndStoreInDb(containing models.NamedEntity, store EntityStore, userMessage io.Writer, stats *ImportRecordCount) ProcessingResult {
	// Container records have no entity of their own; their children are
	// freestanding
	if e.recordType.Kind == "" {
		if !e.normaliseAndStoreChildRecords(store, userMessage, stats) {
			return Failed
		}
		return Succeeded
	}

	entity, err := e.recordType.Construct(e.bundle)
	if err != nil {
		fmt.Fprintf(userMessage, "Could not create %s from %s record: %v\n",
			e.recordType.Kind, e.recordType.Tag, err)
		return Failed
	}
	e.entity = entity

	result := Succeeded
	if e.recordType.Equivalent != nil && e.resolveDuplicate(store) {
		result = FoundDuplicate
	} else {
		if e.recordType.UniqueNames {
			e.normaliseName(store)
		}

		// An owned entity needs to know its container before it is stored,
		// so the stored row carries the relationship from creation
		if e.recordType.SetContaining != nil && containing != nil {
			e.recordType.SetContaining(e.entity, containing)
		}

		id, err := store.Insert(e.entity)
		if err != nil {
			fmt.Fprintf(userMessage, "Error storing %s \"%s\": %v\n",
				e.recordType.Kind, e.entity.GetName(), err)
			// The entity never reached the store; drop our reference so it
			// cannot leak out of a failed record
			e.entity = nil
			return Failed
		}
		e.storedID = id
		e.logger.Debugf("stored %s \"%s\" as %s", e.recordType.Kind, e.entity.GetName(), id)
	}

	// Child records are processed even when this record was a duplicate, so
	// their data merges into the already-stored entity
	if !e.normaliseAndStoreChildRecords(store, userMessage, stats) {
		e.rollback(store)
		return Failed
	}

	if e.recordType.IncludeInStats {
		if result == FoundDuplicate {
			stats.Skipped(e.recordType.Kind)
		} else {
			stats.Stored(e.recordType.Kind)
		}
	}
	return result
}

// normaliseAndStoreChildRecords stores every child record with this record's
// entity as the containing entity, attaching each child's entity (new or
// pre-existing) to ours as it completes. The first child failure aborts.
func (e *RecordEngine) normaliseAndStoreChildRecords(store EntityStore, userMessage io.Writer, stats *ImportRecordCount) bool {
	for _, child := range e.childRecords {
		result := child.Record.NormaliseAndStoreInDb(e.entity, store, userMessage, stats)
		if result == Failed {
			return false
		}
		if e.recordType.AttachChild != nil && e.entity != nil && child.Record.Entity() != nil {
			e.recordType.AttachChild(e.entity, child.Record.Entity())
		}
	}
	return true
}

// resolveDuplicate compares the freshly constructed entity against the
// already-stored entities of the same kind. On a match the new entity is
// discarded and the engine points at the stored one instead.
func (e *RecordEngine) resolveDuplicate(store EntityStore) bool {
	for _, existing := range store.FindAll(e.recordType.Kind) {
		if e.recordType.Equivalent(e.entity, existing) {
			e.logger.Debugf("%s \"%s\" is a duplicate of stored entity %s",
				e.recordType.Kind, e.entity.GetName(), existing.GetID())
			e.entity = existing
			return true
		}
	}
	return false
}

// normaliseName finds a free name for the entity if its proposed name is
// already taken by any stored entity
func (e *RecordEngine) normaliseName(store EntityStore) {
	name := e.entity.GetName()
	for store.ContainsName(name) {
		name = ModifyClashingName(name)
	}
	if name != e.entity.GetName() {
		e.logger.Infof("renaming imported %s \"%s\" to \"%s\" to avoid a name clash",
			e.recordType.Kind, e.entity.GetName(), name)
		e.entity.SetName(name)
	}
}

// rollback is the compensating action when a child record fails after this
// record was already stored: the whole just-stored subtree is deleted again.
// Records resolved to pre-existing duplicates were never inserted by us and
// are left alone.
func (e *RecordEngine) rollback(store EntityStore) {
	for _, child := range e.childRecords {
		child.Record.rollback(store)
	}
	if e.storedID != "" {
		if err := store.Delete(e.storedID); err != nil {
			e.logger.Warnf("could not roll back %s %s: %v", e.recordType.Kind, e.storedID, err)
		}
		e.storedID = ""
		e.entity = nil
	}
}
