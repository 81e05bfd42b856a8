package engine

// ProcessingResult distinguishes the three outcomes of storing a record:
// everything went OK and we should continue; there was a problem and we
// should stop processing the file; or the record duplicates one already in
// the store, in which case we skip it but carry on with the rest of the file.
type ProcessingResult int

const (
	Succeeded ProcessingResult = iota
	Failed
	FoundDuplicate
)

func (r ProcessingResult) String() string {
	switch r {
	case Succeeded:
		return "Succeeded"
	case Failed:
		return "Failed"
	case FoundDuplicate:
		return "FoundDuplicate"
	}
	return "Unknown"
}
