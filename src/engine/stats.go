package engine

import (
	"fmt"
	"io"
)

// ImportRecordCount tallies, per record kind, how many records an import
// stored and how many it skipped as duplicates
type ImportRecordCount struct {
	stored  map[string]int
	skipped map[string]int

	// kinds in first-seen order, so the summary is stable
	order []string
}

func NewImportRecordCount() *ImportRecordCount {
	return &ImportRecordCount{
		stored:  make(map[string]int),
		skipped: make(map[string]int),
	}
}

func (c *ImportRecordCount) seen(kind string) {
	if _, ok := c.stored[kind]; ok {
		return
	}
	if _, ok := c.skipped[kind]; ok {
		return
	}
	c.order = append(c.order, kind)
}

// Stored records that one record of the given kind was written to the store
func (c *ImportRecordCount) Stored(kind string) {
	c.seen(kind)
	c.stored[kind]++
}

// Skipped records that one record of the given kind was a duplicate
func (c *ImportRecordCount) Skipped(kind string) {
	c.seen(kind)
	c.skipped[kind]++
}

func (c *ImportRecordCount) StoredCount(kind string) int  { return c.stored[kind] }
func (c *ImportRecordCount) SkippedCount(kind string) int { return c.skipped[kind] }

// WriteSummary appends a human-readable per-kind tally to the sink
func (c *ImportRecordCount) WriteSummary(w io.Writer) {
	if len(c.order) == 0 {
		fmt.Fprintf(w, "No records read in\n")
		return
	}
	for _, kind := range c.order {
		fmt.Fprintf(w, "%s: %d stored, %d skipped as duplicates\n",
			kind, c.stored[kind], c.skipped[kind])
	}
}
