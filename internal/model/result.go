package model

// OpResult is the status of one open or close invocation.
type OpResult struct {
	// Count is the number of artifacts written (open) or consumed (close).
	Count int
	// Unmatched counts begin markers without a matching end marker.
	Unmatched int
	// Collisions counts qualified names written more than once during one open.
	Collisions int
	// Missing counts stubs whose artifact no longer exists.
	Missing int
	// Artifacts lists the artifact paths touched, in processing order.
	Artifacts []Path
	Message   string
}

// Skipped returns the number of items that were not processed.
func (r OpResult) Skipped() int {
	return r.Unmatched + r.Missing
}

// SectionState tells whether a section is inline in the document or extracted.
type SectionState string

const (
	// StateInline marks a section whose content lives in the document.
	StateInline SectionState = "inline"
	// StateExtracted marks a section replaced by a stub.
	StateExtracted SectionState = "extracted"
	// StateOrphaned marks a stub whose artifact is missing.
	StateOrphaned SectionState = "orphaned"
)

// SectionStatus is one row of the status listing.
type SectionStatus struct {
	QualifiedName string
	State         SectionState
	StartLine     int
	Lines         int
	Artifact      Path
}
