package adapter

import (
	m "github.com/mouse-blink/splice/internal/model"
)

// UI defines how workflow results are shown to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayOpResult shows the outcome of an open or close.
	DisplayOpResult(op string, result m.OpResult) error
	// DisplayStatus lists the sections and stubs of a document.
	DisplayStatus(doc m.Path, statuses []m.SectionStatus) error
	// DisplaySpan prints an extracted definition, or reports it missing.
	DisplaySpan(name string, span m.Span, found bool) error
	// DisplayRank shows ranked definitions.
	DisplayRank(report m.RankReport) error
	// RankProgress returns a callback for ranking progress, or nil.
	RankProgress() func(done, total int)
}
