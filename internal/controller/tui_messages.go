package controller

import (
	m "github.com/mouse-blink/splice/internal/model"
)

// Message types.
type reportMsg struct {
	report m.RankReport
}

// List item types.
type definitionItem struct {
	def m.Definition
}

func (d definitionItem) FilterValue() string {
	return d.def.Name + " " + string(d.def.File)
}
