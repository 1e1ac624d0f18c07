package model

// ScorerName identifies a scoring function.
type ScorerName string

const (
	// ScorerLength scores the number of lines of a definition.
	ScorerLength ScorerName = "length"
	// ScorerNesting scores the deepest brace nesting inside the body.
	ScorerNesting ScorerName = "nesting"
	// ScorerParams scores the number of declared parameters.
	ScorerParams ScorerName = "params"
	// ScorerBranches scores branching keywords in the body.
	ScorerBranches ScorerName = "branches"
	// ScorerDocs rewards a documentation comment.
	ScorerDocs ScorerName = "docs"
	// ScorerCallers scores how often the definition is called across the corpus.
	ScorerCallers ScorerName = "callers"
)

// Definition is one ranked definition.
type Definition struct {
	File   Path                   `yaml:"file"`
	Name   string                 `yaml:"name"`
	Line   int                    `yaml:"line"`
	Lines  int                    `yaml:"lines"`
	Score  float64                `yaml:"score"`
	Scores map[ScorerName]float64 `yaml:"scores"`
}

// RankReport is the persisted output of one rank invocation.
type RankReport struct {
	Roots       []Path       `yaml:"roots"`
	Files       int          `yaml:"files"`
	NotFound    int          `yaml:"not_found"`
	Definitions []Definition `yaml:"definitions"`
}
