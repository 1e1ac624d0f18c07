package scorers

import (
	"fmt"
	"math"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"

	m "github.com/mouse-blink/splice/internal/model"
)

// DefaultCallIndexSize bounds the number of names whose counts are cached.
const DefaultCallIndexSize = 4096

// CallIndex counts call sites of names across one ranked corpus. It is built
// per rank invocation and safe for concurrent use.
type CallIndex struct {
	sources map[m.Path]string
	counts  *lru.Cache[string, int]
}

// NewCallIndex indexes sources. size bounds the count cache.
func NewCallIndex(sources map[m.Path]string, size int) (*CallIndex, error) {
	if size <= 0 {
		size = DefaultCallIndexSize
	}

	counts, err := lru.New[string, int](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create call index cache: %w", err)
	}

	return &CallIndex{sources: sources, counts: counts}, nil
}

// Count returns the number of call sites of name, declarations excluded.
func (c *CallIndex) Count(name string) int {
	if n, ok := c.counts.Get(name); ok {
		return n
	}

	call := regexp.MustCompile(`(\b(?:function\s*\*?\s*|func\s*(?:\([^()]*\)\s*)?|def\s+|fn\s+))?\b` +
		regexp.QuoteMeta(name) + `\s*\(`)
	n := 0

	for _, text := range c.sources {
		for _, match := range call.FindAllStringSubmatchIndex(text, -1) {
			// Group 1 is the declaration keyword.
			if match[2] >= 0 {
				continue
			}

			n++
		}
	}

	c.counts.Add(name, n)

	return n
}

// Len returns the number of cached counts.
func (c *CallIndex) Len() int {
	return c.counts.Len()
}

// Score scores the logarithm of the call site count, rewarding widely used
// definitions.
func (c *CallIndex) Score(in Input) float64 {
	return math.Log2(float64(c.Count(in.Name)) + 1)
}
