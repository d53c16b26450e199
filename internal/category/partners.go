// Package category implements the category partner index of spec.md §4.4:
// for each category, the ordered list of element ids belonging to it, so
// the exchange optimizer can iterate only over admissible exchange
// partners. Built once from caller inputs, immutable thereafter.
package category

import "github.com/statunizaga/anticlust/internal/core"

// Partners holds, for each category, the list of element ids sharing it.
type Partners struct {
	partners [][]core.LocalID
}

// New builds the category partner index for n elements with the given
// category assignment and category count. When useCats is false it
// degenerates to a single category containing every element id
// (spec.md §4.4), ignoring categories and numCategories.
func New(n int, useCats bool, categories []int, numCategories int) *Partners {
	if !useCats {
		all := make([]core.LocalID, n)
		for i := range all {
			all[i] = i
		}
		return &Partners{partners: [][]core.LocalID{all}}
	}

	p := make([][]core.LocalID, numCategories)
	for i := 0; i < n; i++ {
		c := categories[i]
		p[c] = append(p[c], i)
	}
	return &Partners{partners: p}
}

// Of returns the ordered list of ids in category c. The exchange optimizer
// draws candidate partners for element i from Of(category(i)).
func (p *Partners) Of(c int) []core.LocalID {
	return p.partners[c]
}

// NumCategories returns the number of categories in the index (1 when
// categorical constraints are disabled).
func (p *Partners) NumCategories() int {
	return len(p.partners)
}
