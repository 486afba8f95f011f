// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package counter

// Relationship is the closed set of outcomes Diff can report between two
// counter contexts.
type Relationship int

const (
	Equal Relationship = iota
	GreaterThan
	LessThan
	Disjoint
)

func (r Relationship) String() string {
	switch r {
	case Equal:
		return "EQUAL"
	case GreaterThan:
		return "GREATER_THAN"
	case LessThan:
		return "LESS_THAN"
	case Disjoint:
		return "DISJOINT"
	default:
		return "UNKNOWN"
	}
}
