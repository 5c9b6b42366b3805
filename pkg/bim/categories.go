package bim

import "fmt"

// CategoryTable maps numeric entity type codes to semantic labels
type CategoryTable map[int32]string

// DefaultCategories returns the built-in code table for common building
// element types.
func DefaultCategories() CategoryTable {
	return CategoryTable{
		1: "Wall",
		2: "Slab",
		3: "Roof",
		4: "Window",
		5: "Door",
		6: "Column",
		7: "Beam",
		8: "Stair",
		9: "Railing",
		10: "Curtain Wall",
		11: "Furniture",
		12: "Plate",
		13: "Member",
		14: "Covering",
		15: "Footing",
		16: "Pile",
		17: "Ramp",
		18: "Space",
		19: "Site",
		20: "Building Proxy",
	}
}

// Merge overlays another table on top of this one and returns the result.
// Neither input is modified.
func (t CategoryTable) Merge(overrides CategoryTable) CategoryTable {
	merged := make(CategoryTable, len(t)+len(overrides))
	for code, name := range t {
		merged[code] = name
	}
	for code, name := range overrides {
		merged[code] = name
	}
	return merged
}

// Resolve maps a type code to its label. A zero code means the entity
// carries no type; unknown codes keep their numeric identity visible.
func (t CategoryTable) Resolve(code int32) string {
	if code == 0 {
		return "Unknown"
	}
	if name, ok := t[code]; ok {
		return name
	}
	return fmt.Sprintf("Type_%d", code)
}
