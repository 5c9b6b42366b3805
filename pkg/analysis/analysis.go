package analysis

import (
	"fmt"
	"sort"

	"github.com/philipparndt/gobim/pkg/geometry"
	"github.com/philipparndt/gobim/pkg/model"
	"github.com/philipparndt/gobim/pkg/spatial"
)

// CategoryCount is one row of a category breakdown
type CategoryCount struct {
	Category string
	Count    int
}

// Result contains aggregate measurements of a loaded component set
type Result struct {
	ComponentCount int
	SkippedBounds  int
	BoundingBox    geometry.BoundingBox
	Dimensions     geometry.Vector3
	Volume         float64
	Categories     []CategoryCount
	Largest        *model.Component
}

// Analyze performs aggregate analysis on a component set
func Analyze(components []*model.Component) *Result {
	bounds, skipped := spatial.Bounds(components)

	result := &Result{
		ComponentCount: len(components),
		SkippedBounds:  skipped,
		BoundingBox:    bounds,
	}
	if bounds.IsValid() {
		result.Dimensions = bounds.Size()
		result.Volume = bounds.Volume()
	}

	byCategory := make(map[string]int)
	largestVolume := -1.0
	for _, c := range components {
		byCategory[c.Category]++

		if c.Geometry == nil {
			continue
		}
		if local, ok := c.Geometry.Bounds(); ok {
			if v := local.Volume(); v > largestVolume {
				largestVolume = v
				result.Largest = c
			}
		}
	}

	for category, count := range byCategory {
		result.Categories = append(result.Categories, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result.Categories, func(i, j int) bool {
		if result.Categories[i].Count != result.Categories[j].Count {
			return result.Categories[i].Count > result.Categories[j].Count
		}
		return result.Categories[i].Category < result.Categories[j].Category
	})

	return result
}

// FindByCategory returns the components of one category, in load order
func FindByCategory(components []*model.Component, category string) []*model.Component {
	var matched []*model.Component
	for _, c := range components {
		if c.Category == category {
			matched = append(matched, c)
		}
	}
	return matched
}

// FormatVector formats a 3D vector for CLI output
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
