package core

import (
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
)

// RootCategoryName is the namespace shared by every driver category
const RootCategoryName = "CouchDB.Driver"

// wrapperSegment is removed from category markers when deriving names
const wrapperSegment = ".DbLoggerCategory"

// Built-in driver categories
var (
	DatabaseCategory = NewCategory(RootCategoryName + wrapperSegment + "+Database")
	QueryCategory    = NewCategory(RootCategoryName + wrapperSegment + "+Query")
	UpdateCategory   = NewCategory(RootCategoryName + wrapperSegment + "+Update")
)

// categoryNames memoizes marker -> derived name
var categoryNames = xsync.NewMapOf[string, string]()

// Category is a logger category, identified by its fully qualified marker
type Category struct {
	marker string
}

// NewCategory creates a category from its fully qualified marker, where
// '+' separates a nested marker from its container.
func NewCategory(marker string) Category {
	return Category{marker: marker}
}

// Marker returns the fully qualified marker the category was created from
func (c Category) Marker() string {
	return c.marker
}

// Name returns the dotted category name
func (c Category) Name() string {
	if c.marker == "" {
		return ""
	}
	name, _ := categoryNames.LoadOrCompute(c.marker, func() string {
		return CategoryName(c.marker)
	})
	return name
}

// String returns the dotted category name
func (c Category) String() string {
	return c.Name()
}

// CategoryName derives a dotted name from a category marker without
// consulting the memo.
func CategoryName(marker string) string {
	name := strings.ReplaceAll(marker, "+", ".")
	return strings.ReplaceAll(name, wrapperSegment, "")
}
