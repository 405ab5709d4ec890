package listview

import "fmt"

// Category is the display emphasis of a status badge.
type Category int

// Display categories. Neutral is the fallback for unknown statuses.
const (
	CategoryNeutral Category = iota
	CategoryInfo
	CategoryAccent
	CategoryWarning
	CategoryPositive
	CategoryNegative
)

// String returns a string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryNeutral:
		return "neutral"
	case CategoryInfo:
		return "info"
	case CategoryAccent:
		return "accent"
	case CategoryWarning:
		return "warning"
	case CategoryPositive:
		return "positive"
	case CategoryNegative:
		return "negative"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// Classifier maps a raw status string to a display category. Implementations
// must return CategoryNeutral for values they do not recognize.
type Classifier func(raw string) Category
