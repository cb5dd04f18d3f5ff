package outline

import "strings"

// LayoutKind is the structural slide layout chosen for a slide.
type LayoutKind int

const (
	LayoutTitleSlide LayoutKind = iota
	LayoutTitleAndContent
	LayoutBlank
)

func (k LayoutKind) String() string {
	switch k {
	case LayoutTitleSlide:
		return "Title Slide"
	case LayoutTitleAndContent:
		return "Title and Content"
	default:
		return "Blank"
	}
}

// SelectLayout decides a slide's layout from its content shape alone:
// a title with no body content gets a title slide, a title with any of
// bullets/chart/image gets title-and-content, anything else is blank.
// The style's default layout never overrides this rule; it exists only as
// a fallback for outlines assembled with auto-detection disabled.
func SelectLayout(s Slide) LayoutKind {
	hasTitle := strings.TrimSpace(s.Title) != ""
	hasBody := len(s.Bullets) > 0 || s.Chart != nil || s.ImageRef != ""
	switch {
	case hasTitle && !hasBody:
		return LayoutTitleSlide
	case hasTitle:
		return LayoutTitleAndContent
	default:
		return LayoutBlank
	}
}
