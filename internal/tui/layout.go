package tui

const (
	defaultWidth  = 80
	defaultHeight = 24

	headerHeight = 2 // title + rule
	bannerHeight = 6 // five banner rows + spacer
	searchHeight = 2 // search line + spacer
	footerHeight = 2 // rule + status bar
)

// Layout manages screen layout calculations.
type Layout struct {
	width  int
	height int
}

// NewLayout creates a layout with a fallback size used until the first
// window size message arrives.
func NewLayout() *Layout {
	return &Layout{width: defaultWidth, height: defaultHeight}
}

// SetSize updates the layout dimensions.
func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the total width.
func (l *Layout) Width() int {
	if l.width < 20 {
		return 20
	}
	return l.width
}

// ContentHeight returns the lines left for the content area.
func (l *Layout) ContentHeight(bannerVisible bool) int {
	h := l.height - headerHeight - searchHeight - footerHeight
	if bannerVisible {
		h -= bannerHeight
	}
	if h < 1 {
		h = 1
	}
	return h
}
