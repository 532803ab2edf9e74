package session

// ViewportClass enum
type ViewportClass string

const (
	Desktop ViewportClass = "desktop"
	Compact ViewportClass = "compact"
)

// DesktopBreakpoint is the viewport width, in px, at which the layout
// switches to the desktop class.
const DesktopBreakpoint = 768

// ClassForWidth maps a viewport width to its class.
func ClassForWidth(width int) ViewportClass {
	if width >= DesktopBreakpoint {
		return Desktop
	}
	return Compact
}

// PanelDefaultOpen reports whether the side panel defaults open for a
// viewport class. Re-applied whenever the class flips.
func PanelDefaultOpen(class ViewportClass) bool {
	return class == Desktop
}

// CarouselVisible reports whether the card carousel is the primary list
// surface. On desktop the panel serves as the list, so no carousel.
func CarouselVisible(class ViewportClass) bool {
	return class == Compact
}
