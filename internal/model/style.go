package model

// Window style bits (GWL_STYLE).
const (
	WS_MAXIMIZEBOX uint32 = 0x00010000
	WS_MINIMIZEBOX uint32 = 0x00020000
	WS_THICKFRAME  uint32 = 0x00040000
	WS_SYSMENU     uint32 = 0x00080000
	WS_DLGFRAME    uint32 = 0x00400000
	WS_BORDER      uint32 = 0x00800000
	WS_CAPTION     uint32 = WS_BORDER | WS_DLGFRAME
	WS_VISIBLE     uint32 = 0x10000000
)

// Extended window style bits (GWL_EXSTYLE).
const (
	WS_EX_TOOLWINDOW uint32 = 0x00000080
)

// BorderStyles is every style bit that draws a frame, caption or frame button.
const BorderStyles = WS_CAPTION | WS_THICKFRAME | WS_BORDER | WS_DLGFRAME |
	WS_SYSMENU | WS_MINIMIZEBOX | WS_MAXIMIZEBOX

// BorderlessStyle clears the frame bits from style and keeps the window visible.
// It is idempotent.
func BorderlessStyle(style uint32) uint32 {
	return (style &^ BorderStyles) | WS_VISIBLE
}
