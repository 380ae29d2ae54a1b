package platform

import "github.com/jhowell728/fsb/internal/model"

// StyleWriter is the window API the borderless transform needs.
type StyleWriter interface {
	WindowStyle(id uintptr) (uint32, error)
	SetWindowStyle(id uintptr, style uint32) error
	SetWindowBounds(id uintptr, b Bounds) error
}

// MakeBorderless clears the frame style bits of a window and moves it to
// cover screen. It issues exactly one style write and one position write.
// Nothing is rolled back when the second write fails.
func MakeBorderless(w StyleWriter, id uintptr, screen Bounds) error {
	style, err := w.WindowStyle(id)
	if err != nil {
		return err
	}
	if err := w.SetWindowStyle(id, model.BorderlessStyle(style)); err != nil {
		return err
	}
	return w.SetWindowBounds(id, Bounds{X: 0, Y: 0, Width: screen.Width, Height: screen.Height})
}
