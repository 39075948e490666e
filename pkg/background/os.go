package background

// Setter applies an image file as the desktop wallpaper. The core pipeline
// only ever hands it valid, display-sized files; everything beyond that is the
// platform's business.
type Setter interface {
	Set(imagePath string) error
}

// NewSetter returns the wallpaper setter for the current platform.
func NewSetter() Setter {
	return &platformSetter{}
}
