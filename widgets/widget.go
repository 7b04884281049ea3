package widgets

// Widget renders itself into a width x height box.
type Widget interface {
	Render(width, height int) string
}
