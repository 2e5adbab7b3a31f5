package port

// ProcessLifetime keeps the application running while no window is open.
// Hold and Release calls must be balanced.
type ProcessLifetime interface {
	Hold()
	Release()
	Quit()
}
