//go:build !linux

package notify

// New returns a Disabled notifier: only Linux has a notification bus.
func New() (Notifier, error) {
	return Disabled{}, nil
}
