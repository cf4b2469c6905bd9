// Package notify shows desktop notifications over the freedesktop
// Notifications D-Bus interface.
package notify

// Urgency is the freedesktop urgency hint.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// CategoryTrack is the category iMusic tags track announcements with.
const CategoryTrack = "x-imusic.track"

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // summary, required
	Body       string  // optional, basic markup
	Icon       string  // image path or icon name
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification
	Urgency    Urgency // low, normal, critical
	Category   string  // empty = no category hint
	Transient  bool    // keep out of the server's history
}

// Hints returns the freedesktop hints for n. The desktop entry is always set
// so servers can group iMusic notifications.
func (n Notification) Hints() map[string]any {
	hints := map[string]any{
		"urgency":       byte(n.Urgency),
		"desktop-entry": desktopEntry,
	}
	if n.Category != "" {
		hints["category"] = n.Category
	}
	if n.Transient {
		hints["transient"] = true
	}
	return hints
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

const (
	appName      = "iMusic"
	desktopEntry = "imusic"
)

// Disabled is a Notifier that shows nothing.
type Disabled struct{}

func (Disabled) Notify(Notification) (uint32, error) { return 0, nil }
func (Disabled) Close(uint32) error                  { return nil }
