// Package notify sends desktop notifications when the playing track changes.
package notify

// Urgency is the freedesktop notification urgency hint.
type Urgency byte

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// appName is reported to the notification server.
const appName = "Encore"

// Notification is one desktop notification.
type Notification struct {
	Title      string
	Body       string
	Icon       string // icon name or local image path
	Timeout    int32  // ms; -1 lets the server decide, 0 never expires
	ReplacesID uint32 // replaces an earlier notification when non-zero
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns its server-side ID, or 0 when
	// notifications are unavailable.
	Notify(n Notification) (uint32, error)
	// Close withdraws a notification by ID.
	Close(id uint32) error
}

// Discard is a Notifier that shows nothing.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(Notification) (uint32, error) { return 0, nil }

func (discard) Close(uint32) error { return nil }
