// Package notify carries the user-facing side channel emitted by mutating
// ledger operations. Notifications are presentation hints, not part of the
// data contract: a rejected category change surfaces here and nowhere else.
package notify

import "go.uber.org/zap"

// Variant selects the presentation style of a notification.
type Variant string

const (
	VariantDefault     Variant = ""
	VariantDestructive Variant = "destructive"
)

// Notification is one user-facing event.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// Notifier receives notifications.
type Notifier interface {
	Notify(n Notification)
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Notify(Notification) {}

// Logger adapts a zap logger into a Notifier. Destructive notifications log
// at Warn, everything else at Info.
type Logger struct {
	log *zap.Logger
}

func NewLogger(log *zap.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Notify(n Notification) {
	fields := []zap.Field{zap.String("description", n.Description)}
	if n.Variant == VariantDestructive {
		l.log.Warn(n.Title, fields...)
		return
	}
	l.log.Info(n.Title, fields...)
}

// Recorder collects notifications in memory, mostly for tests.
type Recorder struct {
	Notifications []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.Notifications = append(r.Notifications, n)
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	if len(r.Notifications) == 0 {
		return Notification{}, false
	}
	return r.Notifications[len(r.Notifications)-1], true
}
