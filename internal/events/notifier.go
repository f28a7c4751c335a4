package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/alfredjeanlab/rollcall/internal/idgen"
	"github.com/alfredjeanlab/rollcall/internal/model"
)

// BusNotifier implements the engine's notification surface by publishing
// each notification on the bus. Publish failures are logged and dropped;
// the engine must never block or fail on the notification path.
type BusNotifier struct {
	pub    Publisher
	logger *slog.Logger
}

// NewBusNotifier wraps a publisher as a notifier.
func NewBusNotifier(pub Publisher, logger *slog.Logger) *BusNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &BusNotifier{pub: pub, logger: logger}
}

func (n *BusNotifier) publish(topic string, event any) {
	if err := n.pub.Publish(context.Background(), topic, event); err != nil {
		n.logger.Warn("publishing notification", "topic", topic, "err", err)
	}
}

func (n *BusNotifier) eventID() string {
	id, err := idgen.EventID()
	if err != nil {
		n.logger.Warn("generating event ID", "err", err)
		return ""
	}
	return id
}

func (n *BusNotifier) Status(text string) {
	n.publish(TopicStatus, Status{EventID: n.eventID(), Text: text, At: time.Now().UTC()})
}

func (n *BusNotifier) Connection(text string, healthy bool) {
	n.publish(TopicConnection, Connection{EventID: n.eventID(), Text: text, Healthy: healthy, At: time.Now().UTC()})
}

func (n *BusNotifier) ProgressShown(title, text string) {
	n.publish(TopicProgressShown, Progress{EventID: n.eventID(), Title: title, Text: text})
}

func (n *BusNotifier) ProgressUpdated(text string) {
	n.publish(TopicProgressUpdated, Progress{EventID: n.eventID(), Text: text})
}

func (n *BusNotifier) ProgressHidden() {
	n.publish(TopicProgressHidden, Progress{EventID: n.eventID()})
}

func (n *BusNotifier) AttendanceMarked(s model.Student) {
	n.publish(TopicScanMatched, Scan{EventID: n.eventID(), Student: s})
}

func (n *BusNotifier) StudentEnrolled(s model.Student) {
	n.publish(TopicScanEnrolled, Scan{EventID: n.eventID(), Student: s})
}
