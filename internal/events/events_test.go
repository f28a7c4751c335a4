package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"

	"github.com/alfredjeanlab/rollcall/internal/engine"
	"github.com/alfredjeanlab/rollcall/internal/model"
)

// startTestNATS starts an embedded NATS server and returns its client URL.
func startTestNATS(t *testing.T) string {
	t.Helper()
	opts := &natsserver.Options{Host: "127.0.0.1", Port: -1}
	srv, err := natsserver.NewServer(opts)
	if err != nil {
		t.Fatalf("starting embedded NATS: %v", err)
	}
	srv.Start()
	t.Cleanup(srv.Shutdown)
	if !srv.ReadyForConnections(5 * time.Second) {
		t.Fatal("embedded NATS not ready")
	}
	return srv.ClientURL()
}

func TestBusNotifier_ImplementsNotifier(t *testing.T) {
	var _ engine.Notifier = (*BusNotifier)(nil)
}

func TestBusNotifier_PublishesScanEvents(t *testing.T) {
	url := startTestNATS(t)

	pub, err := NewNATSPublisher(url)
	if err != nil {
		t.Fatalf("creating publisher: %v", err)
	}
	defer pub.Close()

	sub, err := NewNATSSubscriber(url)
	if err != nil {
		t.Fatalf("creating subscriber: %v", err)
	}
	defer sub.Close()

	ch, cancel, err := sub.Subscribe(TopicScanMatched)
	if err != nil {
		t.Fatalf("subscribing: %v", err)
	}
	defer cancel()

	n := NewBusNotifier(pub, nil)
	n.AttendanceMarked(model.Student{
		StudentID:     "STU0007",
		Name:          "Lin",
		FingerprintID: 7,
		Status:        model.StatusPresent,
		LastScan:      "2026-08-28 09:15:00",
	})
	pub.conn.Flush()

	select {
	case msg := <-ch:
		if msg.Topic != TopicScanMatched {
			t.Errorf("expected topic %s, got %s", TopicScanMatched, msg.Topic)
		}
		var scan Scan
		if err := json.Unmarshal(msg.Data, &scan); err != nil {
			t.Fatalf("decoding scan event: %v", err)
		}
		if scan.Student.StudentID != "STU0007" {
			t.Errorf("expected STU0007, got %s", scan.Student.StudentID)
		}
		if !strings.HasPrefix(scan.EventID, "ev-") {
			t.Errorf("expected tagged event ID, got %q", scan.EventID)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for scan event")
	}
}

func TestSubscriber_WildcardReceivesAllSurfaces(t *testing.T) {
	url := startTestNATS(t)

	pub, err := NewNATSPublisher(url)
	if err != nil {
		t.Fatalf("creating publisher: %v", err)
	}
	defer pub.Close()

	sub, err := NewNATSSubscriber(url)
	if err != nil {
		t.Fatalf("creating subscriber: %v", err)
	}
	defer sub.Close()

	ch, cancel, err := sub.Subscribe("rollcall.>")
	if err != nil {
		t.Fatalf("subscribing: %v", err)
	}
	defer cancel()

	n := NewBusNotifier(pub, nil)
	n.Status("System ready - Place finger on scanner")
	n.Connection("Fingerprint sensor connected and ready", true)
	n.ProgressShown("Fingerprint Capture", "Capturing fingerprint image...")
	n.ProgressHidden()
	pub.conn.Flush()

	for i := 0; i < 4; i++ {
		select {
		case <-ch:
			// received
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for notification %d", i)
		}
	}
}

func TestSubscriber_Cancel(t *testing.T) {
	url := startTestNATS(t)

	sub, err := NewNATSSubscriber(url)
	if err != nil {
		t.Fatalf("creating subscriber: %v", err)
	}
	defer sub.Close()

	ch, cancel, err := sub.Subscribe("rollcall.>")
	if err != nil {
		t.Fatalf("subscribing: %v", err)
	}

	cancel()

	// Channel should be closed; calling cancel twice must not panic.
	if _, ok := <-ch; ok {
		t.Fatal("expected channel to be closed after cancel")
	}
	cancel()
}

func TestNoopPublisher(t *testing.T) {
	var _ Publisher = (*NoopPublisher)(nil)

	n := NewBusNotifier(&NoopPublisher{}, nil)
	n.Status("discarded")
	n.ProgressHidden()
}
