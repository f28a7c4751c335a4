// Package engine reconciles terminal fingerprint events against the
// roster. It owns the only two pieces of shared mutable state in the
// system: the roster and the single-flight resolution flag. At most one
// match/enroll resolution is in flight system-wide; a second terminal
// event arriving while one is pending is dropped, not queued — the sensor
// re-emits on the next scan.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/alfredjeanlab/rollcall/internal/idgen"
	"github.com/alfredjeanlab/rollcall/internal/model"
	"github.com/alfredjeanlab/rollcall/internal/protocol"
	"github.com/alfredjeanlab/rollcall/internal/roster"
	"github.com/alfredjeanlab/rollcall/internal/store"
)

// ProgressTitle heads the capture progress indication.
const ProgressTitle = "Fingerprint Capture"

// Engine applies classified device events to the roster and persists every
// mutation as a whole snapshot.
type Engine struct {
	roster   *roster.Roster
	store    store.RosterStore
	notifier Notifier
	prompter Prompter
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.Mutex
	resolving bool

	wg sync.WaitGroup
}

// New creates an engine. A nil notifier discards notifications; a nil
// prompter always falls back to the generated placeholder name.
func New(r *roster.Roster, st store.RosterStore, n Notifier, p Prompter, logger *slog.Logger) *Engine {
	if n == nil {
		n = NopNotifier{}
	}
	if p == nil {
		p = PrompterFunc(func(context.Context, int) (string, error) { return "", nil })
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		roster:   r,
		store:    st,
		notifier: n,
		prompter: p,
		logger:   logger,
		now:      time.Now,
	}
}

// Roster returns the engine's roster for read-only use (table rendering,
// export). Mutation stays inside the engine.
func (e *Engine) Roster() *roster.Roster {
	return e.roster
}

// HandleEvent processes one classified event in arrival order. Terminal
// events hand off to a resolution goroutine so the device reader never
// blocks on operator input; everything else is forwarded synchronously.
func (e *Engine) HandleEvent(ctx context.Context, ev protocol.Event) {
	switch ev.Kind {
	case protocol.EventProgressStarted:
		e.notifier.ProgressShown(ProgressTitle, ev.Text)
	case protocol.EventProgressUpdate:
		e.notifier.ProgressUpdated(ev.Text)
	case protocol.EventSensorReady:
		e.notifier.Connection("Fingerprint sensor connected and ready", true)
	case protocol.EventIdle:
		e.notifier.Status("System ready - Place finger on scanner")
	case protocol.EventMalformedTerminal:
		e.logger.Warn("malformed terminal record", "line", ev.Raw)
		e.notifier.ProgressHidden()
		e.notifier.Status("Error processing fingerprint data")
	case protocol.EventTerminalID:
		e.dispatch(ctx, ev.FingerprintID)
	case protocol.EventUnrecognized:
		e.logger.Debug("unrecognized device message", "line", ev.Raw)
	}
}

// dispatch starts a resolution for the scanned fingerprint unless one is
// already pending. The flag is set before the handoff so a burst of scans
// cannot open two resolutions.
func (e *Engine) dispatch(ctx context.Context, fingerprintID int) {
	e.mu.Lock()
	if e.resolving {
		e.mu.Unlock()
		e.logger.Info("resolution in flight, dropping scan", "fingerprint_id", fingerprintID)
		e.notifier.ProgressHidden()
		return
	}
	e.resolving = true
	e.mu.Unlock()

	e.wg.Add(1)
	go e.resolve(ctx, fingerprintID)
}

func (e *Engine) resolve(ctx context.Context, fingerprintID int) {
	defer e.wg.Done()
	defer func() {
		e.mu.Lock()
		e.resolving = false
		e.mu.Unlock()
	}()

	e.notifier.ProgressHidden()

	scannedAt := e.now().Format(model.TimestampFormat)
	if s, ok := e.roster.MarkPresent(fingerprintID, scannedAt); ok {
		e.logger.Info("attendance marked", "student_id", s.StudentID, "fingerprint_id", fingerprintID)
		e.persist(ctx)
		e.notifier.Status(fmt.Sprintf("Attendance marked for: %s (ID: %s)", s.Name, s.StudentID))
		e.notifier.AttendanceMarked(s)
		return
	}

	e.enroll(ctx, fingerprintID, scannedAt)
}

// enroll prompts for a name, appends the new record as Present, and
// persists. An empty or failed prompt falls back to the placeholder name;
// enrollment never fails once the sensor has stored a template.
func (e *Engine) enroll(ctx context.Context, fingerprintID int, scannedAt string) {
	name, err := e.prompter.EnrollmentName(ctx, fingerprintID)
	if err != nil {
		e.logger.Warn("enrollment prompt failed, using placeholder", "fingerprint_id", fingerprintID, "err", err)
		name = ""
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Student %d", fingerprintID)
	}

	s := model.Student{
		StudentID:     idgen.StudentID(fingerprintID),
		Name:          name,
		FingerprintID: fingerprintID,
		Status:        model.StatusPresent,
		LastScan:      scannedAt,
	}
	e.roster.Add(s)
	e.logger.Info("student enrolled", "student_id", s.StudentID, "fingerprint_id", fingerprintID)
	e.persist(ctx)
	e.notifier.Status(fmt.Sprintf("New student enrolled: %s", s.Name))
	e.notifier.StudentEnrolled(s)
}

// persist writes the whole roster snapshot. A failed write is surfaced to
// the operator; the in-memory roster stays authoritative until the next
// successful save.
func (e *Engine) persist(ctx context.Context) {
	if err := e.store.Save(ctx, e.roster.Students()); err != nil {
		e.logger.Error("saving roster snapshot", "err", err)
		e.notifier.Status(fmt.Sprintf("Error saving data: %v", err))
	}
}

// ClearAll empties the roster and removes the snapshot. The caller is
// responsible for asking the device to purge its stored templates.
func (e *Engine) ClearAll(ctx context.Context) error {
	e.roster.Clear()
	if err := e.store.Clear(ctx); err != nil {
		e.notifier.Status(fmt.Sprintf("Error clearing data: %v", err))
		return err
	}
	e.notifier.Status("All data cleared.")
	return nil
}

// Wait blocks until any in-flight resolution has finished. Used during
// shutdown and by tests.
func (e *Engine) Wait() {
	e.wg.Wait()
}
