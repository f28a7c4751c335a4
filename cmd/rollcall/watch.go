package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/rollcall/internal/config"
	"github.com/alfredjeanlab/rollcall/internal/events"
	"github.com/alfredjeanlab/rollcall/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow live attendance events from the bus",
	Long: `watch subscribes to the daemon's event stream over NATS and prints
each event as it arrives. Requires ROLLCALL_NATS_URL to be set on both
the daemon and this command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.NATSURL == "" {
			return fmt.Errorf("ROLLCALL_NATS_URL is not set; the daemon must publish events for watch to follow")
		}

		sub, err := events.NewNATSSubscriber(cfg.NATSURL,
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				fmt.Fprintf(os.Stderr, "disconnected from event bus: %v\n", err)
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				fmt.Fprintf(os.Stderr, "reconnected to event bus at %s\n", nc.ConnectedUrl())
			}),
		)
		if err != nil {
			return err
		}
		defer sub.Close()

		ch, cancel, err := sub.Subscribe("rollcall.>")
		if err != nil {
			return err
		}
		defer cancel()

		fmt.Printf("Watching events from %s (Ctrl-C to stop)...\n", cfg.NATSURL)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		for {
			select {
			case <-sigCh:
				return nil
			case msg, ok := <-ch:
				if !ok {
					return nil
				}
				printEvent(msg)
			}
		}
	},
}

func printEvent(msg events.Message) {
	if jsonOutput {
		fmt.Printf("{\"topic\":%q,\"event\":%s}\n", msg.Topic, msg.Data)
		return
	}

	switch msg.Topic {
	case events.TopicStatus:
		var ev events.Status
		if json.Unmarshal(msg.Data, &ev) == nil {
			fmt.Printf("%s %s\n", ui.RenderMuted(ev.At.Format("15:04:05")), ev.Text)
			return
		}
	case events.TopicConnection:
		var ev events.Connection
		if json.Unmarshal(msg.Data, &ev) == nil {
			text := ev.Text
			if ev.Healthy {
				text = ui.RenderPresent(text)
			}
			fmt.Printf("%s %s\n", ui.RenderMuted(ev.At.Format("15:04:05")), text)
			return
		}
	case events.TopicProgressShown:
		var ev events.Progress
		if json.Unmarshal(msg.Data, &ev) == nil {
			fmt.Printf("%s %s\n", ui.RenderAccent("["+ev.Title+"]"), ev.Text)
			return
		}
	case events.TopicProgressUpdated:
		var ev events.Progress
		if json.Unmarshal(msg.Data, &ev) == nil {
			fmt.Printf("%s %s\n", ui.RenderAccent("[...]"), ev.Text)
			return
		}
	case events.TopicProgressHidden:
		return
	case events.TopicScanMatched:
		var ev events.Scan
		if json.Unmarshal(msg.Data, &ev) == nil {
			fmt.Printf("%s %s (ID: %s) at %s\n",
				ui.RenderPresent("Attendance marked:"), ev.Student.Name, ev.Student.StudentID, ev.Student.LastScan)
			return
		}
	case events.TopicScanEnrolled:
		var ev events.Scan
		if json.Unmarshal(msg.Data, &ev) == nil {
			fmt.Printf("%s %s (ID: %s, FP: %d)\n",
				ui.RenderPresent("Student enrolled:"), ev.Student.Name, ev.Student.StudentID, ev.Student.FingerprintID)
			return
		}
	}
	// Unknown topic or undecodable payload: show it raw rather than drop it.
	fmt.Printf("%s %s\n", ui.RenderMuted(msg.Topic), msg.Data)
}
