package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/rollcall/internal/config"
	"github.com/alfredjeanlab/rollcall/internal/engine"
	"github.com/alfredjeanlab/rollcall/internal/frame"
	"github.com/alfredjeanlab/rollcall/internal/protocol"
	"github.com/alfredjeanlab/rollcall/internal/roster"
)

var replayCmd = &cobra.Command{
	Use:   "replay <transcript>",
	Short: "Replay a captured scanner transcript against the roster",
	Long: `replay feeds a recorded serial transcript (or - for stdin) through the
same classifier and engine the live daemon uses. Useful for recovering a
session after a crash, or for testing protocol handling against a real
capture without a scanner on the bench.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		students, err := st.Load(cmd.Context())
		if err != nil {
			return err
		}
		r := roster.NewFrom(students)
		fmt.Printf("Loaded %d students from storage.\n", r.Len())

		var in io.Reader
		if args[0] == "-" {
			in = os.Stdin
		} else {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open transcript: %w", err)
			}
			defer f.Close()
			in = f
		}

		// Enrollment prompts would race the transcript read on a shared
		// stdin, so replays always use placeholder names.
		eng := engine.New(r, st, consoleNotifier{}, nil, logger)

		if err := replayStream(cmd.Context(), in, eng); err != nil {
			return err
		}

		fmt.Printf("Replay complete. Roster now holds %d students.\n", r.Len())
		return nil
	},
}

// replayStream runs the transcript through the framer, classifier, and
// engine. Transcript lines arrive as fast as the reader can pull them, far
// faster than a live sensor, so every scan must settle before the next
// terminal record is dispatched; otherwise the engine's drop-while-resolving
// policy would discard all but the first of a burst.
func replayStream(ctx context.Context, in io.Reader, eng *engine.Engine) error {
	framer := frame.New()
	machine := protocol.NewMachine()
	buf := make([]byte, 4096)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			for _, line := range framer.Feed(buf[:n]) {
				ev := machine.Next(line)
				if ev.Kind == protocol.EventUnrecognized {
					continue
				}
				eng.HandleEvent(ctx, ev)
				if ev.Kind == protocol.EventTerminalID {
					eng.Wait()
				}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read transcript: %w", err)
		}
	}
	eng.Wait()
	return nil
}
