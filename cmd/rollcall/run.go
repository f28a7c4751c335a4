package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/rollcall/internal/backup"
	"github.com/alfredjeanlab/rollcall/internal/config"
	"github.com/alfredjeanlab/rollcall/internal/device"
	"github.com/alfredjeanlab/rollcall/internal/engine"
	"github.com/alfredjeanlab/rollcall/internal/events"
	"github.com/alfredjeanlab/rollcall/internal/roster"
	"github.com/alfredjeanlab/rollcall/internal/ui"
)

var (
	runPort       string
	runBaud       int
	runDeviceName string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to the scanner and process attendance events",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		port, baud, err := resolveDevice(cfg)
		if err != nil {
			return err
		}

		// Open the roster store and load the persisted snapshot.
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		students, err := st.Load(cmd.Context())
		if err != nil {
			return err
		}
		r := roster.NewFrom(students)
		logger.Info("roster loaded", "students", r.Len())
		fmt.Printf("Loaded %d students from storage.\n", r.Len())

		// Create event publisher.
		var publisher events.Publisher
		if cfg.NATSURL != "" {
			pub, err := events.NewNATSPublisher(cfg.NATSURL)
			if err != nil {
				st.Close()
				return err
			}
			publisher = pub
			logger.Info("events enabled", "nats_url", cfg.NATSURL)
		} else {
			publisher = &events.NoopPublisher{}
			logger.Info("events disabled (ROLLCALL_NATS_URL not set)")
		}

		notifier := multiNotifier{
			consoleNotifier{},
			events.NewBusNotifier(publisher, logger),
		}

		var prompter engine.Prompter
		if ui.IsInteractive() {
			prompter = newTerminalPrompter()
		} else {
			logger.Info("stdin is not a terminal, enrollments use placeholder names")
		}

		eng := engine.New(r, st, notifier, prompter, logger)

		// Open the serial link. Open failure leaves the system
		// disconnected but alive; there is nothing to read, so exit
		// with the error rather than idle forever.
		transport, err := device.OpenSerial(port, baud)
		if err != nil {
			notifier.Connection(fmt.Sprintf("Failed to connect to scanner on %s", port), false)
			publisher.Close()
			st.Close()
			return err
		}
		notifier.Connection(fmt.Sprintf("Connected to scanner on %s", port), true)
		logger.Info("serial port open", "port", port, "baud", baud)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		reader := device.NewReader(transport, eng.HandleEvent, logger)
		readerDone := make(chan struct{})
		go func() {
			reader.Run(ctx)
			close(readerDone)
		}()

		// Start the backup scheduler if a destination is configured.
		var scheduler *backup.Scheduler
		if cfg.BackupInterval > 0 && cfg.BackupS3Bucket != "" {
			s3Dest, err := backup.NewS3Destination(
				context.Background(),
				cfg.BackupS3Bucket,
				cfg.BackupS3Prefix,
				cfg.BackupS3Region,
				cfg.BackupS3Endpoint,
			)
			if err != nil {
				logger.Error("failed to create S3 backup destination", "err", err)
			} else {
				scheduler = backup.NewScheduler(r.Students, []backup.Destination{s3Dest}, cfg.BackupInterval, logger)
				scheduler.Start()
				logger.Info("backup scheduler started", "interval", cfg.BackupInterval, "bucket", cfg.BackupS3Bucket)
			}
		}

		logger.Info("rollcall started", "port", port, "data_file", cfg.DataFile)

		// Wait for SIGINT/SIGTERM or the device going away.
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigCh:
			logger.Info("received signal, shutting down", "signal", sig)
		case <-readerDone:
			logger.Info("device stream ended, shutting down")
		}

		// Graceful shutdown: close the port so the reader exits, then
		// wait for any in-flight resolution to settle.
		transport.Close()
		cancel()
		<-readerDone
		eng.Wait()

		if scheduler != nil {
			scheduler.Stop()
			logger.Info("backup scheduler stopped")
		}
		if err := publisher.Close(); err != nil {
			logger.Error("error closing publisher", "err", err)
		}
		if err := st.Close(); err != nil {
			logger.Error("error closing store", "err", err)
		}

		logger.Info("shutdown complete")
		return nil
	},
}

// resolveDevice picks the serial port and baud rate: explicit flags win,
// then a named profile, then the active profile, then the environment.
func resolveDevice(cfg *config.Config) (string, int, error) {
	port, baud := cfg.SerialPort, cfg.BaudRate

	devices, err := config.LoadDevices()
	if err != nil {
		return "", 0, err
	}
	if runDeviceName != "" {
		d, ok := devices.Devices[runDeviceName]
		if !ok {
			return "", 0, fmt.Errorf("unknown device profile %q", runDeviceName)
		}
		port = d.Port
		if d.Baud > 0 {
			baud = d.Baud
		}
	} else if d, ok := devices.ActiveDevice(); ok {
		port = d.Port
		if d.Baud > 0 {
			baud = d.Baud
		}
	}

	if runPort != "" {
		port = runPort
	}
	if runBaud > 0 {
		baud = runBaud
	}
	return port, baud, nil
}

func init() {
	runCmd.Flags().StringVar(&runPort, "port", "", "serial port (overrides profile and environment)")
	runCmd.Flags().IntVar(&runBaud, "baud", 0, "baud rate (overrides profile and environment)")
	runCmd.Flags().StringVar(&runDeviceName, "device", "", "named device profile to use")
}
