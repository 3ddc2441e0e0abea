package main

import (
	"context"
	"os"
	"syscall"

	"github.com/wayfarerhq/wayfarer/internal/config"
	"github.com/wayfarerhq/wayfarer/internal/logging"
	"github.com/wayfarerhq/wayfarer/internal/telemetry"
	"github.com/wayfarerhq/wayfarer/internal/waitfor"
)

// The entrypoint owns container startup: wait for PostgreSQL, run the
// test suite, then replace this process with the server binary.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Invalid configuration", err, nil)
	}

	gate := waitfor.New("PostgreSQL", waitfor.PostgresProbe(cfg.PostgresDSN()),
		cfg.DBWaitAttempts, cfg.DBWaitInterval,
		waitfor.WithProbeHook(telemetry.ObserveProbe))
	if err := gate.Wait(context.Background()); err != nil {
		logging.Error("Dependency wait failed", err, logging.Fields{"dependency": "PostgreSQL"})
		os.Exit(1)
	}

	// A failing suite is logged but does not block the handoff. That
	// matches the long-standing container behavior; revisit whether it
	// should gate startup instead.
	if err := runTests(context.Background(), cfg.TestCommand); err != nil {
		logging.Warn("Test run failed; starting server anyway", logging.Fields{"error": err.Error()})
	}

	argv := serverArgv(cfg.ServerBinary, nil)
	logging.Info("Handing off to server", logging.Fields{"binary": cfg.ServerBinary})
	if err := syscall.Exec(cfg.ServerBinary, argv, os.Environ()); err != nil {
		logging.Fatal("Server handoff failed", err, logging.Fields{"binary": cfg.ServerBinary})
	}
}
