// Command overlay runs the browser-overlay state sidecar: it connects to the
// game host over the configured bridge transport, applies inbound events to
// the session snapshot and streams render patches back to the UI surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/barleyrp/overlay/internal/bridge"
	"github.com/barleyrp/overlay/internal/config"
	"github.com/barleyrp/overlay/internal/debug"
	"github.com/barleyrp/overlay/internal/dispatcher"
	"github.com/barleyrp/overlay/internal/form"
	"github.com/barleyrp/overlay/internal/influx"
	"github.com/barleyrp/overlay/internal/inventory"
	"github.com/barleyrp/overlay/internal/journal"
	"github.com/barleyrp/overlay/internal/logging"
	"github.com/barleyrp/overlay/internal/model"
	"github.com/barleyrp/overlay/internal/monitor"
	"github.com/barleyrp/overlay/internal/notify"
	otelprovider "github.com/barleyrp/overlay/internal/otel"
	"github.com/barleyrp/overlay/internal/parser"
	"github.com/barleyrp/overlay/internal/render"
	"github.com/barleyrp/overlay/internal/state"
	"github.com/barleyrp/overlay/internal/view"
	"github.com/barleyrp/overlay/internal/zone"
)

func main() {
	configDir := flag.String("config", ".", "directory containing overlay.cfg.json")
	screenFlag := flag.String("screen", "", "startup screen (overrides config)")
	nameFlag := flag.String("name", "", "display name (overrides config)")
	flag.Parse()

	if err := run(*configDir, *screenFlag, *nameFlag); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configDir, screenArg, nameArg string) error {
	sessionStart := time.Now()

	if err := config.Load(configDir); err != nil {
		return err
	}

	// Startup parameters: flags win over config, consumed only here.
	startScreen := config.GetString("startup.screen")
	if screenArg != "" {
		startScreen = screenArg
	}
	displayName := config.GetString("startup.name")
	if nameArg != "" {
		displayName = nameArg
	}

	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("error creating logs dir: %w", err)
	}
	logFile, err := os.Create(logging.LogFilePath(logsDir, "overlay", sessionStart))
	if err != nil {
		return fmt.Errorf("error creating log file: %w", err)
	}
	defer logFile.Close()

	// OTel provider, file-backed; OTLP endpoint optional.
	var otelLogFile *os.File
	otelCfg := otelprovider.Config{
		Enabled:      config.GetBool("otel.enabled"),
		ServiceName:  config.GetString("otel.serviceName"),
		BatchTimeout: config.GetMillis("otel.batchTimeoutMs"),
		Endpoint:     config.GetString("otel.endpoint"),
		Insecure:     config.GetBool("otel.insecure"),
	}
	if otelCfg.Enabled {
		otelLogFile, err = os.Create(filepath.Join(logsDir, fmt.Sprintf("overlay.otel.%s.log", sessionStart.Format("20060102_150405"))))
		if err != nil {
			return fmt.Errorf("error creating otel log file: %w", err)
		}
		defer otelLogFile.Close()
		otelCfg.LogWriter = otelLogFile
	}
	provider, err := otelprovider.New(otelCfg)
	if err != nil {
		return fmt.Errorf("error creating otel provider: %w", err)
	}

	// The context provider reads the router, which exists only after the
	// renderer does; resolve through a late-bound pointer.
	var routerRef *view.Router
	ctxProvider := func() []slog.Attr {
		if routerRef == nil {
			return nil
		}
		return []slog.Attr{slog.String("screen", string(routerRef.Active()))}
	}

	logManager := logging.NewSlogManager()
	logManager.Setup(logFile, config.GetString("logLevel"), provider.LoggerProvider(), ctxProvider)
	logger := logManager.Logger()

	dispatchLogger := logging.NewDispatcherLogger(
		zerolog.New(os.Stdout).With().Timestamp().Logger(),
	)
	d, err := dispatcher.New(dispatchLogger)
	if err != nil {
		return fmt.Errorf("error creating dispatcher: %w", err)
	}

	transport, err := bridge.New(bridge.Config{
		Transport: config.GetString("bridge.transport"),
		URL:       config.GetString("bridge.url"),
		Secret:    config.GetString("bridge.secret"),
	}, logger)
	if err != nil {
		return err
	}

	renderer := render.NewBridgeRenderer(transport, logger)
	router := view.New(renderer, logger, model.Screen(startScreen))
	routerRef = router

	notifier := notify.NewManager(
		renderer,
		logger,
		config.GetInt("notifications.maxVisible"),
		config.GetMillis("notifications.defaultDelayMs"),
	)

	var zones *zone.Resolver
	zoneDefs, err := config.Zones()
	if err != nil {
		return err
	}
	if len(zoneDefs) > 0 {
		zones, err = zone.NewResolver(zoneDefs, logger)
		if err != nil {
			return err
		}
		logger.Info("Zone resolver initialized", "zones", zones.Count())
	}

	sync := state.New(state.Dependencies{
		Snapshot:  model.NewSnapshot(displayName),
		Inventory: inventory.NewState(),
		Router:    router,
		Renderer:  renderer,
		Notifier:  notifier,
		Parser:    parser.New(logger),
		Sender:    transport,
		Zones:     zones,
		Logger:    logger,
		Rules: form.Rules{
			UsernameMin:         config.GetInt("validation.usernameMin"),
			LoginPasswordMin:    config.GetInt("validation.loginPasswordMin"),
			RegisterPasswordMin: config.GetInt("validation.registerPasswordMin"),
			RegisterPasswordMax: config.GetInt("validation.registerPasswordMax"),
		},
	})
	sync.RegisterHandlers(d)

	var taps []bridge.Tap

	var journalWriter *journal.Writer
	if config.GetBool("journal.enabled") {
		journalWriter, err = journal.Open(
			config.GetString("journal.path"),
			config.GetMillis("journal.flushIntervalMs"),
			logger,
		)
		if err != nil {
			return fmt.Errorf("error opening journal: %w", err)
		}
		journalWriter.Start()
		taps = append(taps, journalWriter.Tap())
	}

	var influxManager *influx.Manager
	if config.GetBool("influx.enabled") {
		influxManager = influx.NewManager(
			zerolog.New(os.Stdout).With().Timestamp().Logger(),
			filepath.Join(logsDir, "influx_backup.gz"),
		)
		if err := influxManager.Connect(); err != nil {
			logger.Warn("InfluxDB unavailable, metrics disabled", "error", err)
			influxManager = nil
		} else {
			taps = append(taps, func(e bridge.Event) {
				_ = influxManager.WritePoint(context.Background(), influx.BucketEvents, influx.EventPoint(e.Name))
			})
		}
	}

	mon := monitor.NewService(monitor.Dependencies{
		LogManager: logManager,
		Notifier:   notifier,
		Renderer:   renderer,
		Journal:    journalWriter,
		Influx:     influxManager,
		Interval:   config.GetMillis("hud.updateIntervalMs"),
	})
	if err := mon.Start(); err != nil {
		return err
	}

	var debugServer *debug.Server
	if config.GetBool("debug.enabled") {
		debugServer = debug.New(config.GetString("debug.addr"), sync, logger)
		debugServer.Start()
	}

	if err := transport.Connect(); err != nil {
		// No progress is possible without the host; surface a blocking
		// alert and keep serving diagnostics.
		logger.Error("Bridge connect failed", "error", err)
		notifier.Push(model.Notification{
			Severity: model.SeverityError,
			Header:   "Connection lost",
			Text:     "The game connection is unavailable. Please restart the client.",
			AutoHide: false,
		})
	} else if ws, ok := transport.(*bridge.WebSocketTransport); ok {
		if err := ws.Announce(map[string]string{"screen": startScreen, "name": displayName}); err != nil {
			logger.Warn("Session announce failed", "error", err)
		}
	}

	go bridge.Pump(transport, d, logger, taps...)

	logger.Info("Overlay sidecar running",
		"screen", string(router.Active()),
		"name", displayName,
		"transport", config.GetString("bridge.transport"))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mon.Stop()
	if debugServer != nil {
		if err := debugServer.Stop(shutdownCtx); err != nil {
			logger.Warn("Debug server shutdown error", "error", err)
		}
	}
	if journalWriter != nil {
		journalWriter.Close()
	}
	if err := transport.Close(); err != nil {
		logger.Warn("Bridge close error", "error", err)
	}
	if err := provider.Flush(shutdownCtx); err != nil {
		logger.Warn("OTel flush error", "error", err)
	}
	if err := provider.Shutdown(shutdownCtx); err != nil {
		logger.Warn("OTel shutdown error", "error", err)
	}
	return nil
}
