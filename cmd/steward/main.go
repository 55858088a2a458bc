// Steward orchestrator server — provides the HTTP API, runs the task
// queue workers, and drives tasks through their stage pipelines.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/stewardhq/steward/pkg/api"
	"github.com/stewardhq/steward/pkg/cleanup"
	"github.com/stewardhq/steward/pkg/compress"
	"github.com/stewardhq/steward/pkg/config"
	"github.com/stewardhq/steward/pkg/contract"
	"github.com/stewardhq/steward/pkg/database"
	"github.com/stewardhq/steward/pkg/engine"
	"github.com/stewardhq/steward/pkg/events"
	"github.com/stewardhq/steward/pkg/llm"
	"github.com/stewardhq/steward/pkg/memory"
	"github.com/stewardhq/steward/pkg/notify"
	"github.com/stewardhq/steward/pkg/store"
	"github.com/stewardhq/steward/pkg/version"
	"github.com/stewardhq/steward/pkg/workspace"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "Path to YAML configuration file (optional)")
	envPath := flag.String("env", ".env", "Path to .env file (optional)")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Info("No .env file, using existing environment", "path", *envPath)
	} else {
		slog.Info("Loaded environment", "path", *envPath)
	}

	slog.Info("Starting steward", "version", version.Full(), "config", *configPath)

	ctx := context.Background()

	// 1. Configuration: defaults, YAML overlay, environment overrides.
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database: connection pool plus embedded migrations.
	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	stores := store.New(dbClient.Client)

	// 3. One-time startup recovery: requeue tasks whose worker died
	// while this process was down. The pool's orphan loop takes over
	// from here.
	if n, err := stores.Tasks.RecoverStale(ctx); err != nil {
		slog.Error("Startup orphan recovery failed", "error", err)
	} else if n > 0 {
		slog.Info("Requeued orphaned tasks", "count", n)
	}

	// 4. Streaming infrastructure: the pg_notify bridge fans events out
	// to every pod, each pod's listener feeds its own WebSocket clients,
	// and catchup replays from the task log table.
	bridge := events.NewNotifyBridge(dbClient.DB())
	sink := events.NewSink(stores.Logs, bridge, events.SinkConfig{
		QueueSize:     cfg.Events.QueueSize,
		BatchSize:     cfg.Events.BatchSize,
		FlushInterval: cfg.Events.FlushInterval(),
	})
	catchup := events.NewLogCatchup(stores.Logs)
	connManager := events.NewConnectionManager(catchup, cfg.Events.WSWriteTimeout())

	notifyListener := events.NewNotifyListener(dbCfg.ConnString(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 5. LLM client. grpc.NewClient dials lazily; the first stage
	// execution establishes the connection.
	llmClient, err := llm.NewGRPCClient(cfg.LLM.Addr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", cfg.LLM.Addr)

	// 6. Engine collaborators.
	workspaces := workspace.NewManager(cfg, workspace.ExecRunner{}, sink)
	memStore := memory.NewStore(cfg.Memory)
	lessons := memory.NewExtractor(llmClient, cfg.LLM.Model, memStore, cfg.Memory.Enabled)
	compressor := compress.New(llmClient, cfg.LLM.Model, cfg.Features.Compression)
	contracts := contract.New(llmClient, cfg.LLM.Model, cfg.Features.StageContracts)
	notifier := notify.New(cfg.Notify)

	eng := engine.New(engine.Deps{
		Config: cfg,
		Stores: engine.Stores{
			Tasks:    stores.Tasks,
			Stages:   stores.Stages,
			Gates:    stores.Gates,
			Breakers: stores.Breakers,
			Audits:   stores.Audit,
			KPIs:     stores.KPIs,
			Skills:   stores.Skills,
		},
		Executors:   engine.NewLLMExecutors(llmClient),
		Workspaces:  workspaces,
		Sink:        sink,
		Broadcaster: bridge,
		Compressor:  compressor,
		Contracts:   contracts,
		Memory:      memStore,
		Lessons:     lessons,
		Notifier:    notifier,
		LLM:         llmClient,
	})

	// 7. Worker pool (before the HTTP server, so claimed work resumes
	// ahead of new submissions).
	pool := engine.NewPool(eng)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Retention enforcement.
	retention := cleanup.NewService(cfg.Retention, stores.Tasks, stores.Logs, stores.Triggers)
	retention.Start(ctx)

	// 9. HTTP server.
	server := api.NewServer(api.Deps{
		Config:      cfg.Server,
		Tasks:       stores.Tasks,
		Gates:       stores.Gates,
		Templates:   stores.Templates,
		Projects:    stores.Projects,
		Triggers:    stores.Triggers,
		Logs:        stores.Logs,
		Audits:      stores.Audit,
		Breakers:    stores.Breakers,
		Pool:        pool,
		WS:          connManager,
		Broadcaster: bridge,
		DB:          dbClient.DB(),
	})

	errCh := make(chan error, 1)
	go func() {
		if err := server.Run(); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Steward started",
		"addr", cfg.Server.Addr,
		"workers", cfg.Worker.WorkerCount,
		"max_concurrent_tasks", cfg.Worker.MaxConcurrentTasks)

	// 10. Wait for a shutdown signal or a server error.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown, reverse of startup: stop accepting HTTP,
	// drain workers, stop retention, flush the sink, then tear down the
	// listener. The database client closes last via defer.
	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := server.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	pool.Stop()
	retention.Stop()

	if err := sink.Drain(10 * time.Second); err != nil {
		slog.Warn("Event sink drain incomplete", "error", err)
	}

	listenerCtx, listenerCancel := context.WithTimeout(ctx, 5*time.Second)
	defer listenerCancel()
	notifyListener.Stop(listenerCtx)

	slog.Info("Shutdown complete")
}
