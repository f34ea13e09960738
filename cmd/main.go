package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpc2 "readroom/grpc"
	"readroom/moderation"
	pbchat "readroom/proto/chat"
	pbsync "readroom/proto/sync"
	"readroom/repositories"
	"readroom/runtime"
	"readroom/runtime/workers"
	"readroom/services"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for gRPC and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	censoredChar, err := config.CharacterRune()
	if err != nil {
		return err
	}

	// 2. Databases (BadgerDB for history, Bluge for search)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge writer...")
		_ = blugeWriter.Close()
	}()

	// 3. Moderation
	censored, err := moderation.LoadCensoredWords()
	if err != nil {
		return fmt.Errorf("failed to load censored words: %w", err)
	}
	log.Info(fmt.Sprintf("Loaded %d censored words for languages %v", len(censored.Words), censored.Languages))
	moderator, err := moderation.NewModerator(censored.Words, censoredChar)
	if err != nil {
		return fmt.Errorf("failed to build moderator: %w", err)
	}

	// 4. Engine wiring
	registry := runtime.NewRegistry()
	broadcaster := runtime.NewBroadcaster(log, config.SinkTimeout)
	messageRepository := repositories.NewMessageRepository(db, log, config.LimitMessages)
	messageIndex := repositories.NewMessageIndex(blugeWriter, log)

	engine := runtime.NewEngine(log, registry, broadcaster,
		messageRepository, messageIndex,
		runtime.TrustAllMembership{},
		runtime.StaticPageCounter{Total: config.PageCount},
		moderator,
	)
	syncService := services.NewSyncService(engine)
	chatService := services.NewChatService(engine, config.MaxContentLength)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Background workers
	sup := workers.NewSupervisor(log)
	sup.Add(
		workers.NewJanitorWorker(log, registry, config.SweepInterval, config.SessionTTL),
		workers.NewTelemetryWorker(log, registry, config.MetricInterval),
	)
	go sup.Run(ctx)

	// 7. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer()
	pbsync.RegisterReadingSyncServiceServer(s, grpc2.NewSyncServer(log, syncService, config.ConnectionBufferSize))
	pbchat.RegisterChatServiceServer(s, grpc2.NewChatServer(log, chatService, config.ConnectionBufferSize))

	// Use an error channel to capture Serve() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	s.GracefulStop()
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
