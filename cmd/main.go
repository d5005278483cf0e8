package main

import (
	"context"
	goerrors "errors"
	"ext-data/auth"
	"ext-data/errors"
	badgerstore "ext-data/infrastructure/storage"
	"ext-data/internal"
	"ext-data/observability"
	"ext-data/repositories"
	"ext-data/runtime"
	"ext-data/services"
	"ext-data/storage"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes reported to the shell or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ext-data terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the database, the repository registry and the unit of work, then commits
// one batch made of an account, a few chat messages and the files given on the command line,
// and finally signs the account in.
// Deferred cleanups run before main exits.
func run() (int, error) {
	email := flag.String("email", "demo@example.com", "Account to register")
	password := flag.String("password", "ComplexPass123!", "Password of the account")
	room := flag.Int("room", 1, "Room the demo messages are written to")
	flag.Parse()

	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	opts := badger.DefaultOptions(config.BadgerFilepath).WithLogger(nil)
	if config.BadgerInMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Repository providers
	registry := runtime.NewRegistry()
	err = goerrors.Join(
		runtime.Register(registry, func() repositories.IMessageRepository {
			return badgerstore.NewMessageRepository(log, config.LimitMessages)
		}),
		runtime.Register(registry, func() repositories.IUserRepository {
			return badgerstore.NewUserRepository()
		}),
		runtime.Register(registry, func() repositories.IFileTaskRepository {
			return badgerstore.NewFileTaskRepository(log)
		}),
	)
	if err != nil {
		return exitConfig, err
	}
	log.Debug("Repositories registered", "capabilities", registry.Capabilities())

	// 4. Unit of work
	monitor := observability.NewCommitMonitor()
	storageContext := badgerstore.NewBadgerContext(db, log, badgerstore.WithMonitor(monitor))
	unitOfWork, err := storage.NewStorage(storageContext, registry)
	if err != nil {
		return exitConfig, err
	}
	defer monitor.LogStats(log)

	// 5. Account, messages and file tasks staged in the same unit of work
	if err = config.PasswordPolicy().Validate(); err != nil {
		return exitConfig, fmt.Errorf("password policy: %w", err)
	}
	accounts := services.NewAccountService(unitOfWork,
		auth.NewTokenIssuer(config.AuthTokenSecret, config.AuthTokenDuration),
		config.PasswordPolicy(), log)
	if _, err = accounts.Register(*email, *password); err != nil && !goerrors.Is(err, errors.ErrUserAlreadyExists) {
		return exitRuntime, fmt.Errorf("account registration failed: %w", err)
	}

	messages, ok := storage.GetRepository[repositories.IMessageRepository](unitOfWork)
	if !ok {
		return exitConfig, fmt.Errorf("%w: no provider for the message repository", errors.ErrConfiguration)
	}
	for i, content := range []string{"hello", "how are you?", "bye"} {
		err = messages.StoreMessage(repositories.DiskMessage{
			ID:      uuid.New(),
			Room:    *room,
			Author:  *email,
			Content: content,
			At:      time.Now().UTC().Add(time.Duration(i) * time.Millisecond),
		})
		if err != nil {
			storageContext.RejectChanges()
			return exitRuntime, err
		}
	}

	ingest := services.NewIngestService(unitOfWork, log)
	if staged, err := ingest.Enqueue(flag.Args(), repositories.NORMAL); err != nil {
		log.Warn("Files not enqueued", "error", err)
	} else {
		log.Info("Files staged", "count", staged)
	}

	// 6. One commit for everything staged above
	ctx, cancel := context.WithTimeout(context.Background(), config.CommitTimeout)
	defer cancel()
	affected, err := unitOfWork.SaveChangesAsyncWith(ctx, config.AcceptAllChangesOnSuccess)
	if err != nil {
		return exitRuntime, fmt.Errorf("commit failed: %w", err)
	}
	if !config.AcceptAllChangesOnSuccess {
		for _, entry := range storageContext.Changes() {
			log.Debug("Committed change", "key", string(entry.Key), "state", entry.State)
		}
		storageContext.AcceptAllChanges()
	}
	log.Info("Unit of work committed", "context", storageContext.ID(), "affected", affected)

	// 7. Read back through a fresh repository instance
	messages, _ = storage.GetRepository[repositories.IMessageRepository](unitOfWork)
	stored, _, err := messages.GetMessages(*room, nil)
	if err != nil {
		return exitRuntime, err
	}
	for _, message := range stored {
		log.Info("Message", "room", message.Room, "author", message.Author, "content", message.Content)
	}

	// 8. Sign in against the committed account
	if _, err = accounts.Authenticate(*email, *password); err != nil {
		return exitRuntime, fmt.Errorf("authentication failed: %w", err)
	}
	log.Info("Access token issued", "email", *email)
	return exitOK, nil
}
