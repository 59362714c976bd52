package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"hearthplan/internal/cli"
	"hearthplan/internal/db"
	"hearthplan/internal/generator"
	"hearthplan/internal/llm"
	"hearthplan/internal/reconcile"
	"hearthplan/internal/repository"
	"hearthplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.hearthplan/hearthplan.db
	dbPath := os.Getenv("HEARTHPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".hearthplan", "hearthplan.db")
	}

	// Plain output when piped.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	// Wire repositories
	memberRepo := repository.NewSQLiteMemberRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	commitmentRepo := repository.NewSQLiteCommitmentRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	blockRepo := repository.NewSQLiteBlockRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// The generator degrades to proposing nothing when the LLM is disabled;
	// generation still materializes commitments and keeps manual blocks.
	var gen generator.Generator = generator.Noop{}
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		gen = generator.NewLLMGenerator(llm.NewOllamaClient(llmCfg, observer))
	}

	engine := reconcile.NewEngine(scheduleRepo, blockRepo, memberRepo,
		goalRepo, commitmentRepo, gen, uow, logger)

	app := &cli.App{
		Members:     service.NewMemberService(memberRepo),
		Goals:       service.NewGoalService(goalRepo, memberRepo),
		Commitments: service.NewCommitmentService(commitmentRepo, memberRepo),
		Blocks:      service.NewBlockService(blockRepo, scheduleRepo),
		Schedules:   service.NewScheduleService(engine, scheduleRepo, blockRepo, memberRepo),
		Logger:      logger,
	}

	return cli.NewRootCmd(app).Execute()
}

func logLevel() slog.Level {
	switch os.Getenv("HEARTHPLAN_LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
