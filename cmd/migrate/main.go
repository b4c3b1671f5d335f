package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/yourusername/trivia-bank/internal/config"
)

const usage = "usage: migrate up | down | force N | version"

// command - разобранная команда утилиты миграций
type command struct {
	name    string
	version int
}

func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, errors.New(usage)
	}

	switch args[0] {
	case "up", "down", "version":
		if len(args) != 1 {
			return command{}, errors.New(usage)
		}
		return command{name: args[0]}, nil
	case "force":
		if len(args) != 2 {
			return command{}, errors.New(usage)
		}
		version, err := strconv.Atoi(args[1])
		if err != nil || version < -1 {
			return command{}, fmt.Errorf("invalid version %q: %s", args[1], usage)
		}
		return command{name: "force", version: version}, nil
	default:
		return command{}, fmt.Errorf("unknown command %q: %s", args[0], usage)
	}
}

// migrator - часть *migrate.Migrate, нужная утилите
type migrator interface {
	Up() error
	Down() error
	Force(version int) error
	Version() (uint, bool, error)
}

func run(m migrator, cmd command) error {
	switch cmd.name {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate up: %w", err)
		}
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate down: %w", err)
		}
	case "force":
		// Снимает флаг dirty после упавшей миграции
		if err := m.Force(cmd.version); err != nil {
			return fmt.Errorf("migrate force %d: %w", cmd.version, err)
		}
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		fmt.Println("version: none")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate version: %w", err)
	}
	fmt.Printf("version: %d (dirty: %t)\n", version, dirty)
	return nil
}

func main() {
	cmd, err := parseCommand(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	m, err := migrate.New(cfg.Database.MigrationsPath, cfg.Database.PostgresURL())
	if err != nil {
		log.Fatalf("Failed to open migrations: %v", err)
	}
	defer m.Close()

	if err := run(m, cmd); err != nil {
		log.Fatal(err)
	}
}
