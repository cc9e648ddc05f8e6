package db

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // регистрация драйвера Postgres
	_ "github.com/golang-migrate/migrate/v4/source/file"       // регистрация файлового источника
	_ "github.com/lib/pq"                                      // регистрация драйвера Postgres для миграций
)

// RunMigrations применяет миграции базы данных. Путь к файлам миграций
// переопределяется переменной окружения MIGRATIONS_PATH.
func RunMigrations(dsn string) error {
	path := os.Getenv("MIGRATIONS_PATH")
	if path == "" {
		path = "file://./migrations"
	}

	m, err := migrate.New(path, dsn)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %v", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("No new migrations to apply. Database is up-to-date.")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %v", err)
	}

	log.Println("Migrations applied successfully.")
	return nil
}
