package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// EnsureSchema creates the users and projects collections if they are
// missing. It only ever applies forward; an existing schema is left alone.
func EnsureSchema(databaseURL, name string, log *zap.Logger) error {
	dsn, err := DSN(databaseURL, name)
	if err != nil {
		return err
	}

	src, err := iofs.New(schemaFS, "schema")
	if err != nil {
		return fmt.Errorf("schema source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return fmt.Errorf("schema init: %w", err)
	}
	defer m.Close()

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Debug("collections already present")
	case err != nil:
		return fmt.Errorf("create collections: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("schema version %d is dirty", version)
	}
	log.Info("collections ready", zap.Uint("schema_version", version))
	return nil
}
