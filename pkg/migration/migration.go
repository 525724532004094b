package migration

import (
	"errors"
	"fmt"
	"path"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

const defaultSourceURL = "file://migrations"

// DatabaseURL converts a go-sql-driver DSN into a golang-migrate database url
func DatabaseURL(dsn string) string {
	return "mysql://" + dsn
}

func newMigrate(sourceURL string, dsn string) *migrate.Migrate {
	m, err := migrate.New(sourceURL, DatabaseURL(dsn))
	if err != nil {
		panic(err)
	}
	return m
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand returns the cobra command tree for running migrations
func MigrateCommand(dsn string) *cobra.Command {
	root := &cobra.Command{
		Use:   "migrate",
		Short: "migrate the database schema",
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "apply all up migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				m := newMigrate(defaultSourceURL, dsn)
				defer func() { _, _ = m.Close() }()
				return ignoreNoChange(m.Up())
			},
		},
		&cobra.Command{
			Use:   "down [N]",
			Short: "roll back N migrations, all when N is omitted",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				m := newMigrate(defaultSourceURL, dsn)
				defer func() { _, _ = m.Close() }()

				if len(args) == 0 {
					return ignoreNoChange(m.Down())
				}
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				return ignoreNoChange(m.Steps(-n))
			},
		},
		&cobra.Command{
			Use:   "force VERSION",
			Short: "set the version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				m := newMigrate(defaultSourceURL, dsn)
				defer func() { _, _ = m.Close() }()
				return m.Force(version)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "print the current version",
			RunE: func(cmd *cobra.Command, args []string) error {
				m := newMigrate(defaultSourceURL, dsn)
				defer func() { _, _ = m.Close() }()

				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Println("version:", version, "dirty:", dirty)
				return nil
			},
		},
	)
	return root
}

// MigrateUpForTesting applies every migration under rootDir/migrations
func MigrateUpForTesting(rootDir string, dsn string) {
	m := newMigrate("file://"+path.Join(rootDir, "migrations"), dsn)
	defer func() { _, _ = m.Close() }()

	if err := ignoreNoChange(m.Up()); err != nil {
		panic(err)
	}
}
