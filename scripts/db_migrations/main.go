package main

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	server_config "github.com/carson-networks/bank-dashboard/internal/config"
	"github.com/carson-networks/bank-dashboard/internal/storage"
)

func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	m, err := storage.NewMigrator(env.SQLitePath)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewMigrator")
		return
	}
	defer m.Close()

	preMigrationVersion, _, err := m.Version()
	if err != nil && errors.Is(err, migrate.ErrNilVersion) {
		preMigrationVersion = 0
	} else if err != nil {
		logrus.WithError(err).Fatal("m.Version.preMigrationVersion")
		return
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logrus.WithError(err).Fatal()
		return
	}

	postMigrationVersion, _, err := m.Version()
	if err != nil {
		logrus.WithError(err).Fatal("m.Version.postMigrationVersion")
		return
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Info("Migration status")
}
