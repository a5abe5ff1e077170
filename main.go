package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/bank-dashboard/api"
	"github.com/carson-networks/bank-dashboard/internal/config"
	"github.com/carson-networks/bank-dashboard/internal/directory"
	"github.com/carson-networks/bank-dashboard/internal/logging"
	"github.com/carson-networks/bank-dashboard/internal/notify"
	"github.com/carson-networks/bank-dashboard/internal/service"
	"github.com/carson-networks/bank-dashboard/internal/storage"
	"github.com/carson-networks/bank-dashboard/internal/workflow"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("bank-dashboard starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	ledgerStore, err := storage.Open(envConfig.SQLitePath)
	if err != nil {
		logrus.WithError(err).Fatal("storage.Open")
		return
	}
	defer ledgerStore.Close()

	accounts := directory.NewStaticAccounts()
	billers := directory.NewStaticBillers()
	svc := service.NewService(ledgerStore, accounts)

	workflows := workflow.NewManager(workflow.ManagerConfig{
		Billers:       billers,
		Submitter:     &workflow.SimulatedSubmitter{Latency: envConfig.SubmitLatency},
		Sink:          &notify.LogSink{Logger: logger},
		SubmitTimeout: envConfig.SubmitTimeout,
		SessionTTL:    envConfig.SessionTTL,
		Logger:        logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return workflows.Run(groupCtx)
	})

	group.Go(func() error {
		httpRest := api.Rest{
			Logger:    logger,
			Port:      envConfig.Port,
			Service:   svc,
			Workflows: workflows,
			Billers:   billers,
		}
		return httpRest.Serve(groupCtx)
	})

	if err := group.Wait(); err != nil && err != context.Canceled {
		logrus.WithError(err).Error("bank-dashboard stopped")
	}
}
