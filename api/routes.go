package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-dashboard/internal/directory"
	"github.com/carson-networks/bank-dashboard/internal/handlers/v1/account"
	"github.com/carson-networks/bank-dashboard/internal/handlers/v1/biller"
	"github.com/carson-networks/bank-dashboard/internal/handlers/v1/status"
	"github.com/carson-networks/bank-dashboard/internal/handlers/v1/transaction"
	workflowhandlers "github.com/carson-networks/bank-dashboard/internal/handlers/v1/workflow"
	"github.com/carson-networks/bank-dashboard/internal/logging"
	"github.com/carson-networks/bank-dashboard/internal/service"
	"github.com/carson-networks/bank-dashboard/internal/workflow"
)

type Rest struct {
	Logger    *logrus.Logger
	Port      string
	Service   *service.Service
	Workflows *workflow.Manager
	Billers   directory.BillerDirectory
}

func (r *Rest) Serve(ctx context.Context) error {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("bank-dashboard", "1.0.0"))
	humaAPI.UseMiddleware(logging.HumaMiddleware(r.Logger))

	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	account.NewDepositDetailsHandler(r.Service.Account).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Ledger).Register(humaAPI)
	transaction.NewRecentTransactionsHandler(r.Service.Ledger).Register(humaAPI)
	biller.NewListBillersHandler(r.Billers).Register(humaAPI)
	workflowhandlers.NewOpenWorkflowHandler(r.Workflows).Register(humaAPI)
	workflowhandlers.NewUpdateDraftHandler(r.Workflows, r.Billers).Register(humaAPI)
	workflowhandlers.NewAdvanceWorkflowHandler(r.Workflows).Register(humaAPI)
	workflowhandlers.NewBackWorkflowHandler(r.Workflows).Register(humaAPI)
	workflowhandlers.NewConfirmWorkflowHandler(r.Workflows).Register(humaAPI)
	workflowhandlers.NewCloseWorkflowHandler(r.Workflows).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(60) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	listenErr := make(chan error, 1)
	go func() {
		r.Logger.Info("HttpServer.Serve.listening")
		listenErr <- server.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
