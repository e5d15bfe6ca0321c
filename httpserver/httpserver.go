package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/n0rdy/mockdata/common"
	"github.com/n0rdy/mockdata/generator"
	"github.com/n0rdy/mockdata/httpserver/api"
	"github.com/n0rdy/mockdata/httpserver/models"
	"github.com/n0rdy/mockdata/logger"
)

const shutdownTimeout = 5 * time.Second

// Start serves the API until the shutdown endpoint is called or the server fails.
func Start(conf *common.Conf, gen *generator.Generator, info models.InfoResponse, openApiContent []byte) error {
	shutdownCh := make(chan struct{})
	failedCh := make(chan error, 1)

	mockdataRouter, err := api.NewMockdataRouter(gen, info, openApiContent, shutdownCh)
	if err != nil {
		logger.Error("failed to create router", err)
		return err
	}
	httpRouter := mockdataRouter.NewRouter()

	addr := net.JoinHostPort(conf.Server.Host, strconv.Itoa(conf.Server.Port))
	logger.Info("http: starting server at " + addr)

	server := &http.Server{Addr: addr, Handler: httpRouter, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		err := server.ListenAndServe()
		if err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				logger.Info("server shutdown")
			} else {
				logger.Error("server failed", err)
			}
			failedCh <- err
		}
	}()

	select {
	case <-shutdownCh:
		logger.Info("server shutdown requested")
		shutdownServer(server)
		return nil
	case err := <-failedCh:
		return err
	}
}

func shutdownServer(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		logger.Error("graceful shutdown failed, closing the server", err)
		server.Close()
	}
}
