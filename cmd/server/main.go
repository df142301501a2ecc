package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/wtask/dian/internal/calc"
	"github.com/wtask/dian/internal/logger"
	"github.com/wtask/dian/internal/netutil"
)

func main() {
	log := logger.New(Config.Log).With(slog.String("app", BinaryName))
	log.Info("starting", slog.String("version", Version), slog.String("port", Config.Port))

	listener, err := netutil.Listen(Config.Port, log)
	if err != nil {
		log.Error("unable to listen", logger.Error(err))
		os.Exit(1)
	}

	server, err := calc.NewServer(calc.WithLogger(log))
	if err != nil {
		log.Error("can't start calculator server", logger.Error(err))
		listener.Close()
		os.Exit(1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	served := make(chan error, 1)
	go func() { served <- server.Serve(listener) }()

	select {
	case err := <-served:
		if !errors.Is(err, calc.ErrServerClosed) {
			log.Error("calculator server stopped", logger.Error(err))
			os.Exit(1)
		}
	case s := <-sig:
		log.Info("got stop signal", slog.String("signal", s.String()))
		log.Info("calculator server stopped", slog.Duration("elapsed", server.Shutdown(Config.ShutdownTimeout)))
	}
}
