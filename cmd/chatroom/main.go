package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/wtask/dian/internal/chatroom"
	"github.com/wtask/dian/internal/logger"
	"github.com/wtask/dian/internal/sockets"
)

func main() {
	log := logger.New(Config.Log).With(slog.String("app", BinaryName))
	log.Info("starting", slog.String("version", Version), slog.String("port", Config.Port))

	listener, err := sockets.BindAt(Config.Port, Config.Backlog, log)
	if err != nil {
		log.Error("unable to listen", logger.Error(err))
		os.Exit(1)
	}

	loop, err := chatroom.New(
		sockets.Sockets{},
		chatroom.Connection{ID: listener.FD(), Remote: listener.Addr().String()},
		chatroom.WithLogger(log),
	)
	if err != nil {
		log.Error("can't start chatroom", logger.Error(err))
		listener.Close()
		os.Exit(1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	failed := make(chan error, 1)
	go func() { failed <- loop.Run() }()

	select {
	case err := <-failed:
		log.Error("chatroom stopped", logger.Error(err))
		os.Exit(4)
	case s := <-sig:
		// open descriptors are released by the OS on exit
		log.Info("got stop signal", slog.String("signal", s.String()))
	}
}
