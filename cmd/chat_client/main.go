package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/wtask/dian/internal/client"
	"github.com/wtask/dian/internal/logger"
	"github.com/wtask/dian/internal/netutil"
)

func main() {
	log := logger.NewWithWriter(os.Stderr, Config.Log).With(slog.String("app", BinaryName))

	conn, err := netutil.Dial(Config.Host, Config.Port, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: failed to connect: %s\n", BinaryName, err)
		os.Exit(2)
	}
	fmt.Printf("%s: connected to %s\n", BinaryName, conn.RemoteAddr())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = client.Chat(ctx, conn, os.Stdin, os.Stdout)
	stop()
	conn.Close()

	switch {
	case err == nil, errors.Is(err, context.Canceled):
	case errors.Is(err, client.ErrServerClosed):
		fmt.Fprintf(os.Stderr, "%s: server closed.\n", BinaryName)
		os.Exit(1)
	default:
		log.Error("session failed", logger.Error(err))
		os.Exit(1)
	}
}
