package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/wtask/dian/internal/client"
	"github.com/wtask/dian/internal/logger"
	"github.com/wtask/dian/internal/netutil"
)

func main() {
	// stdout belongs to the dialog
	log := logger.NewWithWriter(os.Stderr, Config.Log).With(slog.String("app", BinaryName))

	conn, err := netutil.Dial(Config.Host, Config.Port, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: failed to connect: %s\n", BinaryName, err)
		os.Exit(2)
	}
	defer conn.Close()
	fmt.Printf("client: connected to %s\n", conn.RemoteAddr())

	err = client.Calc(conn, os.Stdin, os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, client.ErrServerClosed):
		fmt.Println("server closed.")
		conn.Close()
		os.Exit(1)
	default:
		log.Error("session failed", logger.Error(err))
		conn.Close()
		os.Exit(1)
	}
}
