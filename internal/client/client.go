// Package client implements the interactive line clients of the calculator
// and the chatroom servers.
package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/wtask/dian/internal/message"
)

// ErrServerClosed - the server has closed the connection.
var ErrServerClosed = errors.New("client: server closed")

// bufferSize - max number of bytes read from the server at once.
const bufferSize = 100

// Calc - sends every non-empty input line as a request and prints the server reply.
// Returns nil when input is exhausted.
func Calc(conn io.ReadWriter, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	buf := make([]byte, bufferSize-1)
	for {
		fmt.Fprint(out, "client: Enter your message to server: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if _, err := io.WriteString(conn, line); err != nil {
			return fmt.Errorf("client.Calc: send: %w", err)
		}
		n, err := conn.Read(buf)
		if n == 0 && errors.Is(err, io.EOF) {
			return ErrServerClosed
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("client.Calc: recv: %w", err)
		}
		status, text, _ := strings.Cut(string(buf[:n]), " ")
		if status == "0" {
			fmt.Fprintf(out, "client: result from server: %s\n", text)
		} else {
			fmt.Fprintf(out, "client: error from server: %s\n", text)
		}
	}
}

// Chat - sends input lines to the server and prints every received chunk on its own line
// until the server closes the connection or ctx is done.
// Input exhaustion stops sending only.
func Chat(ctx context.Context, conn net.Conn, in io.Reader, out io.Writer) error {
	errc := make(chan error, 2)

	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			line := []byte(strings.TrimRight(scanner.Text(), "\r"))
			if len(line) == 0 {
				continue
			}
			if _, err := conn.Write(line); err != nil {
				errc <- fmt.Errorf("client.Chat: send: %w", err)
				return
			}
		}
	}()

	go func() {
		builder := message.Builder{}
		buf := make([]byte, bufferSize)
		for {
			n, err := conn.Read(buf)
			if n > 0 {
				builder.Write(buf[:n])
				if s := builder.Flush(); s != "" {
					fmt.Fprintln(out, s)
				}
			}
			switch {
			case err == nil:
				continue
			case errors.Is(err, io.EOF):
				errc <- ErrServerClosed
			default:
				errc <- fmt.Errorf("client.Chat: recv: %w", err)
			}
			return
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		conn.SetReadDeadline(time.Now())
		return ctx.Err()
	}
}
