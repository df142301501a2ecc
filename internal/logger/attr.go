package logger

import "log/slog"

// Error - error attribute, empty if err is nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Conn - connection descriptor attribute.
func Conn(id int) slog.Attr {
	return slog.Int("conn", id)
}

// Remote - remote peer address attribute, empty if addr is empty.
func Remote(addr string) slog.Attr {
	if addr == "" {
		return slog.Attr{}
	}
	return slog.String("remote", addr)
}

// Size - payload size attribute.
func Size(n int) slog.Attr {
	return slog.Int("bytes", n)
}

// Session - session identifier attribute.
func Session(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("session", id)
}
