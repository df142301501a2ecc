// Package `chatroom` implements relay server application: every chunk of
// text received from a member is sent to all other members as
// "member <id>: <text>".
//
// Launch server with command:
//
//	go run . 9034
//
// Any TCP client, e.g. `nc localhost 9034` or `chat_client`, may join.
// Logging is tuned with LOG_LEVEL and LOG_FORMAT environment variables,
// listen backlog with LISTEN_BACKLOG.
package main
