// Package `server` implements calculator server application.
//
// Every request "add|sub|mul|div a b" is answered with "0 <result>"
// or "1 <error message>". Launch with:
//
//	go run . 9033
package main
