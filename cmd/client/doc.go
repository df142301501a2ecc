// Package `client` implements interactive calculator client.
//
// Every line typed is sent to the calculator server and the answer is printed:
//
//	go run . localhost 9033
//	client: Enter your message to server: add 2 3
//	client: result from server: 5
package main
