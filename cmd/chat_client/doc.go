// Package `chat_client` implements interactive chatroom member.
//
// Lines typed are sent to the chatroom, everything relayed from other
// members is printed as soon as it arrives:
//
//	go run . localhost 9034
package main
