// Package hextypes provides common fixed-length hex types.
package hextypes

//go:generate go run github.com/unkn0wn-root/zerohex/cmd/zerohex -type=Address,Hash -msgpack -cbor -proto

// Address is a 20-byte account address.
type Address [20]byte

// Hash is a 32-byte digest.
type Hash [32]byte
