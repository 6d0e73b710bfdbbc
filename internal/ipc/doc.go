// Package ipc carries control traffic between the blackbeard CLI and
// the daemon as JSON-RPC over a Unix domain socket.
//
// The wire types are deliberately flat so the CLI never needs to link
// against pipeline internals beyond the report model.
package ipc
