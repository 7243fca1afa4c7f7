// Package cli provides the interactive AuthKeeper admin command-line client.
//
// It wires configuration, the gRPC API client, and an interactive REPL.
// Typical flow: register or log in, then inspect the session with whoami.
//
// Key features:
//   - Register / Login (passwords read without echo and wiped after use)
//   - Whoami (shows the identity behind the current access token)
//   - Ping (server availability check)
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
