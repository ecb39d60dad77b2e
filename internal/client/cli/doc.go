// Package cli provides the interactive Beauty Ease command-line client.
//
// It wires configuration, the local store, the API client, and an
// interactive REPL organized around the application's views. Typical flow:
// restore or prompt for a session, start a background connectivity watcher,
// and execute user commands.
//
// Key features:
//   - Register / Login / Logout backed by the hosted API
//   - Skin scan with camera capture or file upload and a simulated analysis
//   - Product shop with filters, wishlist, and cart
//   - Makeup tutorial browser
//   - Specialist consultation booking
//   - Profile viewing and editing
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
