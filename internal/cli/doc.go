// Package cli is the interactive front end of the voice notes app: a
// small REPL that reads commands, invokes the account and recorder
// services, and renders snapshots of the observable store. It owns no
// domain logic of its own.
package cli
