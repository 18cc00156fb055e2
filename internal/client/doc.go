// Package client assembles the carbon client application: it owns the
// lifecycle that starts the background workers, runs the terminal shell and
// shuts everything down when the user exits.
package client
