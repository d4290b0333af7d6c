// Package cli is the interactive console of SiteKeeper.
//
// The console is a read–eval–print loop over the local record store. Until
// someone signs in only the sign-in commands and the theme and language
// toggles are available. Admin sign-ins go through a six-slot two-factor
// screen, drawn full-screen with bubbletea when stdin is a terminal and read
// as a line otherwise.
//
// Signed-in commands are gated by the role permission table: administrators
// manage projects, staff, inventory and tasks and can request AI audits;
// field roles see tasks, update their status and start work with a GPS lock.
package cli
