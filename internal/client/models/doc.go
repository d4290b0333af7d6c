// Package models defines the console's domain types: roles and their
// permissions, directory accounts and sessions, the four operational
// collections with their seed data, and user preferences.
package models
