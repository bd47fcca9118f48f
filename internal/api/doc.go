// Package api implements the HTTP handlers for the to-do service:
// registration, login, and per-user todo CRUD.
package api
