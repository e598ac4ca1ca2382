// Package models defines the client-side mirror of the backend's wire types:
// users and their roles, waste declarations, collector missions and
// schedules, verification payloads and local appointments.
//
// Records are read-only copies of backend state; nothing here talks to
// the network.
package models
