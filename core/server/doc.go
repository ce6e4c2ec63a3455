// Package server holds the HTTP server configuration.
//
// The start command builds a Fiber app from it: the listen address comes from
// Host and Port, and a non-empty ApiKey turns on the auth middleware for every
// route except the swagger UI.
package server
