// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key or a bearer token) for every route
//     except the configured public prefixes.
//   - rayid: tags each request with a ray id, stored in the Fiber locals and
//     echoed in the X-Ray-ID response header, so logger.WithRayID can trace it.
//
// The start command registers rayid first, then request logging, then auth.
package middleware
