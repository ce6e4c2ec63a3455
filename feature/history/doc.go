// Package history persists applied cppStandard reconciliations.
//
// Every fix that rewrites at least one c_cpp_properties.json is stored as a
// Run with one RunChange per configuration. The tables live in the database
// configured under `database` (a local SQLite file by default, MySQL for
// shared setups) and are created with Repository.Migrate.
//
// # HTTP Endpoints
//
//   - GET /history?project=&limit= : latest runs, newest first.
//   - GET /history/:id : one run with its changes.
package history
