// Package integrity provides health checks for everything around the
// reconciler.
//
// # Checks Provided
//
//   - Workspace: both well-known folders are present in the .code-workspace,
//     their c_cpp_properties.json files parse, and every configuration gets a
//     cppStandard from somewhere. Reported only; fixing needs a human.
//   - Storage: the backup bucket and its backups/ folder exist. Fixable.
//   - Server: the history tables match the GORM models (columns, types).
//     Fixable by running the migration.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/workspace : Runs the workspace check.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
//   - GET /integrity/server : Runs the server schema check (supports ?fix=true).
package integrity
