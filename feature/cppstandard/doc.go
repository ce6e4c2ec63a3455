// Package cppstandard exposes the cppStandard reconciliation as a service.
//
// Service.Inspect opens the project, runs the reconciler and returns a
// Report without touching the disk. Service.Fix does the same and then
// saves the rewritten c_cpp_properties.json files, optionally uploading the
// originals to object storage first and recording the run in the history
// database. Diagnostics go both to the Report and to the zap logger.
//
// The CLI uses Plan and Apply directly so it can ask for confirmation in
// between.
//
// # HTTP Endpoints
//
//   - GET /cppstandard : inspect (optional ?cpp_standard= override).
//   - POST /cppstandard/fix : apply, body {"cpp_standard": "c++20", "backup": true}.
package cppstandard
