// Package backup keeps copies of c_cpp_properties.json in object storage.
//
// Before a fix rewrites any file, the cppstandard feature hands the pending
// writes to Uploader.Upload. Each original lands at
//
//	backups/<project>/<run id>/<workspace>/c_cpp_properties.json
//
// so a run can be listed, restored or pruned later.
package backup
