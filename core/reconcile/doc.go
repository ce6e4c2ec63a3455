// Package reconcile keeps the cppStandard of an Unreal project's
// c_cpp_properties.json files in line with the override configured for this
// tool, and reports every inconsistency it sees along the way.
//
// Three sources are compared for each well-known workspace (the game folder
// and the engine folder):
//
//  1. The override: this tool's own cppStandard setting. Absent means "not
//     configured", an empty string means "defer to cpptools".
//  2. The cpptools setting C_Cpp.default.cppStandard for the folder.
//  3. The cppStandard field of each c_cpp_properties.json configuration.
//
// When an override is set, every configuration that differs receives it.
// Values that differ from what UE5 expects (c++17) produce a single warning
// per run, however many sources disagree.
//
// # Failure model
//
// Reconcile never returns an error. If any workspace's configurations cannot
// be resolved it reports that and returns before touching anything. All other
// problems are reported through Diagnostics and processing continues.
//
// # Persistence
//
// Reconcile only edits in-memory values. Writing the files back is the
// caller's job (see project.Project.Save).
//
// # Usage
//
//	p, err := project.Open(cfg.Project)
//	if err != nil {
//	    return err
//	}
//	rec := &reconcile.Recorder{}
//	reconcile.NewStandardReconciler(cfg.Reconcile, rec).Reconcile(p)
//	saved, err := p.Save()
package reconcile
