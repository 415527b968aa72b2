// Package dryrun simulates the file writes of a code-generation run.
//
// A Manager is created once per run with the caller's Policy. The generator
// calls Write, WriteToFile, Skip, Ignore or Error once per candidate output;
// the Manager checks whether the target exists, decides what a real writer
// would do, and records one Status per target path in its ledger. Nothing is
// ever written to disk. After the run the caller reads StatusMap (and, when
// capturing was enabled, CapturedTemplateData) to build a report.
//
// Decision order for a write:
//
//	exists && SkipOverwrite -> KindSkippedOverwrite
//	MinimalUpdate           -> KindWriteIfNewer
//	otherwise               -> KindWrite
//
// A Manager is safe for concurrent use. Calls for the same path race and the
// last one to reach the ledger wins.
package dryrun
