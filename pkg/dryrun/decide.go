package dryrun

import "github.com/arthur-debert/gendry/pkg/types"

// skipOverwriteContext is recorded when overwrite protection blocks a write
const skipOverwriteContext = "File exists and skip overwrite option is enabled."

// Decide returns what a real writer would do with a target. The first
// matching rule wins: overwrite protection on an existing file, then
// minimal update, then a plain write.
func Decide(exists, skipOverwrite, minimalUpdate bool) Kind {
	switch {
	case exists && skipOverwrite:
		return KindSkippedOverwrite
	case minimalUpdate:
		return KindWriteIfNewer
	default:
		return KindWrite
	}
}

// DecideFor applies Decide with the flags of policy
func DecideFor(policy types.Policy, exists bool) Kind {
	return Decide(exists, policy.SkipOverwrite, policy.MinimalUpdate)
}
