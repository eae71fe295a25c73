// Package rename builds and executes rename trees.
//
// A Builder collects directories, standalone files, and engine-wide
// default operations. Build discovers the concrete files behind each
// directory and produces a Tree. A Tree has two terminal actions: Run
// commits real renames through the filesystem, DryRun computes the
// same (source, destination) pairs without touching it. Both detect
// duplicate source paths before renaming. A Script chains several
// trees into one invocation.
package rename
