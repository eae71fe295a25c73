// Package scriptfile loads rename scripts from TOML or YAML files.
//
// A script file declares one or more trees, each with directories,
// standalone files, and default operations. Rules, expressions, and
// operations are written as tagged tables whose "kind" (or "op")
// field selects the variant. Load parses the document, compiles it
// into builders, and returns a runnable script.
package scriptfile
