// Package operations implements the value and mutation layers of the
// rename engine: expressions, file operations, and directory operations.
//
// # Expressions
//
// An Expression produces an optional string. Absence ("no value") is a
// first-class result meaning the expression could not produce a value
// given current engine state; it is distinct from a hard evaluation
// error. Eval therefore returns (value, ok, err). Leaves read ambient
// engine state (the current file, the variable table, the indices);
// AssignVariable is the only expression that writes state.
//
// # File operations
//
// A file operation mutates the current file's destination path and
// reports whether it changed anything. An expression that produces
// absence leaves the path untouched.
//
// # Directory operations
//
// A directory operation mutates the ordered file batch of one directory
// before any file operation runs: sorting, filtering by match rule, or
// overwriting the local index.
//
// Operations and expressions are immutable once constructed and safe to
// share across files; all mutation flows through the Env threaded into
// every call.
package operations
