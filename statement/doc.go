// Package statement defines the Statement record and the StatementSource
// collaborator consumed by timeslice and engine.
//
// Statement itself is immutable and carries typed attribute access by name.
// Loading statements from persistent storage, GUI presentation, and
// file-format export are explicitly out of scope; Store, the in-memory
// reference Source below, exists only so the rest of this module is
// testable end-to-end without a real storage adapter.
package statement
