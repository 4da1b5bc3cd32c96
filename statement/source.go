// SPDX-License-Identifier: MIT
package statement

import "context"

// Source is the external collaborator that produces the filtered,
// chronologically sorted statement stream and typed attribute metadata.
// Loading from persistent storage is explicitly out of scope for this
// module; Source is the seam a real storage adapter plugs into.
type Source interface {
	// LoadAndFilter returns statements sorted ascending by Timestamp,
	// already filtered to whatever selection the caller configured on the
	// collaborator (the selection mechanism itself is out of scope here).
	LoadAndFilter(ctx context.Context) ([]Statement, error)

	// ExtractLabels returns the ordered, de-duplicated set of labels that
	// varName takes across seq. isDocumentAttribute selects whether the
	// collaborator resolves the attribute at the document level or the
	// statement level.
	ExtractLabels(seq []Statement, varName string, isDocumentAttribute bool) ([]string, error)

	// DataType reports the declared kind of varName.
	DataType(varName string) (DataType, error)

	// OriginalStatements returns the full, unfiltered statement population,
	// used only to compute the integer-range fill-in for qualifiers.
	OriginalStatements(ctx context.Context) ([]Statement, error)
}
