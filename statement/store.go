// SPDX-License-Identifier: MIT
package statement

import (
	"context"
	"sort"
)

// Store is an in-memory reference Source. It exists so the rest of this
// module can be exercised end-to-end without a real persistence adapter;
// it is not a replacement for a real storage adapter loading raw coded
// statements from persistent storage.
type Store struct {
	all   []Statement
	types map[string]DataType
}

// StoreOption configures a Store before construction.
type StoreOption func(*Store)

// WithDataType declares the kind of a named attribute.
func WithDataType(varName string, dt DataType) StoreOption {
	return func(s *Store) { s.types[varName] = dt }
}

// NewStore builds a Store from stmts (copied, then sorted ascending by
// Timestamp) plus the declared attribute kinds.
func NewStore(stmts []Statement, opts ...StoreOption) *Store {
	s := &Store{
		all:   append([]Statement(nil), stmts...),
		types: make(map[string]DataType),
	}
	for _, opt := range opts {
		opt(s)
	}
	sort.SliceStable(s.all, func(i, j int) bool {
		return s.all[i].Timestamp.Before(s.all[j].Timestamp)
	})
	return s
}

// LoadAndFilter returns every stored statement, sorted ascending by
// Timestamp. Store applies no filtering of its own.
func (s *Store) LoadAndFilter(_ context.Context) ([]Statement, error) {
	out := make([]Statement, len(s.all))
	copy(out, s.all)
	return out, nil
}

// OriginalStatements returns the full unfiltered population.
func (s *Store) OriginalStatements(_ context.Context) ([]Statement, error) {
	out := make([]Statement, len(s.all))
	copy(out, s.all)
	return out, nil
}

// DataType reports the declared kind of varName, defaulting to
// DataTypeShortText when undeclared.
func (s *Store) DataType(varName string) (DataType, error) {
	if varName == "" {
		return "", ErrEmptyVariableName
	}
	if dt, ok := s.types[varName]; ok {
		return dt, nil
	}
	return DataTypeShortText, nil
}

// ExtractLabels returns the ordered, de-duplicated labels varName takes
// across seq. isDocumentAttribute is accepted for interface conformance;
// Store does not distinguish document-level from statement-level
// attributes (every Statement already carries its resolved value).
func (s *Store) ExtractLabels(seq []Statement, varName string, _ bool) ([]string, error) {
	if varName == "" {
		return nil, ErrEmptyVariableName
	}
	seen := make(map[string]struct{})
	labels := make([]string, 0)
	for _, stmt := range seq {
		v, ok := stmt.Attr(varName)
		if !ok {
			continue
		}
		lbl := v.Label()
		if _, dup := seen[lbl]; dup {
			continue
		}
		seen[lbl] = struct{}{}
		labels = append(labels, lbl)
	}
	return labels, nil
}
