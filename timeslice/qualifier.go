// SPDX-License-Identifier: MIT
package timeslice

import (
	"context"
	"strconv"

	"github.com/mirenbz/dna/statement"
)

// qualifierKey resolves a statement's bucket-index key for the qualifier
// dimension: "" (index 0) when there is no qualifier, the stringified
// integer for integer/boolean qualifiers, or the entity label otherwise.
func qualifierKey(stmt statement.Statement, cfg Config) string {
	if cfg.Qualifier == "" {
		return ""
	}
	return stmt.MustLabel(cfg.Qualifier)
}

// qualifierLabels returns the Q dimension for a slice: the qualifier's
// labels over localStmts, expanded to the full contiguous integer range
// when the qualifier is declared integer and the observed values leave
// gaps. This fill-in never applies to boolean qualifiers.
func qualifierLabels(ctx context.Context, src statement.Source, cfg Config, localStmts []statement.Statement) ([]string, error) {
	if cfg.Qualifier == "" {
		return []string{""}, nil
	}
	labels, err := src.ExtractLabels(localStmts, cfg.Qualifier, cfg.QualifierIsDocumentAttr)
	if err != nil {
		return nil, err
	}
	dtype, err := src.DataType(cfg.Qualifier)
	if err != nil {
		return nil, err
	}
	if dtype != statement.DataTypeInteger {
		return labels, nil
	}

	orig, err := src.OriginalStatements(ctx)
	if err != nil {
		return nil, err
	}
	var minV, maxV int64
	seen := false
	for _, st := range orig {
		v, ok := st.Attr(cfg.Qualifier)
		if !ok || !v.IsInt() {
			continue
		}
		if !seen {
			minV, maxV, seen = v.Int(), v.Int(), true
			continue
		}
		if v.Int() < minV {
			minV = v.Int()
		}
		if v.Int() > maxV {
			maxV = v.Int()
		}
	}
	if !seen {
		return labels, nil
	}

	span := int(maxV-minV) + 1
	if len(labels) >= span {
		return labels, nil
	}
	full := make([]string, 0, span)
	for x := minV; x <= maxV; x++ {
		full = append(full, strconv.FormatInt(x, 10))
	}
	return full, nil
}
