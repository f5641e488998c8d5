// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Comparison is the predicate function for comparison builders.
type Comparison func(*sql.Selector)

// QuoteFile is the predicate function for quotefile builders.
type QuoteFile func(*sql.Selector)
