package expression

import "github.com/coredb-io/colex/sql"

// Expr is the closed logical expression algebra: Column, ColumnIndex,
// Literal, Not, Cast, BinaryExpr, Alias, ScalarFunction, AggregateFunction.
// Every variant resolves to exactly one Field against a given input plan
// and prints in canonical form; Hash/Less give expressions a deterministic
// total order for optimizer canonicalization and for use as map keys.
type Expr interface {
	sql.LogicalExpr
	Hash() uint64
	Less(other Expr) bool
}

// lessByHash orders two expressions by hash, breaking ties on string form.
// This is ordering by hash, not a semantically meaningful sort, and exists
// only so expressions have a deterministic total order for canonicalization.
func lessByHash(a, b Expr) bool {
	ah, bh := a.Hash(), b.Hash()
	if ah != bh {
		return ah < bh
	}
	return a.String() < b.String()
}

const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211
)

func hashString(seed uint64, s string) uint64 {
	h := seed
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime
	}
	return h
}

func hashCombine(parts ...uint64) uint64 {
	h := fnvOffset
	for _, p := range parts {
		h = hashString(h, "")
		h ^= p
		h *= fnvPrime
	}
	return h
}
