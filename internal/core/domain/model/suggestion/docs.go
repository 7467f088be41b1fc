// Package suggestion models planner-proposed round groupings. The planner
// writes suggested rounds as loosely-typed rows; this package is the typed
// boundary: a Suggestion is validated once on ingestion (dense member
// sequence, sane timestamps) so the rest of the core never inspects raw
// fields. The core only claims, reads, reverts, and expires suggestions;
// it never invents a grouping itself.
package suggestion
