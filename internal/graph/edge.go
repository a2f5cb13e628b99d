package graph

// Relation labels for edges. Traversal reports reverse-direction hops with
// the "reverse_" prefix on the relation.
const (
	RelationIsA       = "IS_A"
	RelationHasBrand  = "HAS_BRAND"
	RelationSimilarTo = "SIMILAR_TO"

	ReversePrefix = "reverse_"
)

// DefaultWeight is the weight assigned to edges that don't carry one.
const DefaultWeight = 1.0

// Edge is a directed, labeled relationship between two nodes. Weight is
// informational (similarity strength on SIMILAR_TO edges); scoring does not
// consult it.
type Edge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Relation string  `json:"relation"`
	Weight   float64 `json:"weight"`
}
