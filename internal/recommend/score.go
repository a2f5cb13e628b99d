package recommend

import (
	"math"

	"github.com/shopkit/shelfgraph/internal/graph"
)

// Scoring weights. Base score minus a per-hop penalty, plus bonuses for
// category, brand, price proximity, and attribute overlap.
const (
	baseScore           = 100.0
	distancePenalty     = 10.0
	sameCategoryBonus   = 50.0
	preferredBrandBonus = 30.0
	sameBrandBonus      = 20.0
	priceWindow         = 20.0
	attributeBonus      = 5.0
)

// Score rates a candidate product against the original under the given
// constraints. Hard constraints are checked first, in order: stock, price
// limit, required tags. Any failure returns 0 immediately and the candidate
// is excluded. Only candidates passing all three get the soft score.
func Score(candidate, original *graph.Node, constraints Constraints, distance int, g *graph.Graph) float64 {
	data := candidate.Product

	if !data.InStock {
		return 0
	}
	if constraints.MaxPrice > 0 && data.Price > constraints.MaxPrice {
		return 0
	}
	if len(constraints.RequiredTags) > 0 {
		attrs := toSet(data.Attributes)
		for _, tag := range constraints.RequiredTags {
			if !attrs[tag] {
				return 0
			}
		}
	}

	score := baseScore
	score -= float64(distance) * distancePenalty

	// Two products with no category at all compare equal here and take the
	// bonus; see DESIGN.md.
	if g.CategoryOf(candidate.ID) == g.CategoryOf(original.ID) {
		score += sameCategoryBonus
	}

	candidateBrand := g.BrandOf(candidate.ID)
	if constraints.PreferredBrand != "" && candidateBrand == constraints.PreferredBrand {
		score += preferredBrandBonus
	} else if candidateBrand == g.BrandOf(original.ID) {
		score += sameBrandBonus
	}

	score += math.Max(0, priceWindow-math.Abs(data.Price-original.Product.Price))

	originalAttrs := toSet(original.Product.Attributes)
	for attr := range toSet(data.Attributes) {
		if originalAttrs[attr] {
			score += attributeBonus
		}
	}

	return score
}

// toSet converts an attribute list to a membership set.
func toSet(attrs []string) map[string]bool {
	set := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		set[a] = true
	}
	return set
}
