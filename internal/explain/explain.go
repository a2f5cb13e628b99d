// Package explain derives human-readable justifications for recommended
// substitutes. The rules are checked independently of the numeric score, so
// an entry can appear even for a factor that contributed nothing.
package explain

import (
	"fmt"
	"strings"

	"github.com/shopkit/shelfgraph/internal/graph"
	"github.com/shopkit/shelfgraph/internal/recommend"
)

// Rule tags for explanation entries.
const (
	RuleSameCategory    = "same_category_match"
	RuleRelatedCategory = "related_category"
	RuleSameBrand       = "same_brand"
	RulePreferredBrand  = "preferred_brand"
	RuleCheaper         = "cheaper_option"
	RuleSamePrice       = "same_price"
	RuleTagsMatched     = "all_required_tags_matched"
	RuleExtraAttributes = "additional_attributes"
)

// maxExtraAttributes caps how many additional attributes an entry lists.
const maxExtraAttributes = 3

// Explanation is one justification entry for a candidate.
type Explanation struct {
	Rule string `json:"rule"`
	Text string `json:"text"`
}

// Generate produces the ordered explanation entries for a candidate: category
// first, then brand, price, required tags, and additional attributes. Rules
// that don't trigger are omitted.
func Generate(candidate recommend.Candidate, original *graph.Node, constraints recommend.Constraints, g *graph.Graph) []Explanation {
	var rules []Explanation

	product := candidate.Product
	candidateCategory := g.CategoryOf(product.ID)
	candidateBrand := g.BrandOf(product.ID)

	if candidateCategory == g.CategoryOf(original.ID) {
		rules = append(rules, Explanation{
			Rule: RuleSameCategory,
			Text: "Same category: " + nodeName(g, candidateCategory),
		})
	} else {
		rules = append(rules, Explanation{
			Rule: RuleRelatedCategory,
			Text: "Related category: " + nodeName(g, candidateCategory),
		})
	}

	if candidateBrand == g.BrandOf(original.ID) {
		rules = append(rules, Explanation{
			Rule: RuleSameBrand,
			Text: "Same brand: " + nodeName(g, candidateBrand),
		})
	} else if constraints.PreferredBrand != "" && candidateBrand == constraints.PreferredBrand {
		rules = append(rules, Explanation{
			Rule: RulePreferredBrand,
			Text: "Preferred brand: " + nodeName(g, candidateBrand),
		})
	}

	if product.Product.Price < original.Product.Price {
		rules = append(rules, Explanation{
			Rule: RuleCheaper,
			Text: fmt.Sprintf("Cheaper: ₹%v vs ₹%v", product.Product.Price, original.Product.Price),
		})
	} else if product.Product.Price == original.Product.Price {
		rules = append(rules, Explanation{
			Rule: RuleSamePrice,
			Text: fmt.Sprintf("Same price: ₹%v", product.Product.Price),
		})
	}

	if len(constraints.RequiredTags) > 0 {
		rules = append(rules, Explanation{
			Rule: RuleTagsMatched,
			Text: "Matches all filters: " + strings.Join(constraints.RequiredTags, ", "),
		})
	}

	if extra := extraAttributes(product.Product.Attributes, constraints.RequiredTags); len(extra) > 0 {
		rules = append(rules, Explanation{
			Rule: RuleExtraAttributes,
			Text: "Also has: " + strings.Join(extra, ", "),
		})
	}

	return rules
}

// extraAttributes returns candidate attributes outside the required set, in
// list order, capped at maxExtraAttributes.
func extraAttributes(attrs, requiredTags []string) []string {
	required := make(map[string]bool, len(requiredTags))
	for _, t := range requiredTags {
		required[t] = true
	}

	var extra []string
	for _, a := range attrs {
		if !required[a] {
			extra = append(extra, a)
		}
	}
	if len(extra) > maxExtraAttributes {
		extra = extra[:maxExtraAttributes]
	}
	return extra
}

// nodeName resolves a node ID to its display name, or "Unknown" when the
// node is absent.
func nodeName(g *graph.Graph, id string) string {
	if id != "" {
		if n := g.Node(id); n != nil {
			return n.Name()
		}
	}
	return "Unknown"
}
