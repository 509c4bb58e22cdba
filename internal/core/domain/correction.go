package domain

import (
	"strings"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/constants"
)

// CorrectionRule excludes listings that are almost certainly
// misclassified for the tag being browsed. Rules are additive and
// tag-scoped; a listing is dropped when any rule matches.
type CorrectionRule interface {
	// Name identifies the rule in logs.
	Name() string
	// Matches reports whether the listing should be excluded from
	// results for the given canonical tag.
	Matches(tag string, l *Listing) bool
}

// misclassifiedSaleRule drops "sale" house listings whose published price
// is implausibly low: among "Casa" listings those are rental ads posted
// under the wrong deal type. An absent price never triggers the rule;
// the threshold itself is kept (strictly-below comparison).
type misclassifiedSaleRule struct {
	threshold float64
}

func (misclassifiedSaleRule) Name() string { return "misclassified_sale_under_threshold" }

func (r misclassifiedSaleRule) Matches(tag string, l *Listing) bool {
	if !strings.EqualFold(tag, "Casa") {
		return false
	}
	if l.ListingType != ListingTypeSale || l.Price == nil {
		return false
	}
	return *l.Price < r.threshold
}

// DefaultCorrectionRules is the rule set applied by the listing pipeline.
var DefaultCorrectionRules = []CorrectionRule{
	misclassifiedSaleRule{threshold: constants.MisclassifiedSaleThreshold},
}

// ApplyCorrections filters a raw candidate set through the rule set,
// returning a new slice. The input is not mutated.
func ApplyCorrections(tag string, listings []*Listing, rules []CorrectionRule) []*Listing {
	kept := make([]*Listing, 0, len(listings))
	for _, l := range listings {
		excluded := false
		for _, rule := range rules {
			if rule.Matches(tag, l) {
				excluded = true
				break
			}
		}
		if !excluded {
			kept = append(kept, l)
		}
	}
	return kept
}
