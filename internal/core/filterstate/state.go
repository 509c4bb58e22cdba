// Package filterstate holds the browsing-session filter selection for one
// department page and derives the removable chips shown above the result
// list. Transitions are pure functions over an immutable State value; the
// Machine wrapper applies them sequentially on the interaction goroutine
// and keeps the visible URL in sync.
package filterstate

import (
	"sort"
	"strconv"
	"strings"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
)

// TypeFilter is the listing-type axis. Unlike domain.ListingType it has
// an "all" member because browsing can span both deal types.
type TypeFilter string

const (
	TypeAll  TypeFilter = "all"
	TypeSale TypeFilter = "sale"
	TypeRent TypeFilter = "rent"
)

// Chip id prefixes route a removal request back to the owning axis.
const (
	chipPrefixMunicipio = "muni:"
	chipPrefixCategory  = "cat:"
	chipIDPrice         = "price"
)

// Chip is a display-only projection of one active filter value.
type Chip struct {
	ID    string
	Label string
}

// State is the filter selection for one department page. The zero value
// is not useful; start from NewState. Axes are independent except that
// changing the listing type clears the price bounds (the two are coupled
// in the search semantics: a sale budget means nothing for rentals).
type State struct {
	Type       TypeFilter
	Sort       domain.SortOption
	PriceMin   *float64
	PriceMax   *float64
	Municipios map[string]struct{}
	Categories map[string]struct{}
}

// NewState builds the default selection for the URL-driven listing type.
func NewState(active TypeFilter) State {
	if active == "" {
		active = TypeAll
	}
	return State{
		Type:       active,
		Sort:       domain.DefaultSortOption,
		Municipios: map[string]struct{}{},
		Categories: map[string]struct{}{},
	}
}

func cloneSet(s map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func (s State) clone() State {
	s.Municipios = cloneSet(s.Municipios)
	s.Categories = cloneSet(s.Categories)
	return s
}

// SetType switches the listing-type axis. Price bounds are cleared;
// municipality and category selections survive.
func (s State) SetType(t TypeFilter) State {
	next := s.clone()
	next.Type = t
	next.PriceMin, next.PriceMax = nil, nil
	return next
}

// SetSort changes the sort axis only.
func (s State) SetSort(option domain.SortOption) State {
	next := s.clone()
	if domain.ValidSortOption(option) {
		next.Sort = option
	}
	return next
}

// ApplyPrice sets both bounds atomically; either side may be nil meaning
// unbounded.
func (s State) ApplyPrice(min, max *float64) State {
	next := s.clone()
	next.PriceMin, next.PriceMax = min, max
	return next
}

// ClearPrice drops both bounds.
func (s State) ClearPrice() State {
	return s.ApplyPrice(nil, nil)
}

// ToggleMunicipio adds the municipality if absent, removes it if present.
func (s State) ToggleMunicipio(name string) State {
	next := s.clone()
	toggle(next.Municipios, name)
	return next
}

// ToggleCategory is the symmetric toggle on the category axis.
func (s State) ToggleCategory(name string) State {
	next := s.clone()
	toggle(next.Categories, name)
	return next
}

func toggle(set map[string]struct{}, name string) {
	if _, ok := set[name]; ok {
		delete(set, name)
	} else {
		set[name] = struct{}{}
	}
}

// ClearAll resets every axis except the active listing type, which is
// URL-driven and outlives a clear. Sort returns to its default.
func (s State) ClearAll() State {
	return NewState(s.Type)
}

// RemoveChip routes a chip removal back to the owning axis via the id
// prefix. Unknown ids leave the state untouched.
func (s State) RemoveChip(chipID string) State {
	switch {
	case strings.HasPrefix(chipID, chipPrefixMunicipio):
		name := strings.TrimPrefix(chipID, chipPrefixMunicipio)
		if _, ok := s.Municipios[name]; ok {
			return s.ToggleMunicipio(name)
		}
	case strings.HasPrefix(chipID, chipPrefixCategory):
		name := strings.TrimPrefix(chipID, chipPrefixCategory)
		if _, ok := s.Categories[name]; ok {
			return s.ToggleCategory(name)
		}
	case chipID == chipIDPrice:
		return s.ClearPrice()
	}
	return s
}

// Chips derives the active chip list: municipalities first, then the
// price range, then categories. Selection order is not significant, so
// sets are emitted alphabetically for a stable render.
func (s State) Chips() []Chip {
	chips := make([]Chip, 0, len(s.Municipios)+len(s.Categories)+1)
	for _, name := range sortedKeys(s.Municipios) {
		chips = append(chips, Chip{ID: chipPrefixMunicipio + name, Label: name})
	}
	if label := s.PriceLabel(); label != "" {
		chips = append(chips, Chip{ID: chipIDPrice, Label: label})
	}
	for _, name := range sortedKeys(s.Categories) {
		chips = append(chips, Chip{ID: chipPrefixCategory + name, Label: name})
	}
	return chips
}

// ActiveCount is the number of active chips.
func (s State) ActiveCount() int { return len(s.Chips()) }

// HasActiveFilters reports whether any chip is active.
func (s State) HasActiveFilters() bool { return s.ActiveCount() > 0 }

// PriceLabel renders the price range in compact notation, or "" when no
// bound is set.
func (s State) PriceLabel() string {
	switch {
	case s.PriceMin != nil && s.PriceMax != nil:
		return formatCompactPrice(*s.PriceMin) + " - " + formatCompactPrice(*s.PriceMax)
	case s.PriceMin != nil:
		return "Desde " + formatCompactPrice(*s.PriceMin)
	case s.PriceMax != nil:
		return "Hasta " + formatCompactPrice(*s.PriceMax)
	}
	return ""
}

// formatCompactPrice abbreviates large amounts: >= 1,000,000 as $X.XM,
// >= 1,000 as $XK, anything smaller exact.
func formatCompactPrice(v float64) string {
	switch {
	case v >= 1_000_000:
		return "$" + trimZero(v/1_000_000) + "M"
	case v >= 1_000:
		return "$" + trimZero(v/1_000) + "K"
	default:
		return "$" + strconv.FormatFloat(v, 'f', -1, 64)
	}
}

func trimZero(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return strings.ToLower(keys[i]) < strings.ToLower(keys[j])
	})
	return keys
}
