package domain

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ListingType is the deal type of an advertisement. Immutable after ingestion.
type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

// Place is a structured location attached to a listing.
type Place struct {
	Municipality string
	Department   string
	Lat          float64
	Lon          float64
}

// Listing is one property advertisement as served by the catalog.
//
// ExternalID is kept as an opaque string: upstream identifiers can exceed
// 2^53-1 and must round-trip without precision loss. Price is a pointer
// because 0 is a valid price, distinct from "no price published". Score
// is the opportunity rank computed by the data store, carried through
// for display; rank order itself comes from the store.
type Listing struct {
	ExternalID    string
	Title         string
	Price         *float64
	ListingType   ListingType
	Specs         map[string]interface{}
	Tags          []string
	LocationText  string
	Place         *Place
	Score         *float64
	PublishedDate *time.Time
	LastUpdated   *time.Time
}

// Synonym keys tried in priority order when deriving numeric attributes
// from the free-form specs map. The upstream feed mixes localized field
// names; the first key with a positive numeric value wins.
var (
	areaSpecKeys = []string{
		"area_m2", "construccion", "construida", "area",
		"superficie", "tamano", "terreno", "lote", "m2", "mt2", "metros",
	}
	bedroomSpecKeys  = []string{"bedrooms", "habitaciones", "dormitorios", "recamaras", "cuartos"}
	bathroomSpecKeys = []string{"bathrooms", "banos"}
)

// PriceOrZero returns the price for comparison purposes, treating an
// absent price as 0. Never use it to decide whether a price exists.
func (l *Listing) PriceOrZero() float64 {
	if l.Price == nil {
		return 0
	}
	return *l.Price
}

// AreaM2 derives the listing area in square meters from specs, or 0 when
// no synonym key holds a positive numeric value. Values published in
// varas cuadradas or square feet are converted to m².
func (l *Listing) AreaM2() float64 {
	return lookupAreaM2(l.Specs)
}

// Bedrooms derives the bedroom count from specs (0 when absent).
func (l *Listing) Bedrooms() float64 {
	return lookupSpecNumber(l.Specs, bedroomSpecKeys)
}

// Bathrooms derives the bathroom count from specs (0 when absent).
func (l *Listing) Bathrooms() float64 {
	return lookupSpecNumber(l.Specs, bathroomSpecKeys)
}

// LocationKey groups listings for aggregate statistics: municipality when
// a structured place is known, otherwise the raw location text.
func (l *Listing) LocationKey() string {
	if l.Place != nil && l.Place.Municipality != "" {
		return l.Place.Municipality
	}
	return strings.TrimSpace(l.LocationText)
}

type foldedSpecKey struct {
	raw    string
	folded string
}

// foldSpecKeys folds every spec key and returns them in a stable order,
// so substring matches resolve the same way on every run.
func foldSpecKeys(specs map[string]interface{}) []foldedSpecKey {
	keys := make([]foldedSpecKey, 0, len(specs))
	for k := range specs {
		keys = append(keys, foldedSpecKey{raw: k, folded: FoldKey(k)})
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].folded < keys[j].folded })
	return keys
}

func lookupSpecNumber(specs map[string]interface{}, keys []string) float64 {
	if len(specs) == 0 {
		return 0
	}
	folded := foldSpecKeys(specs)
	for _, candidate := range keys {
		for _, fk := range folded {
			if fk.folded != candidate && !strings.Contains(fk.folded, candidate) {
				continue
			}
			if v, ok := coerceNumber(specs[fk.raw]); ok && v > 0 {
				return v
			}
		}
	}
	return 0
}

func lookupAreaM2(specs map[string]interface{}) float64 {
	if len(specs) == 0 {
		return 0
	}
	folded := foldSpecKeys(specs)
	for _, candidate := range areaSpecKeys {
		for _, fk := range folded {
			if fk.folded != candidate && !strings.Contains(fk.folded, candidate) {
				continue
			}
			if v, ok := coerceAreaM2(specs[fk.raw], fk.folded); ok && v > 0 {
				return v
			}
		}
	}
	return 0
}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// coerceNumber extracts a float from the mixed numeric/textual values the
// specs map carries ("3", 3, 3.5, "120 m2 aprox").
func coerceNumber(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		cleaned := strings.ReplaceAll(val, ",", "")
		match := numberPattern.FindString(cleaned)
		if match == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// Conversion factors for area units seen in the feed. Varas cuadradas
// are the customary land unit in El Salvador.
const (
	vara2ToM2 = 0.6987
	ft2ToM2   = 0.0929
)

// Unit detection patterns, most specific first. Matched against folded
// text with "²" normalized to "2".
var (
	m2UnitPattern    = regexp.MustCompile(`\bm2\b|\bmts?2\b|\bmetros?(\s+cuadrados?)?\b`)
	vara2UnitPattern = regexp.MustCompile(`\bv2\b|\bvaras?2?\b|\bvaras?(\s+cuadradas?)?\b`)
	ft2UnitPattern   = regexp.MustCompile(`\bft2\b|\bsqft\b|\bsq\.?\s?ft\b|\bpies?(\s+cuadrados?)?\b`)
)

// coerceAreaM2 extracts an area value and normalizes it to m². The unit
// comes from the value text when present ("120 v2"), otherwise from the
// spec key ("Área de terreno (v2)"); a bare number is taken as m².
func coerceAreaM2(v interface{}, foldedKey string) (float64, bool) {
	value, ok := coerceNumber(v)
	if !ok {
		return 0, false
	}

	unit := ""
	if s, isString := v.(string); isString {
		unit = detectAreaUnit(foldAreaText(s))
	}
	if unit == "" {
		unit = detectAreaUnit(strings.ReplaceAll(foldedKey, "²", "2"))
	}

	switch unit {
	case "vara2":
		return math.Round(value*vara2ToM2*100) / 100, true
	case "ft2":
		return math.Round(value*ft2ToM2*100) / 100, true
	default:
		return value, true
	}
}

func detectAreaUnit(text string) string {
	switch {
	case m2UnitPattern.MatchString(text):
		return "m2"
	case vara2UnitPattern.MatchString(text):
		return "vara2"
	case ft2UnitPattern.MatchString(text):
		return "ft2"
	}
	return ""
}

func foldAreaText(s string) string {
	return strings.ReplaceAll(FoldKey(s), "²", "2")
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldKey lowercases a spec key and strips diacritics so "Área" and
// "area" compare equal.
func FoldKey(s string) string {
	stripped, _, err := transform.String(accentStripper, s)
	if err != nil {
		stripped = s
	}
	return strings.ToLower(strings.TrimSpace(stripped))
}
