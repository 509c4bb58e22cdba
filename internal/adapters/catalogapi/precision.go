package catalogapi

import "regexp"

// Identifier fields whose numeric magnitude can exceed 2^53-1. They are
// rewritten to quoted strings in the raw payload *before* json.Unmarshal
// runs, because the precision loss happens at parse time: a 17-digit id
// decoded into a float64 silently rounds.
var bigIDPattern = regexp.MustCompile(`("(?:id|external_id|listing_id|source_ad_id)"\s*:\s*)(\d{15,})(\s*[,}\]])`)

// QuoteBigIDs rewrites 15+ digit identifier fields to quoted string
// form. Idempotent: already-quoted values never match.
func QuoteBigIDs(raw []byte) []byte {
	return bigIDPattern.ReplaceAll(raw, []byte(`$1"$2"$3`))
}
