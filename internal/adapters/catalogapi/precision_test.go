package catalogapi

import (
	"encoding/json"
	"testing"
)

func TestQuoteBigIDs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "fifteen digit id quoted",
			in:   `{"id": 123456789012345, "title": "Casa"}`,
			want: `{"id": "123456789012345", "title": "Casa"}`,
		},
		{
			name: "eighteen digit id quoted",
			in:   `{"external_id":123456789012345678}`,
			want: `{"external_id":"123456789012345678"}`,
		},
		{
			name: "fourteen digits untouched",
			in:   `{"id": 12345678901234}`,
			want: `{"id": 12345678901234}`,
		},
		{
			name: "non-identifier numbers untouched",
			in:   `{"price": 123456789012345}`,
			want: `{"price": 123456789012345}`,
		},
		{
			name: "array of rows",
			in:   `[{"id":999999999999999999},{"id":888888888888888888}]`,
			want: `[{"id":"999999999999999999"},{"id":"888888888888888888"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(QuoteBigIDs([]byte(tt.in))); got != tt.want {
				t.Errorf("QuoteBigIDs() = %s; want %s", got, tt.want)
			}
		})
	}
}

func TestQuoteBigIDsIdempotent(t *testing.T) {
	in := []byte(`{"id": 123456789012345678, "listing_id": 42}`)
	once := QuoteBigIDs(in)
	twice := QuoteBigIDs(once)
	if string(once) != string(twice) {
		t.Errorf("not idempotent: %s -> %s", once, twice)
	}
}

func TestQuoteBigIDsRoundTripPreservesValue(t *testing.T) {
	// The canonical precision trap: decode and re-encode must yield the
	// exact original digits.
	raw := []byte(`{"id": 123456789012345}`)
	var row struct {
		ID stringID `json:"id"`
	}
	if err := json.Unmarshal(QuoteBigIDs(raw), &row); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(row.ID) != "123456789012345" {
		t.Errorf("id round-trip = %q; want %q", row.ID, "123456789012345")
	}
}
