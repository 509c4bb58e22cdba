package domain

import "testing"

func TestReverseGeocodeLabelPriority(t *testing.T) {
	tests := []struct {
		name string
		geo  ReverseGeocode
		want string
	}{
		{
			name: "all parts distinct",
			geo:  ReverseGeocode{Suburb: "Colonia Escalón", City: "San Salvador", State: "San Salvador"},
			want: "Colonia Escalón, San Salvador",
		},
		{
			name: "city skipped when identical to specific place",
			geo:  ReverseGeocode{Neighbourhood: "San Benito", City: "San Benito", State: "San Salvador"},
			want: "San Benito, San Salvador",
		},
		{
			name: "region skipped when identical to previous part",
			geo:  ReverseGeocode{City: "Santa Ana", State: "Santa Ana"},
			want: "Santa Ana",
		},
		{
			name: "town used when city missing",
			geo:  ReverseGeocode{Town: "Juayúa", State: "Sonsonate"},
			want: "Juayúa, Sonsonate",
		},
		{
			name: "fallback to first three display segments",
			geo:  ReverseGeocode{DisplayName: "Calle El Mirador, Colonia Escalón, San Salvador, El Salvador"},
			want: "Calle El Mirador, Colonia Escalón, San Salvador",
		},
		{
			name: "empty everything",
			geo:  ReverseGeocode{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.geo.Label(); got != tt.want {
				t.Errorf("Label() = %q; want %q", got, tt.want)
			}
		})
	}
}
