package domain

import "testing"

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"casas-en-venta", "Casas En Venta"},
		{"casa", "Casa"},
		{"apartamentos", "Apartamentos"},
		{"terrazas-y-jardines", "Terrazas Y Jardines"},
		{"casas%20de%20playa", "Casas De Playa"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeTag(tt.token); got != tt.want {
			t.Errorf("NormalizeTag(%q) = %q; want %q", tt.token, got, tt.want)
		}
	}
}

func TestNormalizeTagIdempotent(t *testing.T) {
	inputs := []string{"casas-en-venta", "Casa", "apartamentos-amueblados", "Casas En Venta"}
	for _, in := range inputs {
		once := NormalizeTag(in)
		twice := NormalizeTag(once)
		if once != twice {
			t.Errorf("NormalizeTag not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestTagSlug(t *testing.T) {
	if got := TagSlug("Casas En Venta"); got != "casas-en-venta" {
		t.Errorf("TagSlug() = %q; want %q", got, "casas-en-venta")
	}
}
