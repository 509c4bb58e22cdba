package domain

import "testing"

func fptr(v float64) *float64 { return &v }

func TestAreaM2SynonymPriority(t *testing.T) {
	tests := []struct {
		name  string
		specs map[string]interface{}
		want  float64
	}{
		{
			name:  "normalized key wins over raw keys",
			specs: map[string]interface{}{"area_m2": 85.5, "Terreno": "200 m2"},
			want:  85.5,
		},
		{
			name:  "construction area preferred over plot",
			specs: map[string]interface{}{"Construcción": "120", "Terreno": "300"},
			want:  120,
		},
		{
			name:  "accented key matches",
			specs: map[string]interface{}{"Área": "95 m2"},
			want:  95,
		},
		{
			name:  "textual value with noise",
			specs: map[string]interface{}{"Tamaño": "1,200 mt2 aprox"},
			want:  1200,
		},
		{
			name:  "zero area is not a match, next key tried",
			specs: map[string]interface{}{"area": 0.0, "terreno": 150.0},
			want:  150,
		},
		{
			name:  "no area keys",
			specs: map[string]interface{}{"parqueo": 2},
			want:  0,
		},
		{
			name:  "nil specs",
			specs: nil,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Listing{Specs: tt.specs}
			if got := l.AreaM2(); got != tt.want {
				t.Errorf("AreaM2() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestAreaM2UnitConversion(t *testing.T) {
	tests := []struct {
		name  string
		specs map[string]interface{}
		want  float64
	}{
		{
			name:  "varas cuadradas converted",
			specs: map[string]interface{}{"Terreno": "120 v2"},
			want:  83.84, // 120 * 0.6987
		},
		{
			name:  "varas spelled out",
			specs: map[string]interface{}{"Terreno": "1,200 varas2"},
			want:  838.44,
		},
		{
			name:  "square feet converted",
			specs: map[string]interface{}{"area": "500 sqft"},
			want:  46.45, // 500 * 0.0929
		},
		{
			name:  "square meters pass through",
			specs: map[string]interface{}{"area": "95 m2"},
			want:  95,
		},
		{
			name:  "superscript unit recognized",
			specs: map[string]interface{}{"area": "150 m²"},
			want:  150,
		},
		{
			name:  "unit taken from key when value is bare",
			specs: map[string]interface{}{"Área de terreno (v2)": 500.0},
			want:  349.35,
		},
		{
			name:  "bare number defaults to m2",
			specs: map[string]interface{}{"area": 120.0},
			want:  120,
		},
		{
			name:  "value unit wins over key unit",
			specs: map[string]interface{}{"Terreno (v2)": "200 m2"},
			want:  200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Listing{Specs: tt.specs}
			if got := l.AreaM2(); got != tt.want {
				t.Errorf("AreaM2() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestLookupSpecNumberIsDeterministic(t *testing.T) {
	// Two keys match the same synonym with different positive values;
	// the winner must be stable across map iteration orders.
	for i := 0; i < 100; i++ {
		specs := map[string]interface{}{
			"Habitaciones nivel 1": 2.0,
			"Habitaciones nivel 2": 4.0,
		}
		l := &Listing{Specs: specs}
		if got := l.Bedrooms(); got != 2 {
			t.Fatalf("Bedrooms() = %v on run %d; want 2 every time", got, i)
		}
	}
}

func TestBedroomsCoercion(t *testing.T) {
	tests := []struct {
		specs map[string]interface{}
		want  float64
	}{
		{map[string]interface{}{"Habitaciones": "3"}, 3},
		{map[string]interface{}{"dormitorios": 4.0}, 4},
		{map[string]interface{}{"Recámaras": "2 recámaras"}, 2},
		{map[string]interface{}{"Habitaciones": "sin dato"}, 0},
		{nil, 0},
	}

	for _, tt := range tests {
		l := &Listing{Specs: tt.specs}
		if got := l.Bedrooms(); got != tt.want {
			t.Errorf("Bedrooms() with %v = %v; want %v", tt.specs, got, tt.want)
		}
	}
}

func TestPriceOrZeroDistinguishesAbsent(t *testing.T) {
	withZero := &Listing{Price: fptr(0)}
	if withZero.Price == nil {
		t.Fatal("explicit zero price must not look absent")
	}
	if got := withZero.PriceOrZero(); got != 0 {
		t.Errorf("PriceOrZero() = %v; want 0", got)
	}

	absent := &Listing{}
	if absent.Price != nil {
		t.Fatal("absent price must be nil")
	}
	if got := absent.PriceOrZero(); got != 0 {
		t.Errorf("PriceOrZero() = %v; want 0", got)
	}
}

func TestLocationKey(t *testing.T) {
	structured := &Listing{
		LocationText: "por la gasolinera",
		Place:        &Place{Municipality: "Santa Tecla", Department: "La Libertad"},
	}
	if got := structured.LocationKey(); got != "Santa Tecla" {
		t.Errorf("LocationKey() = %q; want %q", got, "Santa Tecla")
	}

	freeText := &Listing{LocationText: "  Colonia Escalón  "}
	if got := freeText.LocationKey(); got != "Colonia Escalón" {
		t.Errorf("LocationKey() = %q; want %q", got, "Colonia Escalón")
	}
}
