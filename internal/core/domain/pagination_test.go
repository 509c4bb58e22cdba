package domain

import "testing"

func TestNewPageInfoHasMore(t *testing.T) {
	tests := []struct {
		name     string
		offset   int
		limit    int
		returned int
		total    int
		want     bool
	}{
		{"first full page of larger set", 0, 24, 24, 50, true},
		{"exactly consumed", 0, 10, 10, 10, false},
		{"empty set", 0, 24, 0, 0, false},
		{"last partial page", 48, 24, 2, 50, false},
		{"middle page", 24, 24, 24, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPageInfo(tt.offset, tt.limit, tt.returned, tt.total)
			if page.HasMore != tt.want {
				t.Errorf("HasMore = %v; want %v", page.HasMore, tt.want)
			}
		})
	}
}

func TestBuildLocationStats(t *testing.T) {
	listings := []*Listing{
		{Price: fptr(100000), Place: &Place{Municipality: "Santa Tecla"}},
		{Price: fptr(200000), Place: &Place{Municipality: "Santa Tecla"}},
		{Price: nil, Place: &Place{Municipality: "Santa Tecla"}},
		{Price: fptr(80000), LocationText: "Sonsonate"},
		{Price: fptr(1)}, // no location key, skipped
	}

	stats := BuildLocationStats(listings)
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d; want 2", len(stats))
	}

	tecla := stats[0]
	if tecla.Location != "Santa Tecla" || tecla.Count != 3 {
		t.Fatalf("first group = %q count %d; want Santa Tecla count 3", tecla.Location, tecla.Count)
	}
	if tecla.AvgPrice != 150000 {
		t.Errorf("AvgPrice = %v; want 150000 (nil prices excluded)", tecla.AvgPrice)
	}
	if tecla.MinPrice != 100000 || tecla.MaxPrice != 200000 {
		t.Errorf("Min/Max = %v/%v; want 100000/200000", tecla.MinPrice, tecla.MaxPrice)
	}
}
