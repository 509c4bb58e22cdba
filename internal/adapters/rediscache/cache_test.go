package rediscache

import "testing"

func TestHashKeyStableAndPrefixed(t *testing.T) {
	a := hashKey("listings:tag:Casa:sale:24:0:recent")
	b := hashKey("listings:tag:Casa:sale:24:0:recent")
	if a != b {
		t.Errorf("hashKey not stable: %q vs %q", a, b)
	}
	if a[:8] != "catalog:" {
		t.Errorf("hashKey missing prefix: %q", a)
	}
	if c := hashKey("listings:tag:Casa:sale:24:24:recent"); c == a {
		t.Error("distinct logical keys collapsed to the same hash")
	}
}
