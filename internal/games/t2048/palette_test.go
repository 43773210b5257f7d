package t2048

import "testing"

func TestTileColorExactPowers(t *testing.T) {
	seen := make(map[int]int) // color -> value

	for v := 0; v <= 2048; v = nextTile(v) {
		c := TileColor(v)
		if c == BigTileColor {
			t.Errorf("TileColor(%d) uses the fallback color", v)
		}
		if prev, ok := seen[int(c)]; ok {
			t.Errorf("TileColor(%d) == TileColor(%d)", v, prev)
		}
		seen[int(c)] = v
	}

	if len(seen) != 12 {
		t.Errorf("mapped %d values, want 12 (0 and 2..2048)", len(seen))
	}
}

func TestTileColorFallback(t *testing.T) {
	for _, v := range []int{4096, 8192, 65536} {
		if got := TileColor(v); got != BigTileColor {
			t.Errorf("TileColor(%d) = %d, want fallback %d", v, got, BigTileColor)
		}
	}
}

func TestTileTextColorContrast(t *testing.T) {
	if TileTextColor(2) == TileTextColor(2048) {
		t.Error("small and large tiles should use different text colors")
	}
}

func nextTile(v int) int {
	if v == 0 {
		return 2
	}
	return v * 2
}
