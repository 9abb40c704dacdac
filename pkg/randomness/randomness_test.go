package randomness

import "testing"

func TestSameSeedSameStream(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)

	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("draw %d diverged for identical seeds", i)
		}
	}
	for i := 0; i < 10; i++ {
		if a.Gaussian(30) != b.Gaussian(30) {
			t.Fatalf("gaussian draw %d diverged for identical seeds", i)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := NewSource(1)
	b := NewSource(2)

	same := true
	for i := 0; i < 20; i++ {
		if a.Intn(1 << 30) != b.Intn(1 << 30) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical streams")
	}
}

func TestIntnBounds(t *testing.T) {
	s := NewSource(7)
	for i := 0; i < 1000; i++ {
		v := s.Intn(5)
		if v < 0 || v >= 5 {
			t.Fatalf("Intn(5) out of range: %d", v)
		}
	}
}

func TestMember(t *testing.T) {
	s := NewSource(7)
	items := []string{"a", "b", "c"}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		v := Member(s, items)
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("uniform selection over 100 draws should hit all members, got %v", seen)
	}
}
