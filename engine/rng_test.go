package engine

import "testing"

func TestStream_Deterministic(t *testing.T) {
	s1 := NewStream(42)
	s2 := NewStream(42)

	for i := 0; i < 20; i++ {
		a := s1.Int(1, 100)
		b := s2.Int(1, 100)
		if a != b {
			t.Fatalf("draw %d: got %d and %d from same seed", i, a, b)
		}
	}
}

func TestStream_Next_Range(t *testing.T) {
	s := NewStream(99)

	for i := 0; i < 1000; i++ {
		v := s.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("Next out of [0,1): got %v", v)
		}
	}
}

func TestStream_Int_Inclusive(t *testing.T) {
	s := NewStream(7)

	sawMin, sawMax := false, false
	for i := 0; i < 1000; i++ {
		v := s.Int(1, 6)
		if v < 1 || v > 6 {
			t.Fatalf("Int out of [1,6]: got %d", v)
		}
		if v == 1 {
			sawMin = true
		}
		if v == 6 {
			sawMax = true
		}
	}
	if !sawMin || !sawMax {
		t.Errorf("expected both bounds to appear in 1000 draws (min=%v max=%v)", sawMin, sawMax)
	}
}

func TestStream_Int_Degenerate(t *testing.T) {
	s := NewStream(1)

	for i := 0; i < 10; i++ {
		if v := s.Int(3, 3); v != 3 {
			t.Fatalf("degenerate range should always yield 3, got %d", v)
		}
	}
}

func TestStream_Float_Range(t *testing.T) {
	s := NewStream(5)

	for i := 0; i < 1000; i++ {
		v := s.Float(0.2, 0.8)
		if v < 0.2 || v >= 0.8 {
			t.Fatalf("Float out of [0.2,0.8): got %v", v)
		}
	}
}

func TestStream_Bool_Extremes(t *testing.T) {
	s := NewStream(11)

	for i := 0; i < 100; i++ {
		if s.Bool(0) {
			t.Fatal("Bool(0) returned true")
		}
		if !s.Bool(1) {
			t.Fatal("Bool(1) returned false")
		}
	}
}

func TestStream_WeightedIndex_Distribution(t *testing.T) {
	s := NewStream(12345)
	weights := []int{70, 20, 10}
	counts := [3]int{}

	const trials = 10000
	for i := 0; i < trials; i++ {
		idx := s.WeightedIndex(weights)
		if idx < 0 || idx > 2 {
			t.Fatalf("index out of range: %d", idx)
		}
		counts[idx]++
	}

	// With 10k trials, expect roughly 70%/20%/10% ± some margin.
	if counts[0] < 6000 || counts[0] > 8000 {
		t.Errorf("expected ~7000 for weight 70, got %d", counts[0])
	}
	if counts[1] < 1000 || counts[1] > 3000 {
		t.Errorf("expected ~2000 for weight 20, got %d", counts[1])
	}
	if counts[2] < 200 || counts[2] > 1800 {
		t.Errorf("expected ~1000 for weight 10, got %d", counts[2])
	}
}

func TestStream_WeightedIndex_SkipsNonPositive(t *testing.T) {
	s := NewStream(8)

	for i := 0; i < 100; i++ {
		idx := s.WeightedIndex([]int{0, 5, -3})
		if idx != 1 {
			t.Fatalf("only index 1 has positive weight, got %d", idx)
		}
	}

	if idx := s.WeightedIndex([]int{0, 0}); idx != -1 {
		t.Fatalf("all-zero weights should return -1, got %d", idx)
	}
}

func TestStream_Position_Tracks(t *testing.T) {
	s := NewStream(42)

	if s.Position() != 0 {
		t.Fatalf("expected position 0, got %d", s.Position())
	}

	s.Next()
	s.Int(1, 6)
	s.Bool(0.5)
	s.WeightedIndex([]int{1, 1})
	if s.Position() != 4 {
		t.Fatalf("expected position 4, got %d", s.Position())
	}
}

func TestPick_Uniform(t *testing.T) {
	s := NewStream(3)
	items := []string{"a", "b", "c"}

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[Pick(s, items)] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected all 3 items within 100 picks, saw %v", seen)
	}
}

func TestPick_Empty(t *testing.T) {
	s := NewStream(3)
	if got := Pick(s, []string{}); got != "" {
		t.Errorf("empty slice should yield zero value, got %q", got)
	}
}

func TestCombineSeeds_Pure(t *testing.T) {
	a := CombineSeeds(42, "location:dry_gulch")
	b := CombineSeeds(42, "location:dry_gulch")
	if a != b {
		t.Fatalf("same inputs should yield same seed: %d vs %d", a, b)
	}
}

func TestCombineSeeds_DistinctKeys(t *testing.T) {
	if CombineSeeds(42, "a") == CombineSeeds(42, "b") {
		t.Fatal("distinct keys should yield distinct seeds")
	}
	if CombineSeeds(1, "npc") == CombineSeeds(2, "npc") {
		t.Fatal("distinct parents should yield distinct seeds")
	}
}

func TestCombineSeeds_ChildDoesNotMirrorParent(t *testing.T) {
	parent := NewStream(42)
	child := NewStream(CombineSeeds(42, "region:1"))

	// Reseeding with the combined value must never reproduce the parent
	// stream's exact sequence.
	same := true
	for i := 0; i < 20; i++ {
		if parent.Int(1, 1000) != child.Int(1, 1000) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("child stream reproduced the parent sequence")
	}
}

func TestHashString_Stable(t *testing.T) {
	// FNV-1a reference value for "a".
	if h := HashString("a"); h != HashString("a") {
		t.Fatalf("hash not stable: %d", h)
	}
	if HashString("a") == HashString("b") {
		t.Fatal("different strings should hash differently")
	}
	if HashString("") == HashString("x") {
		t.Fatal("empty string collided")
	}
}

func TestPeriodOfHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, PeriodNight},
		{4, PeriodNight},
		{5, PeriodMorning},
		{10, PeriodMorning},
		{11, PeriodDay},
		{16, PeriodDay},
		{17, PeriodEvening},
		{21, PeriodEvening},
		{22, PeriodNight},
		{23, PeriodNight},
		{24, PeriodNight},
	}
	for _, tt := range tests {
		if got := PeriodOfHour(tt.hour); got != tt.want {
			t.Errorf("PeriodOfHour(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
