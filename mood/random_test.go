package mood

import (
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestRandomizeDelegatesToSetMood(t *testing.T) {
	orig := intN
	t.Cleanup(func() { intN = orig })

	// Deterministic sequence: indices 1, 2, 0 into AllMoods.
	sequence := []int{1, 2, 0}
	i := 0
	intN = func(n int) int {
		v := sequence[i%len(sequence)] % n
		i++
		return v
	}

	s := NewState()
	fired := 0
	s.OnChange(func() { fired++ })

	s.Randomize()
	s.Randomize()
	s.Randomize()

	if s.Current() != Happy {
		t.Fatalf("current = %v, want Happy", s.Current())
	}
	if h := s.History(); h[0] != Happy || h[1] != Excited || h[2] != Sad {
		t.Fatalf("history = %v, want [Happy Excited Sad]", h)
	}
	counts := s.Counts()
	if counts[Happy] != 1 || counts[Sad] != 1 || counts[Excited] != 1 {
		t.Fatalf("counts = %v, want one of each", counts)
	}
	if fired != 3 {
		t.Fatalf("observer fired %d times, want 3", fired)
	}
}

// TestRandomizeUniformity draws many moods and runs a chi-square
// goodness-of-fit test against the uniform distribution. The 0.001
// significance level keeps spurious failures to roughly one in a thousand
// runs while still catching a skewed source.
func TestRandomizeUniformity(t *testing.T) {
	const n = 30000

	s := NewState()
	for i := 0; i < n; i++ {
		s.Randomize()
	}
	counts := s.Counts()

	expected := float64(n) / float64(len(AllMoods))
	chi2 := 0.0
	for _, m := range AllMoods {
		diff := float64(counts[m]) - expected
		chi2 += diff * diff / expected
	}

	// Degrees of freedom: variants minus one.
	dist := distuv.ChiSquared{K: float64(len(AllMoods) - 1)}
	p := 1 - dist.CDF(chi2)
	if p < 0.001 {
		t.Fatalf("mood distribution not uniform: counts=%v chi2=%.2f p=%.5f", counts, chi2, p)
	}
}
