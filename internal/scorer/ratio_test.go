package scorer

import "testing"

func TestTokenSortRatioIdentical(t *testing.T) {
	if got := tokenSortRatio("ivan petrov", "ivan petrov"); got != 100 {
		t.Errorf("tokenSortRatio(identical) = %d, want 100", got)
	}
}

func TestTokenSortRatioIgnoresWordOrder(t *testing.T) {
	a := tokenSortRatio("ivan petrov", "petrov ivan")
	if a != 100 {
		t.Errorf("tokenSortRatio(reordered tokens) = %d, want 100", a)
	}
}

func TestTokenSortRatioCompletelyDifferent(t *testing.T) {
	got := tokenSortRatio("smith", "jones")
	if got > 40 {
		t.Errorf("tokenSortRatio(unrelated) = %d, want a low ratio", got)
	}
}

func TestTokenSortRatioEmptyBoth(t *testing.T) {
	if got := tokenSortRatio("", ""); got != 100 {
		t.Errorf("tokenSortRatio(\"\", \"\") = %d, want 100", got)
	}
}

func TestTokenSortRatioPartialOverlap(t *testing.T) {
	got := tokenSortRatio("ivan petrov", "ivan sergeyevich petrov ivanovich")
	if got <= 0 || got >= 100 {
		t.Errorf("tokenSortRatio(partial overlap) = %d, want strictly between 0 and 100", got)
	}
}
