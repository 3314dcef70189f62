package utils

import "testing"

func TestZipTruncatesToShorterSlice(t *testing.T) {
	pairs := Zip([]int{1, 2, 3}, []int{10, 20})
	if len(pairs) != 2 {
		t.Fatalf("Zip() length = %d; want 2 (truncated to the shorter slice)", len(pairs))
	}
	if pairs[0] != (Pair[int]{First: 1, Second: 10}) {
		t.Errorf("pairs[0] = %+v; want {1 10}", pairs[0])
	}
	if pairs[1] != (Pair[int]{First: 2, Second: 20}) {
		t.Errorf("pairs[1] = %+v; want {2 20}", pairs[1])
	}
}

func TestZipEmptyInput(t *testing.T) {
	if pairs := Zip([]int{}, []int{1, 2}); len(pairs) != 0 {
		t.Errorf("Zip() with an empty slice = %v; want an empty result", pairs)
	}
}

func TestAllReturnsTrueForEmptySlice(t *testing.T) {
	if !All([]int{}, func(int) bool { return false }) {
		t.Error("All() over an empty slice should vacuously be true")
	}
}

func TestAllStopsOnFirstFailure(t *testing.T) {
	calls := 0
	if All([]int{2, 4, 5, 6}, func(n int) bool { calls++; return n%2 == 0 }) {
		t.Error("All() should be false when any element fails the predicate")
	}
	if calls != 3 {
		t.Errorf("predicate called %d times; want 3 (stopping at the failing 5)", calls)
	}
}

func TestAllTrueWhenEveryElementPasses(t *testing.T) {
	if !All([]int{2, 4, 6}, func(n int) bool { return n%2 == 0 }) {
		t.Error("All() should be true when every element passes the predicate")
	}
}
