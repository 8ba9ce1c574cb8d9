package sequence

import (
	"context"
	"slices"
	"testing"
)

func TestAsNew_NilSequence(t *testing.T) {
	_, err := AsNew[string](context.Background(), nil)
	assertMissing(t, err, "seq")
}

func TestAsNew_ReturnsNotThis(t *testing.T) {
	src := FromSlice([]string{})
	got, err := AsNew(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	if got == src {
		t.Error("expected a distinct sequence instance")
	}
}

func TestAsNew_EnumerationMatchesThis(t *testing.T) {
	tests := [][]string{
		{"A"},
		{"A", "B"},
		{"A", "B", "C"},
	}
	for _, items := range tests {
		got, err := AsNew(context.Background(), FromSlice(items))
		if err != nil {
			t.Fatal(err)
		}
		values, err := Collect(context.Background(), got)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(values, items) {
			t.Errorf("expected %v, got %v", items, values)
		}
	}
}

func TestAsNew_IndependentOfSource(t *testing.T) {
	items := []string{"A", "B"}
	got, err := AsNew(context.Background(), FromSlice(items))
	if err != nil {
		t.Fatal(err)
	}
	items[0] = "Z"
	values, _ := Collect(context.Background(), got)
	if !slices.Equal(values, []string{"A", "B"}) {
		t.Errorf("copy should not see source mutation, got %v", values)
	}
}

func TestAsNew_Idempotent(t *testing.T) {
	first, err := AsNew(context.Background(), FromSlice([]int{1, 2, 3}))
	if err != nil {
		t.Fatal(err)
	}
	second, err := AsNew(context.Background(), first)
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("expected copy of a copy to be a distinct instance")
	}
	a, _ := Collect(context.Background(), first)
	b, _ := Collect(context.Background(), second)
	if !slices.Equal(a, b) {
		t.Errorf("expected equal copies, got %v and %v", a, b)
	}
}

func TestAsNew_MakesSinglePassReplayable(t *testing.T) {
	got, err := AsNew(context.Background(), From[int](&countingIter{n: 2}))
	if err != nil {
		t.Fatal(err)
	}
	for pass := 0; pass < 2; pass++ {
		values, _ := Collect(context.Background(), got)
		if !slices.Equal(values, []int{1, 2}) {
			t.Errorf("pass %d: got %v", pass, values)
		}
	}
}

func TestSingle_EnumerationMatchesThis(t *testing.T) {
	for _, v := range []string{"", "This is a test", "This is only a test"} {
		got, err := Collect(context.Background(), Single(v))
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, []string{v}) {
			t.Errorf("expected [%q], got %v", v, got)
		}
	}
}

func TestSingle_NilPayload(t *testing.T) {
	got, err := Collect(context.Background(), Single[*string](nil))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != nil {
		t.Errorf("expected exactly one nil element, got %v", got)
	}
}
