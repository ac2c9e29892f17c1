package diff_test

import (
	"fmt"
	"reflect"
	"strconv"
	"testing"

	"github.com/lanrat/binsort/diff"
)

func TestNil(t *testing.T) {
	r, err := diff.Strings(nil, nil, nil)
	if err == nil {
		t.Fatal("diff.Strings(nil, nil, nil) should error")
	}
	if r.ExtraA+r.ExtraB+r.TotalA+r.TotalB+r.Common != 0 {
		t.Fatalf("results Count not 0 %s", r.String())
	}
}

func Test1A(t *testing.T) {
	r, err := diff.Strings([]string{"Hello A"}, nil, func(d diff.Delta, s string) error {
		if d != diff.OLD {
			t.Fatalf("got delta %s for %q, want %s", d, s, diff.OLD)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.ExtraA != 1 || r.ExtraB != 0 || r.TotalA != 1 || r.TotalB != 0 || r.Common != 0 {
		t.Fatalf("results count not a+1 %s", r.String())
	}
}

func Test1B(t *testing.T) {
	r, err := diff.Strings(nil, []string{"Hello B"}, func(d diff.Delta, s string) error {
		if d != diff.NEW {
			t.Fatalf("got delta %s for %q, want %s", d, s, diff.NEW)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.ExtraA != 0 || r.ExtraB != 1 || r.TotalA != 0 || r.TotalB != 1 || r.Common != 0 {
		t.Fatalf("results count not b+1 %s", r.String())
	}
}

func TestCommon(t *testing.T) {
	var a, b []string
	for i := 0; i < 30; i++ {
		a = append(a, fmt.Sprintf("%02d", i))
		b = append(b, fmt.Sprintf("%02d", i))
	}
	r, err := diff.Strings(a, b, func(d diff.Delta, s string) error {
		t.Fatalf("common resultF called for %s %q", d, s)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.ExtraA != 0 || r.ExtraB != 0 || r.TotalA != 30 || r.TotalB != 30 || r.Common != 30 {
		t.Fatalf("results count not 30 common %s", r.String())
	}
	if !r.SameElements() {
		t.Fatalf("SameElements() = false for identical slices")
	}
}

func TestMix(t *testing.T) {
	var a, b []int
	for i := 0; i < 30; i++ {
		a = append(a, i)
		b = append(b, i)
	}
	for i := 30; i < 60; i++ {
		if i%2 == 0 {
			a = append(a, i)
		} else {
			b = append(b, i)
		}
	}
	for i := 60; i < 90; i++ {
		a = append(a, i)
		b = append(b, i)
	}
	r, err := diff.Ordered(a, b, diff.Discard[int])
	if err != nil {
		t.Fatal(err)
	}
	if r.ExtraA != 15 || r.ExtraB != 15 || r.TotalA != 75 || r.TotalB != 75 || r.Common != 60 {
		t.Fatalf("results count not 30/15/15/30 common %s", r.String())
	}
	if r.SameElements() {
		t.Fatalf("SameElements() = true for different slices")
	}
}

// Test Generic function with integers
func TestGenericInts(t *testing.T) {
	var c diff.Collector[int]
	compareF := func(a, b int) int {
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	}

	r, err := diff.Generic([]int{1, 3, 5}, []int{2, 3, 4}, compareF, c.Func())
	if err != nil {
		t.Fatal(err)
	}
	if r.ExtraA != 2 || r.ExtraB != 2 || r.Common != 1 {
		t.Fatalf("unexpected result counts: %s", r.String())
	}

	var got []string
	for _, item := range c.Items {
		got = append(got, item.String())
	}
	expected := []string{"< 1", "> 2", "> 4", "< 5"}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

// Duplicates are matched one to one
func TestDuplicates(t *testing.T) {
	var c diff.Collector[int]
	r, err := diff.Ordered([]int{1, 1, 1, 2}, []int{1, 2, 2}, c.Func())
	if err != nil {
		t.Fatal(err)
	}
	if r.Common != 2 || r.ExtraA != 2 || r.ExtraB != 1 {
		t.Fatalf("unexpected result counts: %s", r.String())
	}
	expected := []diff.Item[int]{{D: diff.OLD, V: 1}, {D: diff.OLD, V: 1}, {D: diff.NEW, V: 2}}
	if !reflect.DeepEqual(c.Items, expected) {
		t.Fatalf("expected %v, got %v", expected, c.Items)
	}
}

func TestResultFuncError(t *testing.T) {
	testErr := fmt.Errorf("result function error")
	calls := 0
	_, err := diff.Ordered([]int{1, 2, 3}, []int{4, 5, 6}, func(diff.Delta, int) error {
		calls++
		return testErr
	})
	if err != testErr {
		t.Fatalf("expected result function error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("result function called %d times after error, want 1", calls)
	}
}

func TestEmptySlices(t *testing.T) {
	r, err := diff.Ordered([]int{}, []int{}, func(diff.Delta, int) error {
		t.Fatalf("result function should not be called for empty slices")
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.ExtraA+r.ExtraB+r.TotalA+r.TotalB+r.Common != 0 {
		t.Fatalf("expected all zero counts, got %s", r.String())
	}
}

func TestMismatch(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"both empty", nil, nil, -1},
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, -1},
		{"first differs", []int{2, 1}, []int{1, 2}, 0},
		{"middle differs", []int{1, 2, 3}, []int{1, 3, 3}, 1},
		{"a is prefix", []int{1, 2}, []int{1, 2, 3}, 2},
		{"b is prefix", []int{1, 2, 3}, []int{1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := diff.Mismatch(tt.a, tt.b, func(x, y int) int { return x - y }); got != tt.want {
				t.Errorf("Mismatch(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDeltaString(t *testing.T) {
	if diff.NEW.String() != ">" || diff.OLD.String() != "<" || diff.Delta(7).String() != "?" {
		t.Fatalf("unexpected Delta strings %q %q %q", diff.NEW, diff.OLD, diff.Delta(7))
	}
}

func TestPrintDiff(t *testing.T) {
	if err := diff.PrintDiff(diff.NEW, "x"); err != nil {
		t.Fatalf("PrintDiff returned error: %v", err)
	}
	if err := diff.PrintDiff(diff.OLD, 42); err != nil {
		t.Fatalf("PrintDiff returned error: %v", err)
	}
}

func TestLargeDataset(t *testing.T) {
	var a, b []string
	// keys are zero padded so lexicographic order matches numeric order
	for i := 0; i < 10000; i++ {
		k := fmt.Sprintf("%05d", i)
		switch {
		case i%3 == 0:
			a = append(a, k)
			b = append(b, k)
		case i%3 == 1:
			a = append(a, k)
		default:
			b = append(b, k)
		}
	}
	resultCount := 0
	r, err := diff.Strings(a, b, func(diff.Delta, string) error {
		resultCount++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	expectedCommon := uint64(3334)
	expectedExtraA := uint64(3333)
	expectedExtraB := uint64(3333)
	if r.Common != expectedCommon {
		t.Errorf("expected %d common items, got %d", expectedCommon, r.Common)
	}
	if r.ExtraA != expectedExtraA {
		t.Errorf("expected %d extra A items, got %d", expectedExtraA, r.ExtraA)
	}
	if r.ExtraB != expectedExtraB {
		t.Errorf("expected %d extra B items, got %d", expectedExtraB, r.ExtraB)
	}
	if uint64(resultCount) != expectedExtraA+expectedExtraB {
		t.Errorf("expected %d result callbacks, got %d", expectedExtraA+expectedExtraB, resultCount)
	}
	if r.String() != "A: "+strconv.Itoa(3333)+"/6667\tB: 3333/6667\tC: 3334" {
		t.Errorf("unexpected String() %q", r.String())
	}
}
