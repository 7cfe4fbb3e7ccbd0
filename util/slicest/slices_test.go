package slicest

import (
	"reflect"
	"strconv"
	"testing"
)

func TestMapAndMapI(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Fatalf("Map() = %v", got)
	}

	gotI := MapI([]string{"a", "b"}, func(i int, s string) string { return strconv.Itoa(i) + s })
	if !reflect.DeepEqual(gotI, []string{"0a", "1b"}) {
		t.Fatalf("MapI() = %v", gotI)
	}

	if got := Map([]int(nil), strconv.Itoa); len(got) != 0 {
		t.Fatalf("Map(nil) = %v", got)
	}
}

func TestReduce(t *testing.T) {
	sum := Reduce([]int{1, 2, 3, 4}, func(v, acc int) int { return acc + v })
	if sum != 10 {
		t.Fatalf("Reduce() = %d, want 10", sum)
	}

	joined := ReduceD([]string{"b", "c"}, "a", func(v, acc string) string { return acc + v })
	if joined != "abc" {
		t.Fatalf("ReduceD() = %q, want abc", joined)
	}
}
