package formel

import (
	"reflect"
	"testing"
)

func TestRangeIndexes(t *testing.T) {
	r := MakeRange(4, 2, "swapped")
	if r.From != 2 || r.To != 4 {
		t.Fatalf("expected range to be normalized to 2…4, is %v", r)
	}
	if !reflect.DeepEqual(r.Indexes(), []int{2, 3, 4}) {
		t.Errorf("expected indexes [2 3 4], have %v", r.Indexes())
	}
	if r.Len() != 3 {
		t.Errorf("expected length 3, have %d", r.Len())
	}
	if r.Contains(1) || !r.Contains(2) || !r.Contains(4) || r.Contains(5) {
		t.Errorf("Contains does not respect inclusive bounds")
	}
}

func TestRangePosition(t *testing.T) {
	for i, test := range []struct {
		r   Range
		pos string
	}{
		{r: MakeRange(3, 3, ""), pos: "position 3"},
		{r: MakeRange(0, 4, ""), pos: "positions 0-4"},
	} {
		if p := test.r.Position(); p != test.pos {
			t.Errorf("test %d: expected %q, have %q", i, test.pos, p)
		}
	}
}
