package list

import "testing"

func buildList(t *testing.T, values ...int) *List[int] {
	t.Helper()
	l := New[int]()
	for _, v := range values {
		if e := l.PushBack(v); e == nil || e.Value != v {
			t.Fatalf("PushBack(%d) returned unusable element", v)
		}
	}
	return l
}

func collect(t *testing.T, l *List[int]) []int {
	t.Helper()
	var out []int
	for v := range l.Values() {
		out = append(out, v)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewListIsEmpty(t *testing.T) {
	l := New[int]()
	if !l.IsEmpty() || l.Len() != 0 {
		t.Fatalf("new list not empty: len=%d", l.Len())
	}
	if l.First() != nil || l.Last() != nil || l.At(0) != nil {
		t.Fatalf("empty list must have no elements")
	}
	if _, ok := l.RemoveFirst(); ok {
		t.Fatalf("RemoveFirst on empty list must report absence")
	}
	if _, ok := l.RemoveLast(); ok {
		t.Fatalf("RemoveLast on empty list must report absence")
	}
}

func TestPushBack(t *testing.T) {
	l := New[int]()
	l.PushBack(11)
	if l.IsEmpty() || l.Len() != 1 {
		t.Fatalf("unexpected list state after first PushBack: len=%d", l.Len())
	}
	if l.First() != l.Last() {
		t.Fatalf("with one element, first and last must coincide")
	}
	if l.First().Value != 11 {
		t.Fatalf("head value: got %d want 11", l.First().Value)
	}
	l.PushBack(22)
	if l.Len() != 2 || l.Last().Value != 22 {
		t.Fatalf("unexpected state after second PushBack: len=%d last=%d", l.Len(), l.Last().Value)
	}
	if v, ok := l.RemoveLast(); !ok || v != 22 {
		t.Fatalf("RemoveLast: got (%d,%v) want (22,true)", v, ok)
	}
	if l.Len() != 1 || l.Last().Value != 11 {
		t.Fatalf("tail not restored after RemoveLast: len=%d", l.Len())
	}
	if v, ok := l.RemoveLast(); !ok || v != 11 {
		t.Fatalf("RemoveLast: got (%d,%v) want (11,true)", v, ok)
	}
	if !l.IsEmpty() || l.Last() != nil {
		t.Fatalf("list not empty after removing the only element")
	}
}

func TestPushFrontAndRemoveFirst(t *testing.T) {
	l := New[int]()
	l.PushFront(33)
	if l.Len() != 1 || l.First().Value != 33 {
		t.Fatalf("unexpected state after PushFront: len=%d", l.Len())
	}
	l.PushFront(44)
	if l.Len() != 2 || l.First().Value != 44 {
		t.Fatalf("head must be the most recent PushFront, got %d", l.First().Value)
	}
	if l.Last().Value != 33 {
		t.Fatalf("tail changed by PushFront: got %d want 33", l.Last().Value)
	}
	if v, ok := l.RemoveFirst(); !ok || v != 44 {
		t.Fatalf("RemoveFirst: got (%d,%v) want (44,true)", v, ok)
	}
	if v, ok := l.RemoveFirst(); !ok || v != 33 {
		t.Fatalf("RemoveFirst: got (%d,%v) want (33,true)", v, ok)
	}
	if !l.IsEmpty() {
		t.Fatalf("list not empty after removing every element")
	}
	if _, ok := l.RemoveFirst(); ok {
		t.Fatalf("RemoveFirst on drained list must report absence")
	}
}

func TestRemoveAfter(t *testing.T) {
	l := buildList(t, 1, 2, 3)
	if v, ok := l.RemoveAfter(l.First()); !ok || v != 2 {
		t.Fatalf("RemoveAfter(head): got (%d,%v) want (2,true)", v, ok)
	}
	if l.Len() != 2 || l.First().Next().Value != 3 {
		t.Fatalf("middle removal must relink head to the former tail")
	}
	if v, ok := l.RemoveAfter(l.First()); !ok || v != 3 {
		t.Fatalf("RemoveAfter(head): got (%d,%v) want (3,true)", v, ok)
	}
	if l.Last() != l.First() {
		t.Fatalf("tail must follow when the last element is removed")
	}
	if _, ok := l.RemoveAfter(l.First()); ok {
		t.Fatalf("RemoveAfter(tail) must report absence")
	}
	if _, ok := l.RemoveAfter(nil); ok {
		t.Fatalf("RemoveAfter(nil) must report absence")
	}
}

func TestAt(t *testing.T) {
	l := buildList(t, 10, 20, 30)
	cases := []struct {
		index int
		want  int
		ok    bool
	}{
		{0, 10, true},
		{1, 20, true},
		{2, 30, true},
		{-1, 0, false},
		{3, 0, false},
	}
	for _, c := range cases {
		e := l.At(c.index)
		if c.ok != (e != nil) {
			t.Errorf("At(%d): presence mismatch", c.index)
			continue
		}
		if e != nil && e.Value != c.want {
			t.Errorf("At(%d): got %d want %d", c.index, e.Value, c.want)
		}
	}
}

func TestEachStopsEarly(t *testing.T) {
	l := buildList(t, 1, 2, 3, 4, 5)
	visited := 0
	l.Each(func(v int) bool {
		visited++
		return v < 3
	})
	if visited != 3 {
		t.Fatalf("expected Each to stop after 3 values, visited %d", visited)
	}
}

func TestValuesOrder(t *testing.T) {
	l := buildList(t, 5, 6, 7)
	l.PushFront(4)
	if got, want := collect(t, l), []int{4, 5, 6, 7}; !equalInts(got, want) {
		t.Fatalf("unexpected value order: got %v want %v", got, want)
	}
}

func TestClearAndReuse(t *testing.T) {
	l := buildList(t, 1, 2, 3)
	first := l.First()
	l.Clear()
	if !l.IsEmpty() || l.First() != nil || l.Last() != nil {
		t.Fatalf("list not empty after Clear")
	}
	if first.Next() != nil {
		t.Fatalf("stale element handles must be detached by Clear")
	}
	l.PushBack(9)
	if l.Len() != 1 || l.First().Value != 9 {
		t.Fatalf("list not reusable after Clear")
	}
}

func TestElementHandlesStayLive(t *testing.T) {
	l := New[string]()
	e := l.PushBack("old")
	l.PushBack("next")
	e.Value = "new"
	if l.First().Value != "new" {
		t.Fatalf("value mutation through the element handle not visible")
	}
	if e.Next() == nil || e.Next().Value != "next" {
		t.Fatalf("element handle must expose its successor")
	}
}

func TestTailMaintenance(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	if _, ok := l.RemoveFirst(); !ok {
		t.Fatalf("RemoveFirst failed on single-element list")
	}
	l.PushBack(2)
	if l.First() != l.Last() || l.Last().Value != 2 {
		t.Fatalf("tail pointer stale after drain and refill")
	}
	l.PushFront(1)
	if l.Last().Value != 2 || l.Len() != 2 {
		t.Fatalf("unexpected state after PushFront: len=%d", l.Len())
	}
}
