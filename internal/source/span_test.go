package source

import "testing"

func TestSpanCover(t *testing.T) {
	from := Span{File: 1, Start: 2, End: 14}
	to := Span{File: 1, Start: 19, End: 31}

	got := from.Cover(to)
	want := Span{File: 1, Start: 2, End: 31}
	if got != want {
		t.Errorf("Cover = %+v, want %+v", got, want)
	}
	// порядок аргументов не важен
	if got := to.Cover(from); got != want {
		t.Errorf("Cover reversed = %+v, want %+v", got, want)
	}
	// span из другого файла игнорируется
	other := Span{File: 2, Start: 0, End: 50}
	if got := from.Cover(other); got != from {
		t.Errorf("Cover across files = %+v, want %+v", got, from)
	}
}

func TestSpanShiftRight(t *testing.T) {
	got := Span{File: 3, Start: 14, End: 17}.ShiftRight(5)
	want := Span{File: 3, Start: 19, End: 22}
	if got != want {
		t.Errorf("ShiftRight = %+v, want %+v", got, want)
	}
	if got.Len() != 3 {
		t.Errorf("ShiftRight changed the length: %d", got.Len())
	}
}
