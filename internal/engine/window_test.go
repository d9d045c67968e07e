package engine

import "testing"

func TestColumnsForWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{320, 1},
		{639, 1},
		{640, 2},
		{1023, 2},
		{1024, 3},
		{1279, 3},
		{1280, 4},
		{1920, 4},
	}
	for _, tt := range tests {
		if got := ColumnsForWidth(tt.width); got != tt.want {
			t.Fatalf("ColumnsForWidth(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestRowCountCeil(t *testing.T) {
	w := NewWindow()
	w.SetViewport(1920, 900) // 4 columns
	w.SetItemCount(37)
	if got := w.RowCount(); got != 10 {
		t.Fatalf("RowCount=%d want 10 for 37 items in 4 columns", got)
	}

	w.SetItemCount(40)
	if got := w.RowCount(); got != 10 {
		t.Fatalf("RowCount=%d want 10 for 40 items in 4 columns", got)
	}

	w.SetItemCount(0)
	if got := w.RowCount(); got != 0 {
		t.Fatalf("RowCount=%d want 0 for empty list", got)
	}
}

func TestResizeKeepsMeasurements(t *testing.T) {
	w := NewWindow()
	w.SetViewport(1920, 900)
	w.SetItemCount(8)
	w.MeasureRow(0, 400)

	w.SetViewport(600, 900) // 1 column now
	if got := w.Columns(); got != 1 {
		t.Fatalf("Columns=%d want 1", got)
	}
	if got := w.RowCount(); got != 8 {
		t.Fatalf("RowCount=%d want 8", got)
	}
	// Row 0's measured height survives the resize.
	if got := w.RowOffset(1); got != 400 {
		t.Fatalf("RowOffset(1)=%d want 400", got)
	}
}

func TestTotalHeightMixesMeasuredAndEstimated(t *testing.T) {
	w := NewWindow()
	w.SetViewport(1920, 900)
	w.SetRowEstimate(100)
	w.SetItemCount(12) // 3 rows of 4

	if got := w.TotalHeight(); got != 300 {
		t.Fatalf("TotalHeight=%d want 300 all estimated", got)
	}
	w.MeasureRow(1, 150)
	if got := w.TotalHeight(); got != 350 {
		t.Fatalf("TotalHeight=%d want 350 with one measured row", got)
	}
	if got := w.RowOffset(2); got != 250 {
		t.Fatalf("RowOffset(2)=%d want 250", got)
	}
}

func TestVisibleRangeWithOverscan(t *testing.T) {
	w := NewWindow()
	w.SetViewport(1920, 200)
	w.SetRowEstimate(100)
	w.SetOverscan(1)
	w.SetItemCount(40) // 10 rows

	first, last := w.VisibleRange(0)
	if first != 0 || last != 2 {
		t.Fatalf("range=(%d,%d) want (0,2) at top", first, last)
	}

	first, last = w.VisibleRange(450)
	// Rows 4-6 intersect [450,650); overscan pads one row each side.
	if first != 3 || last != 7 {
		t.Fatalf("range=(%d,%d) want (3,7)", first, last)
	}

	first, last = w.VisibleRange(900)
	if last != 9 {
		t.Fatalf("last=%d want clamp to final row", last)
	}
}

func TestVisibleRangeEmpty(t *testing.T) {
	w := NewWindow()
	w.SetViewport(1920, 900)
	first, last := w.VisibleRange(0)
	if first != 0 || last != -1 {
		t.Fatalf("range=(%d,%d) want (0,-1) for no rows", first, last)
	}
}

func TestRowSpanClampsAtTail(t *testing.T) {
	w := NewWindow()
	w.SetViewport(1920, 900) // 4 columns
	w.SetItemCount(10)

	start, end := w.RowSpan(0)
	if start != 0 || end != 4 {
		t.Fatalf("span=(%d,%d) want (0,4)", start, end)
	}
	start, end = w.RowSpan(2)
	if start != 8 || end != 10 {
		t.Fatalf("span=(%d,%d) want (8,10)", start, end)
	}
}

func TestNearEnd(t *testing.T) {
	w := NewWindow()
	w.SetViewport(1920, 200)
	w.SetRowEstimate(100)
	w.SetItemCount(40) // 10 rows, 1000 total

	if w.NearEnd(0, 400) {
		t.Fatalf("top of a long list is not near the end")
	}
	if !w.NearEnd(450, 400) {
		t.Fatalf("450+200+400 >= 1000 should trigger the sentinel")
	}

	w.SetItemCount(0)
	if !w.NearEnd(0, 400) {
		t.Fatalf("an empty list is always near the end")
	}
}
