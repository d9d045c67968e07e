package engine

// Window computes which rows of a growing grid must be materialized for the
// current viewport. Unmeasured rows contribute an estimated height so the
// total scrollable length stays accurate while content loads.
type Window struct {
	width     int
	viewportH int
	itemCount int
	estimate  int
	overscan  int
	measured  map[int]int
}

const (
	defaultRowEstimate = 380
	defaultOverscan    = 3
)

// Viewport width breakpoints, narrowest first. The count and monotonic
// ordering matter; the pixel values are layout policy.
var columnBreakpoints = []struct {
	maxWidth int
	columns  int
}{
	{640, 1},
	{1024, 2},
	{1280, 3},
}

func NewWindow() *Window {
	return &Window{
		estimate: defaultRowEstimate,
		overscan: defaultOverscan,
		measured: make(map[int]int),
	}
}

// ColumnsForWidth maps a viewport width to a column count.
func ColumnsForWidth(width int) int {
	for _, bp := range columnBreakpoints {
		if width < bp.maxWidth {
			return bp.columns
		}
	}
	return 4
}

// SetViewport records the viewport dimensions. Resizing changes the column
// count only; measured heights, item count, and scroll state are untouched.
func (w *Window) SetViewport(width, height int) {
	w.width = width
	w.viewportH = height
}

func (w *Window) SetItemCount(n int) {
	if n < 0 {
		n = 0
	}
	w.itemCount = n
}

func (w *Window) SetRowEstimate(px int) {
	if px > 0 {
		w.estimate = px
	}
}

func (w *Window) SetOverscan(rows int) {
	if rows >= 0 {
		w.overscan = rows
	}
}

func (w *Window) Columns() int {
	return ColumnsForWidth(w.width)
}

// RowCount is ceil(itemCount / columns).
func (w *Window) RowCount() int {
	cols := w.Columns()
	if w.itemCount == 0 || cols == 0 {
		return 0
	}
	return (w.itemCount + cols - 1) / cols
}

// MeasureRow replaces the estimate for one row with its rendered height.
func (w *Window) MeasureRow(row, height int) {
	if row < 0 || height <= 0 {
		return
	}
	w.measured[row] = height
}

func (w *Window) rowHeight(row int) int {
	if h, ok := w.measured[row]; ok {
		return h
	}
	return w.estimate
}

// RowOffset is the absolute vertical offset of a row's top edge.
func (w *Window) RowOffset(row int) int {
	offset := 0
	for i := 0; i < row; i++ {
		offset += w.rowHeight(i)
	}
	return offset
}

// TotalHeight accounts for every row, materialized or not, so the scrollbar
// length stays correct.
func (w *Window) TotalHeight() int {
	total := 0
	for i := 0; i < w.RowCount(); i++ {
		total += w.rowHeight(i)
	}
	return total
}

// VisibleRange returns the [first, last] rows to materialize for the given
// scroll offset, padded by the overscan margin. Returns (0, -1) when there
// are no rows.
func (w *Window) VisibleRange(scrollTop int) (int, int) {
	rows := w.RowCount()
	if rows == 0 {
		return 0, -1
	}
	if scrollTop < 0 {
		scrollTop = 0
	}

	first := 0
	offset := 0
	for first < rows-1 && offset+w.rowHeight(first) <= scrollTop {
		offset += w.rowHeight(first)
		first++
	}

	last := first
	bottom := scrollTop + w.viewportH
	for last < rows-1 && offset+w.rowHeight(last) < bottom {
		offset += w.rowHeight(last)
		last++
	}

	first -= w.overscan
	if first < 0 {
		first = 0
	}
	last += w.overscan
	if last > rows-1 {
		last = rows - 1
	}
	return first, last
}

// RowSpan returns the item index range [start, end) covered by a row.
func (w *Window) RowSpan(row int) (int, int) {
	cols := w.Columns()
	start := row * cols
	end := start + cols
	if start > w.itemCount {
		start = w.itemCount
	}
	if end > w.itemCount {
		end = w.itemCount
	}
	return start, end
}

// NearEnd reports whether the scroll position has come within margin pixels
// of the content end; it is the sentinel that triggers the next page load.
func (w *Window) NearEnd(scrollTop, margin int) bool {
	if w.RowCount() == 0 {
		return true
	}
	return scrollTop+w.viewportH+margin >= w.TotalHeight()
}
