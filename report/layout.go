package report

// Align is the horizontal alignment of a table column.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// Column describes one column of the survey table. Proportion is the share
// of the usable page width the column takes, regardless of its content.
type Column struct {
	Key        string  `json:"key"`
	Header     string  `json:"header"`
	Proportion float64 `json:"proportion"`
	Align      Align   `json:"align"`
}

const (
	ColumnCity         = "city"
	ColumnNeighborhood = "neighborhood"
	ColumnIndex        = "index"
	ColumnLevel        = "level"
	ColumnCarious      = "carious"
	ColumnExtracted    = "extracted"
	ColumnFilled       = "filled"
	ColumnChildren     = "children"
	ColumnDate         = "date"
)

// ColumnProportions is keyed by column position and adds up to one.
var ColumnProportions = [ColumnCount]float64{0.17, 0.17, 0.08, 0.15, 0.08, 0.08, 0.08, 0.09, 0.10}

// ColumnCount is the number of fields in every report row.
const ColumnCount = 9

var columnKeys = [ColumnCount]string{
	ColumnCity,
	ColumnNeighborhood,
	ColumnIndex,
	ColumnLevel,
	ColumnCarious,
	ColumnExtracted,
	ColumnFilled,
	ColumnChildren,
	ColumnDate,
}

// columnAlign returns the alignment of the column at position i: the
// location columns are left aligned, every figure is centered.
func columnAlign(i int) Align {
	if i < 2 {
		return AlignLeft
	}
	return AlignCenter
}

// ColumnWidths splits the usable page width by ColumnProportions.
func ColumnWidths(usableWidth float64) []float64 {
	widths := make([]float64, ColumnCount)
	for i, p := range ColumnProportions {
		widths[i] = usableWidth * p
	}
	return widths
}

// newColumns builds the column table with headers resolved by header.
func newColumns(header func(key string) string) []Column {
	columns := make([]Column, ColumnCount)
	for i, key := range columnKeys {
		columns[i] = Column{
			Key:        key,
			Header:     header(key),
			Proportion: ColumnProportions[i],
			Align:      columnAlign(i),
		}
	}
	return columns
}
