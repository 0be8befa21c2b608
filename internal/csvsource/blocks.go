package csvsource

import "strconv"

// The exports lay out payment data positionally: each 4-digit year header
// is followed by exactly four columns, in this order. The offsets are a
// fixed convention of the source format, not configurable.
const (
	offsetReceipt = 1
	offsetBooklet = 2
	offsetDate    = 3
	offsetFee     = 4

	blockWidth = 4
)

// YearBlock is one resolved group of payment columns for a membership year.
type YearBlock struct {
	Year       int
	ReceiptCol int
	BookletCol int
	DateCol    int
	FeeCol     int
}

// ResolveYearBlocks scans the header row for year columns and resolves
// their trailing payment columns. A header is a year column iff it is
// exactly four ASCII digits. Blocks whose trailing columns would run past
// the end of the table are excluded entirely; the caller sees them for no
// row, not just for rows missing data. An empty result is valid.
func ResolveYearBlocks(headers []string) []YearBlock {
	var blocks []YearBlock
	for i, h := range headers {
		if !isYearHeader(h) {
			continue
		}
		if i+blockWidth >= len(headers) {
			continue
		}
		year, _ := strconv.Atoi(h)
		blocks = append(blocks, YearBlock{
			Year:       year,
			ReceiptCol: i + offsetReceipt,
			BookletCol: i + offsetBooklet,
			DateCol:    i + offsetDate,
			FeeCol:     i + offsetFee,
		})
	}
	return blocks
}

func isYearHeader(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
