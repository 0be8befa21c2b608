package csvsource

import "testing"

func TestResolveYearBlocks(t *testing.T) {
	t.Run("resolves offsets for each year column", func(t *testing.T) {
		headers := []string{
			"n°", "SOCIO", "DATA", "LUOGO", "REFER.",
			"2023", "ric", "bloc", "data pag", "quota",
			"2024", "ric", "bloc", "data pag", "quota",
		}
		blocks := ResolveYearBlocks(headers)
		if len(blocks) != 2 {
			t.Fatalf("got %d blocks, want 2", len(blocks))
		}
		want := []YearBlock{
			{Year: 2023, ReceiptCol: 6, BookletCol: 7, DateCol: 8, FeeCol: 9},
			{Year: 2024, ReceiptCol: 11, BookletCol: 12, DateCol: 13, FeeCol: 14},
		}
		for i, b := range blocks {
			if b != want[i] {
				t.Errorf("block %d = %+v, want %+v", i, b, want[i])
			}
		}
	})

	t.Run("drops block with insufficient trailing columns", func(t *testing.T) {
		// 2024 has only three columns after it, so the whole block goes.
		headers := []string{
			"n°", "SOCIO",
			"2023", "ric", "bloc", "data pag", "quota",
			"2024", "ric", "bloc", "data pag",
		}
		blocks := ResolveYearBlocks(headers)
		if len(blocks) != 1 {
			t.Fatalf("got %d blocks, want 1", len(blocks))
		}
		if blocks[0].Year != 2023 {
			t.Errorf("kept year %d, want 2023", blocks[0].Year)
		}
	})

	t.Run("no year columns yields empty list", func(t *testing.T) {
		if blocks := ResolveYearBlocks([]string{"n°", "SOCIO", "DATA"}); len(blocks) != 0 {
			t.Errorf("got %d blocks, want 0", len(blocks))
		}
	})

	t.Run("year header must be exactly four digits", func(t *testing.T) {
		headers := []string{"202", "a", "b", "c", "d", "20234", "a", "b", "c", "d", "2x23", "a", "b", "c", "d"}
		if blocks := ResolveYearBlocks(headers); len(blocks) != 0 {
			t.Errorf("got %d blocks, want 0", len(blocks))
		}
	})
}
