package csvsource

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	t.Run("reads UTF-8 table with header", func(t *testing.T) {
		path := writeTemp(t, "soci.csv", []byte("n°,SOCIO,DATA\n1,ROSSI Mario,29/08/1994\n"))
		table, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if table.Name != "soci.csv" {
			t.Errorf("Name = %q, want soci.csv", table.Name)
		}
		if len(table.Rows) != 1 {
			t.Fatalf("got %d rows, want 1", len(table.Rows))
		}
		if got := table.Field(table.Rows[0], "SOCIO"); got != "ROSSI Mario" {
			t.Errorf("SOCIO = %q, want ROSSI Mario", got)
		}
	})

	t.Run("falls back to ISO-8859-1", func(t *testing.T) {
		// "Nicolò" with 0xF2 for ò, invalid as UTF-8.
		data := []byte("n,SOCIO\n1,BIANCHI Nicol\xf2\n")
		path := writeTemp(t, "legacy.csv", data)
		table, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if got := table.Field(table.Rows[0], "SOCIO"); got != "BIANCHI Nicolò" {
			t.Errorf("SOCIO = %q, want BIANCHI Nicolò", got)
		}
	})

	t.Run("tolerates ragged rows", func(t *testing.T) {
		path := writeTemp(t, "ragged.csv", []byte("a,b,c\n1,2\n"))
		table, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if got := table.Field(table.Rows[0], "c"); got != "" {
			t.Errorf("missing trailing cell = %q, want empty", got)
		}
	})

	t.Run("duplicate headers resolve to first occurrence", func(t *testing.T) {
		path := writeTemp(t, "dup.csv", []byte("x,q,q\n1,first,second\n"))
		table, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if got := table.Field(table.Rows[0], "q"); got != "first" {
			t.Errorf("q = %q, want first", got)
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("empty file returns error", func(t *testing.T) {
		path := writeTemp(t, "empty.csv", nil)
		if _, err := ReadFile(path); err == nil {
			t.Error("expected error for empty file")
		}
	})
}
