package normalize

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind DateKind
		want string
	}{
		{"day-first full year", "29/08/1994", DateValid, "1994-08-29"},
		{"day-first two-digit year", "29/08/94", DateValid, "1994-08-29"},
		{"single-digit day and month", "5/3/2001", DateValid, "2001-03-05"},
		{"dashed", "29-08-1994", DateValid, "1994-08-29"},
		{"already canonical", "1994-08-29", DateValid, "1994-08-29"},
		{"surrounding whitespace", "  29/08/1994 ", DateValid, "1994-08-29"},
		{"empty", "", DateAbsent, ""},
		{"whitespace only", "   ", DateAbsent, ""},
		{"garbage", "non so", DateInvalid, "non so"},
		{"impossible date", "45/13/1994", DateInvalid, "45/13/1994"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDate(tt.in)
			if got.Kind != tt.kind {
				t.Fatalf("NormalizeDate(%q) kind = %v, want %v", tt.in, got.Kind, tt.kind)
			}
			if got.Value != tt.want {
				t.Errorf("NormalizeDate(%q) value = %q, want %q", tt.in, got.Value, tt.want)
			}
		})
	}
}

func TestDateResultStored(t *testing.T) {
	if got := NormalizeDate("").Stored(); got != nil {
		t.Errorf("absent date Stored() = %q, want nil", *got)
	}
	if got := NormalizeDate("29/08/1994").Stored(); got == nil || *got != "1994-08-29" {
		t.Errorf("valid date Stored() = %v, want 1994-08-29", got)
	}
	// Unparseable text is kept, not discarded.
	if got := NormalizeDate("boh").Stored(); got == nil || *got != "boh" {
		t.Errorf("invalid date Stored() = %v, want original text", got)
	}
}
