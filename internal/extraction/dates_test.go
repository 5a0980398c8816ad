package extraction

import "testing"

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"month first", "05/13/2024", "2024-05-13", true},
		{"two digit year", "05/13/24", "2024-05-13", true},
		{"day first recovered by swap", "13/05/2024", "2024-05-13", true},
		{"dash separated", "06-15-2024", "2024-06-15", true},
		{"invalid day", "02/30/2024", "", false},
		{"day thirty two", "01/32/2024", "", false},
		{"both components over twelve", "13/13/2024", "", false},
		{"zero month", "0/5/2024", "", false},
		{"two parts", "05/2024", "", false},
		{"four parts", "1/2/3/4", "", false},
		{"non numeric", "ab/cd/ef", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := normalizeDate(c.input)
			if ok != c.ok {
				t.Fatalf("normalizeDate(%q): ok = %v, want %v", c.input, ok, c.ok)
			}
			if got != c.want {
				t.Errorf("normalizeDate(%q) = %q, want %q", c.input, got, c.want)
			}
		})
	}
}

func TestExtractDocumentDate(t *testing.T) {
	t.Run("slash format normalized", func(t *testing.T) {
		got := extractDocumentDate("Statement Date: 06/15/2024")
		if got == nil || *got != "2024-06-15" {
			t.Fatalf("got %v, want 2024-06-15", deref(got))
		}
	})
	t.Run("iso format returned as is", func(t *testing.T) {
		got := extractDocumentDate("Issued 2024-03-09 by vendor")
		if got == nil || *got != "2024-03-09" {
			t.Fatalf("got %v, want 2024-03-09", deref(got))
		}
	})
	t.Run("slash format preferred over iso", func(t *testing.T) {
		got := extractDocumentDate("2024-01-01\nPosted 03/04/2024")
		if got == nil || *got != "2024-03-04" {
			t.Fatalf("got %v, want 2024-03-04", deref(got))
		}
	})
	t.Run("invalid calendar date absent", func(t *testing.T) {
		if got := extractDocumentDate("Posted 02/30/2024"); got != nil {
			t.Fatalf("expected absent, got %v", *got)
		}
	})
	t.Run("no date", func(t *testing.T) {
		if got := extractDocumentDate("no dates here"); got != nil {
			t.Fatalf("expected absent, got %v", *got)
		}
	})
}

func TestExtractDueDate(t *testing.T) {
	t.Run("pass one keyword then date", func(t *testing.T) {
		got := extractDueDate("Payment due 05/01/2024\nTotal: $45.00")
		if got == nil || *got != "2024-05-01" {
			t.Fatalf("got %v, want 2024-05-01", deref(got))
		}
	})
	t.Run("pass one wins over later lines", func(t *testing.T) {
		got := extractDueDate("Due Date: 06/15/2024\nPay by 07/01/2024")
		if got == nil || *got != "2024-06-15" {
			t.Fatalf("got %v, want 2024-06-15", deref(got))
		}
	})
	t.Run("pass two bare date on due line", func(t *testing.T) {
		// Date precedes the keyword, so pass 1 cannot match.
		got := extractDueDate("05/01/2024 is when payment is due")
		if got == nil || *got != "2024-05-01" {
			t.Fatalf("got %v, want 2024-05-01", deref(got))
		}
	})
	t.Run("date without due context ignored", func(t *testing.T) {
		if got := extractDueDate("Visit date 05/01/2024"); got != nil {
			t.Fatalf("expected absent, got %v", *got)
		}
	})
	t.Run("dash separated due date", func(t *testing.T) {
		got := extractDueDate("Balance due 6-15-24")
		if got == nil || *got != "2024-06-15" {
			t.Fatalf("got %v, want 2024-06-15", deref(got))
		}
	})
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
