package order

import "testing"

func TestLexicalAscending(t *testing.T) {
	p := New(Lexical, false, false)
	cases := []struct {
		a, b string
	}{
		{"10", "2"},
		{"Apple", "apple"},
		{"apple", "banana"},
		{"", "a"},
	}
	for _, tc := range cases {
		if !p(tc.a, tc.b) {
			t.Errorf("lexical: expected %q to precede %q", tc.a, tc.b)
		}
		if p(tc.b, tc.a) {
			t.Errorf("lexical: %q must not precede %q", tc.b, tc.a)
		}
	}
}

func TestNaturalVersusLexicalContrast(t *testing.T) {
	natural := New(Natural, false, false)
	lexical := New(Lexical, false, false)

	// item2 < item10 < item10a under natural order.
	if !natural("item2", "item10") {
		t.Errorf("natural: expected item2 to precede item10")
	}
	if !natural("item10", "item10a") {
		t.Errorf("natural: expected item10 to precede item10a")
	}
	// The lexical order reverses the first pair.
	if !lexical("item10", "item2") {
		t.Errorf("lexical: expected item10 to precede item2")
	}
}

func TestNaturalDigitRuns(t *testing.T) {
	p := New(Natural, false, false)
	cases := []struct {
		a, b string
	}{
		{"2", "10"},
		{"file9", "file10"},
		{"a2b", "a10b"},
		{"x99y", "x100y"},
		// Equal magnitude: the shorter run precedes.
		{"7", "007"},
		{"a7z", "a007z"},
		// Leading zeros do not change magnitude.
		{"007", "8"},
		// Strict run-sequence prefix precedes.
		{"file", "file1"},
	}
	for _, tc := range cases {
		if !p(tc.a, tc.b) {
			t.Errorf("natural: expected %q to precede %q", tc.a, tc.b)
		}
		if p(tc.b, tc.a) {
			t.Errorf("natural: %q must not precede %q", tc.b, tc.a)
		}
	}
}

func TestNaturalCaseInsensitive(t *testing.T) {
	p := New(Natural, true, false)
	if !Equiv(p, "Item10", "item10") {
		t.Errorf("case-insensitive natural: Item10 and item10 must be equivalent")
	}
	if !p("ITEM2", "item10") {
		t.Errorf("case-insensitive natural: expected ITEM2 to precede item10")
	}
}

func TestIgnoreCaseLexicalEquivalence(t *testing.T) {
	p := New(Lexical, true, false)
	if !Equiv(p, "Apple", "apple") {
		t.Errorf("ignore-case: Apple and apple must be equivalent")
	}
	if !p("apple", "Banana") {
		t.Errorf("ignore-case: expected apple to precede Banana")
	}
}

func TestReverseFlipsDirection(t *testing.T) {
	for _, kind := range []Kind{Lexical, Natural, Logical} {
		asc := New(kind, false, false)
		desc := New(kind, false, true)
		a, b := "alpha", "beta"
		if !asc(a, b) {
			t.Fatalf("%s ascending: expected %q to precede %q", kind, a, b)
		}
		if !desc(b, a) {
			t.Errorf("%s descending: expected %q to precede %q", kind, b, a)
		}
		if desc(a, b) {
			t.Errorf("%s descending: %q must not precede %q", kind, a, b)
		}
	}
}

func TestLogicalNumericOrdering(t *testing.T) {
	p := New(Logical, false, false)
	if !p("file9", "file10") {
		t.Errorf("logical: expected file9 to precede file10")
	}
	if !Equiv(p, "File10", "file10") {
		t.Errorf("logical: File10 and file10 must be equivalent")
	}
}

// Antisymmetry over a mixed sample: no policy may claim both a<b and b<a.
func TestPoliciesAreStrict(t *testing.T) {
	sample := []string{"", "a", "A", "10", "2", "007", "7", "item10a", "item2", "яблоко"}
	for _, kind := range []Kind{Lexical, Natural, Logical} {
		for _, ignoreCase := range []bool{false, true} {
			if kind == Logical && ignoreCase {
				continue // rejected by config validation
			}
			p := New(kind, ignoreCase, false)
			for _, a := range sample {
				for _, b := range sample {
					if p(a, b) && p(b, a) {
						t.Errorf("%s ignoreCase=%v: both %q<%q and %q<%q", kind, ignoreCase, a, b, b, a)
					}
				}
			}
		}
	}
}

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{Lexical, "lexical"},
		{Natural, "natural"},
		{Logical, "logical"},
		{Kind(42), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tc.kind), got, tc.want)
		}
	}
}
