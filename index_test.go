package spgkmer_test

import (
	"sort"
	"testing"

	set3 "github.com/TomTonic/Set3"

	spgkmer "github.com/kmerindex/spgkmer"
	"github.com/kmerindex/spgkmer/predicate"
)

func kmer(t *testing.T, s string) spgkmer.Key {
	t.Helper()
	k, err := spgkmer.NewKmer(s)
	if err != nil {
		t.Fatalf("NewKmer(%q): %v", s, err)
	}
	return k
}

func qkmer(t *testing.T, s string) spgkmer.Key {
	t.Helper()
	k, err := spgkmer.NewQKmer(s)
	if err != nil {
		t.Fatalf("NewQKmer(%q): %v", s, err)
	}
	return k
}

func buildIndex(t *testing.T, keys ...string) (*spgkmer.Index, map[string]spgkmer.RowRef) {
	t.Helper()
	ix := spgkmer.New()
	rows := make(map[string]spgkmer.RowRef, len(keys))
	for i, s := range keys {
		rows[s] = spgkmer.RowRef(i)
		if err := ix.Insert(kmer(t, s), spgkmer.RowRef(i)); err != nil {
			t.Fatalf("Insert(%q): %v", s, err)
		}
	}
	return ix, rows
}

func sortedRows(rows []spgkmer.RowRef) []spgkmer.RowRef {
	out := append([]spgkmer.RowRef{}, rows...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Exact-match lookup returns only the single exactly-equal key, not any
// key that merely shares a prefix with it.
func TestScenarioExactMatch(t *testing.T) {
	ix, rows := buildIndex(t, "ACGT", "ACGTA", "ACGTAA", "TTTT")
	got, err := ix.Lookup(kmer(t, "ACGT"))
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(got) != 1 || got[0] != rows["ACGT"] {
		t.Fatalf("Lookup(ACGT) = %v, want [%d]", got, rows["ACGT"])
	}
}

// Prefix search returns every indexed key that begins with the query.
func TestScenarioPrefixMatch(t *testing.T) {
	ix, rows := buildIndex(t, "ACGT", "ACGTA", "ACGTAA", "TTTT")
	got, err := ix.PrefixSearch(kmer(t, "ACG"))
	if err != nil {
		t.Fatalf("PrefixSearch: %v", err)
	}
	want := sortedRows([]spgkmer.RowRef{rows["ACGT"], rows["ACGTA"], rows["ACGTAA"]})
	if got2 := sortedRows(got); !equalRows(got2, want) {
		t.Fatalf("PrefixSearch(ACG) = %v, want %v", got2, want)
	}
}

// A prefix query longer than every indexed key matches nothing.
func TestScenarioPrefixLongerThanAnyKey(t *testing.T) {
	ix, _ := buildIndex(t, "ACGT", "ACGTA", "ACGTAA", "TTTT")
	got, err := ix.PrefixSearch(kmer(t, "ACGCCCCT"))
	if err != nil {
		t.Fatalf("PrefixSearch: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("PrefixSearch(ACGCCCCT) = %v, want empty", got)
	}
}

// IUPAC containment at equal length matches only the keys whose every
// position's nucleotide lies within the corresponding pattern position's
// ambiguity set.
func TestScenarioIupacContainsEqualLength(t *testing.T) {
	ix, rows := buildIndex(t, "ACGTA", "ACCTA", "TCGTA")
	pattern := qkmer(t, "ANGTA")
	got, err := ix.IupacSearch(pattern)
	if err != nil {
		t.Fatalf("IupacSearch: %v", err)
	}
	want := []spgkmer.RowRef{rows["ACGTA"]}
	if got2 := sortedRows(got); !equalRows(got2, want) {
		t.Fatalf("IupacSearch(ANGTA) = %v, want %v", got2, want)
	}
}

// IUPAC containment never matches a key of a different length.
func TestScenarioIupacLengthMismatch(t *testing.T) {
	ix, _ := buildIndex(t, "ACGTA", "ACCTA", "TCGTA")
	pattern := qkmer(t, "ANGT")
	got, err := ix.IupacSearch(pattern)
	if err != nil {
		t.Fatalf("IupacSearch: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("IupacSearch(ANGT) = %v, want empty", got)
	}
}

// Inserting ACGT, ACGA, TTTT from an empty tree keeps every key reachable
// by exact lookup, and prefix queries on 'A' and 'T' partition the keys
// into the two first-byte subtrees. The internal node shape itself is not
// inspected.
func TestScenarioSplitUpwardShape(t *testing.T) {
	ix, rows := buildIndex(t, "ACGT", "ACGA", "TTTT")
	for _, s := range []string{"ACGT", "ACGA", "TTTT"} {
		got, err := ix.Lookup(kmer(t, s))
		if err != nil {
			t.Fatalf("Lookup(%q): %v", s, err)
		}
		if len(got) != 1 || got[0] != rows[s] {
			t.Fatalf("Lookup(%q) = %v, want [%d]", s, got, rows[s])
		}
	}
	gotA, err := ix.PrefixSearch(kmer(t, "A"))
	if err != nil {
		t.Fatalf("PrefixSearch(A): %v", err)
	}
	want := sortedRows([]spgkmer.RowRef{rows["ACGT"], rows["ACGA"]})
	if got2 := sortedRows(gotA); !equalRows(got2, want) {
		t.Fatalf("PrefixSearch(A) = %v, want %v", got2, want)
	}
	gotT, err := ix.PrefixSearch(kmer(t, "T"))
	if err != nil {
		t.Fatalf("PrefixSearch(T): %v", err)
	}
	if len(gotT) != 1 || gotT[0] != rows["TTTT"] {
		t.Fatalf("PrefixSearch(T) = %v, want [%d]", gotT, rows["TTTT"])
	}
}

func TestNewKmerRejectsOverlongKmer(t *testing.T) {
	long := make([]byte, spgkmer.MaxKeyLen+1)
	for i := range long {
		long[i] = 'A'
	}
	if _, err := spgkmer.NewKmer(string(long)); err == nil {
		t.Fatalf("expected KeyTooLong for overlong k-mer")
	}
}

func TestNewKmerRejectsInvalidByte(t *testing.T) {
	if _, err := spgkmer.NewKmer("ACGX"); err == nil {
		t.Fatalf("expected InvalidNucleotide for non-ACGT byte")
	}
}

func TestNewKmerLowercaseIsNormalized(t *testing.T) {
	k, err := spgkmer.NewKmer("acgt")
	if err != nil {
		t.Fatalf("NewKmer: %v", err)
	}
	if string(k) != "ACGT" {
		t.Fatalf("NewKmer lowercase = %q, want ACGT", k)
	}
}

func TestScanSetDeduplicatesRepeatedInsertsOfSameKey(t *testing.T) {
	ix := spgkmer.New()
	k := kmer(t, "ACGT")
	if err := ix.Insert(k, 1); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := ix.Insert(k, 1); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	set, err := ix.ScanSet(predicate.Equal{Query: k})
	if err != nil {
		t.Fatalf("ScanSet: %v", err)
	}
	if set.Size() != 1 {
		t.Fatalf("ScanSet size = %d, want 1 (row 1 inserted twice)", set.Size())
	}
	if !set.Equals(set3.From(spgkmer.RowRef(1))) {
		t.Fatalf("ScanSet should contain exactly row 1")
	}
}

func equalRows(a, b []spgkmer.RowRef) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
