package bib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}

func dates(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.DateOfPublication
	}
	return out
}

func TestSortByTitle(t *testing.T) {
	t.Run("empty and nil", func(t *testing.T) {
		assert.Equal(t, []Record{}, SortByTitle([]Record{}, false))
		got := SortByTitle(nil, false)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	records := []Record{
		{Title: "Neuromancer"},
		{Title: "Dune"},
		{Title: "Foundation"},
		{Title: "Zodiac"},
	}

	t.Run("ascending", func(t *testing.T) {
		assert.Equal(t, []string{"Dune", "Foundation", "Neuromancer", "Zodiac"}, titles(SortByTitle(records, false)))
	})

	t.Run("descending mirrors ascending", func(t *testing.T) {
		asc := SortByTitle(records, false)
		desc := SortByTitle(asc, true)
		for i := range asc {
			assert.Equal(t, asc[i], desc[len(desc)-1-i])
		}
	})

	t.Run("input untouched", func(t *testing.T) {
		_ = SortByTitle(records, false)
		assert.Equal(t, "Neuromancer", records[0].Title)
	})

	t.Run("byte order", func(t *testing.T) {
		got := SortByTitle([]Record{{Title: "b"}, {Title: "B"}, {Title: "a"}, {Title: "N/A"}}, false)
		assert.Equal(t, []string{"B", "N/A", "a", "b"}, titles(got))
	})

	t.Run("ties keep input order in both directions", func(t *testing.T) {
		in := []Record{
			{Title: "Same", ISBN: "1"},
			{Title: "Alpha", ISBN: "2"},
			{Title: "Same", ISBN: "3"},
		}

		asc := SortByTitle(in, false)
		assert.Equal(t, []string{"2", "1", "3"}, []string{asc[0].ISBN, asc[1].ISBN, asc[2].ISBN})

		desc := SortByTitle(in, true)
		assert.Equal(t, []string{"1", "3", "2"}, []string{desc[0].ISBN, desc[1].ISBN, desc[2].ISBN})
	})
}

func TestSortByPublicationDate(t *testing.T) {
	records := []Record{
		{Title: "A", DateOfPublication: "2001"},
		{Title: "B", DateOfPublication: "1999"},
		{Title: "C", DateOfPublication: "2010"},
	}

	t.Run("ascending", func(t *testing.T) {
		got, err := SortByPublicationDate(records, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"1999", "2001", "2010"}, dates(got))
	})

	t.Run("descending", func(t *testing.T) {
		got, err := SortByPublicationDate(records, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"2010", "2001", "1999"}, dates(got))
	})

	t.Run("numeric not lexicographic", func(t *testing.T) {
		got, err := SortByPublicationDate([]Record{{DateOfPublication: "999"}, {DateOfPublication: "1000"}}, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"999", "1000"}, dates(got))
	})

	t.Run("empty and nil", func(t *testing.T) {
		got, err := SortByPublicationDate(nil, false)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("sentinel date fails", func(t *testing.T) {
		withMissing := append([]Record{{Title: "Unknown", DateOfPublication: NotAvailable}}, records...)
		_, err := SortByPublicationDate(withMissing, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFormat)
		assert.Contains(t, err.Error(), `"N/A"`)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		in := []Record{
			{Title: "first", DateOfPublication: "2000"},
			{Title: "older", DateOfPublication: "1990"},
			{Title: "second", DateOfPublication: "2000"},
		}
		desc, err := SortByPublicationDate(in, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second", "older"}, titles(desc))
	})
}

func TestParseSortMethod(t *testing.T) {
	tests := map[string]SortMethod{
		"descending_alphabetical": DescendingAlphabetical,
		"ascending_publish_date":  AscendingPublishDate,
		"descending_publish_date": DescendingPublishDate,
		"ascending_alphabetical":  AscendingAlphabetical,
		"":                        AscendingAlphabetical,
		"bogus":                   AscendingAlphabetical,
		"DESCENDING_ALPHABETICAL": AscendingAlphabetical,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseSortMethod(in), "input %q", in)
	}
}

func TestSort(t *testing.T) {
	records := []Record{
		{Title: "B", DateOfPublication: "1990"},
		{Title: "A", DateOfPublication: "2020"},
		{Title: "C", DateOfPublication: "2000"},
	}

	tests := []struct {
		method SortMethod
		want   []string
	}{
		{AscendingAlphabetical, []string{"A", "B", "C"}},
		{DescendingAlphabetical, []string{"C", "B", "A"}},
		{AscendingPublishDate, []string{"B", "C", "A"}},
		{DescendingPublishDate, []string{"A", "C", "B"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			got, err := Sort(records, tt.method)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}

	t.Run("title sort tolerates missing dates", func(t *testing.T) {
		_, err := Sort([]Record{{Title: "X", DateOfPublication: NotAvailable}}, AscendingAlphabetical)
		assert.NoError(t, err)
	})
}

func TestRecord_String(t *testing.T) {
	r := Record{Title: "Dune", Author: "Herbert, Frank", ISBN: "0441013597", DateOfPublication: "1965", CallNumber: "PS3558.E63 D8"}
	want := "Title: Dune\nAuthor: Herbert, Frank\nISBN: 0441013597\nDate Of Publication: 1965\nCall Number: PS3558.E63 D8"
	assert.Equal(t, want, r.String())
}
