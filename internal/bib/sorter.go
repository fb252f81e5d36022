package bib

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// SortMethod selects the order of a result set.
type SortMethod string

const (
	AscendingAlphabetical  SortMethod = "ascending_alphabetical"
	DescendingAlphabetical SortMethod = "descending_alphabetical"
	AscendingPublishDate   SortMethod = "ascending_publish_date"
	DescendingPublishDate  SortMethod = "descending_publish_date"
)

// SortMethods lists every method in display order.
var SortMethods = []SortMethod{
	AscendingAlphabetical,
	DescendingAlphabetical,
	AscendingPublishDate,
	DescendingPublishDate,
}

// ParseSortMethod maps unknown or empty values to AscendingAlphabetical.
func ParseSortMethod(s string) SortMethod {
	switch m := SortMethod(s); m {
	case DescendingAlphabetical, AscendingPublishDate, DescendingPublishDate:
		return m
	default:
		return AscendingAlphabetical
	}
}

// Sort orders records by method. Only the publish date methods can fail.
func Sort(records []Record, method SortMethod) ([]Record, error) {
	switch method {
	case DescendingAlphabetical:
		return SortByTitle(records, true), nil
	case AscendingPublishDate:
		return SortByPublicationDate(records, false)
	case DescendingPublishDate:
		return SortByPublicationDate(records, true)
	default:
		return SortByTitle(records, false), nil
	}
}

// SortByTitle returns a stably sorted copy ordered by title. Equal titles keep
// their input order in both directions. A nil slice yields an empty one.
func SortByTitle(records []Record, descending bool) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		if descending {
			return strings.Compare(b.Title, a.Title)
		}
		return strings.Compare(a.Title, b.Title)
	})
	return sorted
}

// SortByPublicationDate returns a stably sorted copy ordered by the integer
// value of DateOfPublication. It fails with ErrFormat if any date, including
// NotAvailable, does not parse.
func SortByPublicationDate(records []Record, descending bool) ([]Record, error) {
	type keyed struct {
		year   int
		record Record
	}

	items := make([]keyed, len(records))
	for i, r := range records {
		year, err := strconv.Atoi(r.DateOfPublication)
		if err != nil {
			return nil, fmt.Errorf("%w: %q (%s): %w", ErrFormat, r.DateOfPublication, r.Title, err)
		}
		items[i] = keyed{year: year, record: r}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		if descending {
			return cmp.Compare(b.year, a.year)
		}
		return cmp.Compare(a.year, b.year)
	})

	sorted := make([]Record, len(items))
	for i, item := range items {
		sorted[i] = item.record
	}
	return sorted, nil
}
