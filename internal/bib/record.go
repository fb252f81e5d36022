package bib

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is returned when the member list cannot be fetched.
	ErrTransport = errors.New("ils transport failure")
	// ErrPayload is returned when an upstream payload lacks required keys.
	ErrPayload = errors.New("ils payload invalid")
	// ErrFormat is returned when a publication date is not an integer.
	ErrFormat = errors.New("publication date not numeric")
)

// Record is one catalog item. Every field is a cleaned string; missing data
// is NotAvailable.
type Record struct {
	Title             string `json:"title" yaml:"title"`
	Author            string `json:"author" yaml:"author"`
	ISBN              string `json:"isbn" yaml:"isbn"`
	DateOfPublication string `json:"date_of_publication" yaml:"date_of_publication"`
	CallNumber        string `json:"call_number" yaml:"call_number"`
}

func (r Record) String() string {
	return fmt.Sprintf("Title: %s\nAuthor: %s\nISBN: %s\nDate Of Publication: %s\nCall Number: %s",
		r.Title, r.Author, r.ISBN, r.DateOfPublication, r.CallNumber)
}
