package ils

// MemberList matches the set members response (conf/sets/{id}/members).
// Pointer fields are nil when the key is absent or null.
type MemberList struct {
	Member           *[]Member `json:"member"`
	TotalRecordCount *int      `json:"total_record_count"`
}

// Member is one entry of a member list. Link points to the bib record.
type Member struct {
	Link *string `json:"link"`
}

// HasLink reports whether the member carries a usable detail link.
func (m Member) HasLink() bool {
	return m.Link != nil && *m.Link != ""
}

// Detail matches the bib record response for a member link.
type Detail struct {
	BibData     *BibData     `json:"bib_data"`
	HoldingData *HoldingData `json:"holding_data"`
}

// BibData leaves are decoded as any: the upstream sends strings, nulls and
// occasionally other JSON types for the same key.
type BibData struct {
	Title             any `json:"title"`
	Author            any `json:"author"`
	ISBN              any `json:"isbn"`
	DateOfPublication any `json:"date_of_publication"`
}

type HoldingData struct {
	CallNumber any `json:"call_number"`
}
