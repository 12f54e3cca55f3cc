package domain

// Page bounds a listing. A nil Limit means no cap, while an explicit zero
// selects nothing; a nil or zero Offset means no skip. The distinction between
// absent and zero is deliberate so a caller can ask for an empty prefix.
type Page struct {
	Limit  *int64
	Offset *int64
}

// Empty reports whether the page can match no records at all.
func (p Page) Empty() bool {
	return p.Limit != nil && *p.Limit == 0
}

// Skip returns the number of leading matches to drop.
func (p Page) Skip() int64 {
	if p.Offset == nil || *p.Offset < 0 {
		return 0
	}
	return *p.Offset
}
