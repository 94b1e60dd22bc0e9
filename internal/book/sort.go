package book

// SortKey selects the ordering rule for a book listing.
type SortKey string

const (
	SortCreatedAsc  SortKey = "created-asc"
	SortCreatedDesc SortKey = "created-desc"
	SortTitleAsc    SortKey = "title-asc"
	SortTitleDesc   SortKey = "title-desc"
	SortAuthorAsc   SortKey = "author-asc"
	SortRatingDesc  SortKey = "rating-desc"
)

// SortKeys lists all orderings in cycle order.
var SortKeys = []SortKey{
	SortCreatedAsc,
	SortCreatedDesc,
	SortTitleAsc,
	SortTitleDesc,
	SortAuthorAsc,
	SortRatingDesc,
}

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	for _, known := range SortKeys {
		if known == k {
			return true
		}
	}
	return false
}

// Label returns the human-readable form of a sort key.
func (k SortKey) Label() string {
	switch k {
	case SortCreatedAsc:
		return "Oldest first"
	case SortCreatedDesc:
		return "Newest first"
	case SortTitleAsc:
		return "Title A→Z"
	case SortTitleDesc:
		return "Title Z→A"
	case SortAuthorAsc:
		return "Author A→Z"
	case SortRatingDesc:
		return "Top rated"
	}
	return string(k)
}

// Next returns the sort key after k in cycle order.
func (k SortKey) Next() SortKey {
	for i, key := range SortKeys {
		if key == k {
			return SortKeys[(i+1)%len(SortKeys)]
		}
	}
	return SortCreatedDesc
}
