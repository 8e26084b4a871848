package listing

// Result is the output of Query: the rows to display and the headline
// statistics.
type Result[R Record] struct {
	Visible []R
	// Summary covers the full, unfiltered collection so headline counts do
	// not move while the user narrows the view.
	Summary Summary
}

// Query filters records by f, keeping input order, and summarizes the whole
// collection. rateStatus selects the status RateByCategory measures.
func Query[R Record](records []R, f Filter, rateStatus string) Result[R] {
	visible := make([]R, 0, len(records))
	for _, r := range records {
		if Matches(r, f) {
			visible = append(visible, r)
		}
	}

	return Result[R]{
		Visible: visible,
		Summary: Summarize(records, rateStatus),
	}
}
