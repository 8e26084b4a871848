// Package listing implements the query engine behind every list view: status
// classification, relative time formatting, the record filter predicate and
// the aggregate summary.
//
// Everything in this package is a pure function over immutable snapshots.
// Callers own the filter state and pass it in on each render; nothing here
// performs I/O, logs or retains references to its input.
package listing
