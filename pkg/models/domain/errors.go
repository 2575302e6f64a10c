package domain

import "fmt"

// ClassificationError reports a fuel technology absent from the
// classification mapping when the aggregator runs under the strict policy.
type ClassificationError struct {
	FuelTech string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("fuel tech %q is not in the classification mapping", e.FuelTech)
}

// DuplicatePeriodError reports a repeated or out-of-order month in a
// monthly series.
type DuplicatePeriodError struct {
	Period string
}

func (e *DuplicatePeriodError) Error() string {
	return fmt.Sprintf("duplicate or non-monotonic period %s in monthly series", e.Period)
}

// SeriesGapError reports a skipped calendar month between two entries of a
// monthly series.
type SeriesGapError struct {
	After  string
	Before string
}

func (e *SeriesGapError) Error() string {
	return fmt.Sprintf("gap in monthly series between %s and %s", e.After, e.Before)
}

// InsufficientDailyDataError reports missing daily coverage for the
// current-month estimate, naming the uncovered span.
type InsufficientDailyDataError struct {
	From Date
	To   Date
}

func (e *InsufficientDailyDataError) Error() string {
	return fmt.Sprintf("daily series is missing coverage for %s..%s", e.From, e.To)
}

// MissingRange returns the uncovered span in "YYYY-MM-DD..YYYY-MM-DD" form.
func (e *InsufficientDailyDataError) MissingRange() string {
	return fmt.Sprintf("%s..%s", e.From, e.To)
}
