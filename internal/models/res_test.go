package models

import "testing"

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"empty", 1, 10, 0, 0, false, false},
		{"single partial page", 1, 10, 7, 1, false, false},
		{"exact page boundary", 1, 10, 10, 1, false, false},
		{"first of two", 1, 10, 12, 2, true, false},
		{"last of two", 2, 10, 12, 2, false, true},
		{"middle page", 2, 5, 12, 3, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.limit, tc.total)
			if p.TotalPages != tc.totalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.totalPages)
			}
			if p.HasNextPage != tc.hasNext {
				t.Errorf("HasNextPage = %v, want %v", p.HasNextPage, tc.hasNext)
			}
			if p.HasPrevPage != tc.hasPrev {
				t.Errorf("HasPrevPage = %v, want %v", p.HasPrevPage, tc.hasPrev)
			}
			if p.CurrentPage != tc.page || p.TotalBookings != tc.total {
				t.Errorf("metadata echo wrong: %+v", p)
			}
		})
	}
}

func TestErrorStatusCodes(t *testing.T) {
	cases := []struct {
		err  *AppError
		code int
	}{
		{NewValidationError("bad"), 400},
		{NewAuthenticationError("who"), 401},
		{NewAuthorizationError("no"), 403},
		{NewNotFoundError("gone"), 404},
		{NewConflictError("clash"), 400},
		{NewDependencyError("down", nil), 500},
	}
	for _, tc := range cases {
		if got := tc.err.StatusCode(); got != tc.code {
			t.Errorf("%v: StatusCode() = %d, want %d", tc.err.Kind, got, tc.code)
		}
	}
}

func TestAsAppErrorFallsBackToDependency(t *testing.T) {
	err := AsAppError(errUnknown{})
	if err.Kind != KindDependency {
		t.Errorf("unknown error mapped to %v, want dependency", err.Kind)
	}
}

type errUnknown struct{}

func (errUnknown) Error() string { return "boom" }
