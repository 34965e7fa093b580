package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/donations?"+rawQuery, nil)
	return c
}

func TestParsePageLimitDefaults(t *testing.T) {
	page, limit := ParsePageLimit(ctxWithQuery(""))
	if page != 1 || limit != 10 {
		t.Fatalf("defaults = (%d,%d), want (1,10)", page, limit)
	}
}

func TestParsePageLimitClamps(t *testing.T) {
	cases := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"page=3&limit=25", 3, 25},
		{"page=0&limit=10", 1, 10},
		{"page=-2&limit=-5", 1, 10},
		{"page=2&limit=500", 2, 100},
		{"page=abc&limit=xyz", 1, 10},
	}
	for _, tc := range cases {
		page, limit := ParsePageLimit(ctxWithQuery(tc.query))
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Errorf("%q = (%d,%d), want (%d,%d)", tc.query, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}

func TestBuildPageInfo(t *testing.T) {
	info := BuildPageInfo(25, 3, 10)
	if info.TotalPages != 3 {
		t.Fatalf("total_pages = %d, want 3", info.TotalPages)
	}
	if info.HasNext || !info.HasPrev {
		t.Fatalf("page 3 of 3: has_next=%v has_prev=%v", info.HasNext, info.HasPrev)
	}

	first := BuildPageInfo(25, 1, 10)
	if !first.HasNext || first.HasPrev {
		t.Fatalf("page 1 of 3: has_next=%v has_prev=%v", first.HasNext, first.HasPrev)
	}

	empty := BuildPageInfo(0, 1, 10)
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Fatalf("empty feed: %+v", empty)
	}

	exact := BuildPageInfo(30, 3, 10)
	if exact.TotalPages != 3 || exact.HasNext {
		t.Fatalf("30/10 page 3: %+v", exact)
	}
}

func TestOffset(t *testing.T) {
	if got := Offset(1, 10); got != 0 {
		t.Fatalf("Offset(1,10) = %d", got)
	}
	if got := Offset(3, 10); got != 20 {
		t.Fatalf("Offset(3,10) = %d", got)
	}
}
