package pagination

import "testing"

func TestLimitClamping(t *testing.T) {
	cases := []struct {
		size int
		want int
	}{
		{0, defaultPageSize},
		{-1, defaultPageSize},
		{25, 25},
		{200, 200},
		{201, defaultPageSize},
	}
	for _, tc := range cases {
		p := Pagination{PageSize: tc.size}
		if got := p.Limit(); got != tc.want {
			t.Fatalf("limit(%d) = %d, want %d", tc.size, got, tc.want)
		}
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	token := NextToken(0, 10, 10)
	if token == "" {
		t.Fatal("full page should yield a next token")
	}

	p := Pagination{PageToken: token}
	if got := p.Offset(); got != 10 {
		t.Fatalf("offset = %d, want 10", got)
	}
}

func TestShortPageEndsPagination(t *testing.T) {
	if token := NextToken(20, 10, 4); token != "" {
		t.Fatalf("short page produced token %q", token)
	}
}

func TestMalformedTokenStartsFromZero(t *testing.T) {
	for _, token := range []string{"not-base64!", "bm9wZQ==", ""} {
		p := Pagination{PageToken: token}
		if got := p.Offset(); got != 0 {
			t.Fatalf("offset(%q) = %d, want 0", token, got)
		}
	}
}
