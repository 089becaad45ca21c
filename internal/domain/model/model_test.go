package model

import (
	"math"
	"testing"
)

func TestUserProfileExcludesPassword(t *testing.T) {
	u := User{ID: "1", FirstName: "A", LastName: "B", Email: "a@b.com", PasswordHash: "hash"}
	p := u.Profile()
	if p != (Profile{ID: "1", FirstName: "A", LastName: "B", Email: "a@b.com"}) {
		t.Fatalf("unexpected profile %+v", p)
	}
}

func TestPageRequestOffset(t *testing.T) {
	cases := []struct {
		req  PageRequest
		want int
	}{
		{PageRequest{Page: 1, Limit: 10}, 0},
		{PageRequest{Page: 2, Limit: 10}, 10},
		{PageRequest{Page: 3, Limit: 7}, 14},
		{PageRequest{Page: 0, Limit: 10}, 0},
		{PageRequest{Page: math.MaxInt/2 + 2, Limit: 2}, math.MaxInt},
		{PageRequest{Page: math.MaxInt, Limit: 100}, math.MaxInt},
	}
	for _, tc := range cases {
		if got := tc.req.Offset(); got != tc.want {
			t.Fatalf("%+v: expected offset %d, got %d", tc.req, tc.want, got)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 7, 4},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.limit); got != tc.want {
			t.Fatalf("total %d limit %d: expected %d, got %d", tc.total, tc.limit, tc.want, got)
		}
	}
}
