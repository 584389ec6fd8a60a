package models

import (
	"math"
	"testing"
)

func TestPage_Offset(t *testing.T) {
	tests := []struct {
		name string
		page Page
		want int
	}{
		{"first page", Page{Number: 1, Limit: 10}, 0},
		{"third page", Page{Number: 3, Limit: 20}, 40},
		{"zero page", Page{Number: 0, Limit: 10}, 0},
		{"zero limit", Page{Number: 5, Limit: 0}, 0},
		{"overflowing page", Page{Number: math.MaxInt, Limit: 10}, math.MaxInt},
		{"largest exact page", Page{Number: math.MaxInt/100 + 1, Limit: 100}, (math.MaxInt / 100) * 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.page.Offset(); got != tt.want {
				t.Errorf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPage_Summary(t *testing.T) {
	got := Page{Number: 4, Limit: 10}.Summary(25)
	want := Pagination{Current: 4, Pages: 3, Total: 25, Limit: 10}
	if *got != want {
		t.Errorf("Summary(25) = %+v, want %+v", *got, want)
	}
}
