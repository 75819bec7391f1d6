package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonth(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"March 3, 1920", "March", true},
		{"3 mar 1920", "mar", true},
		{"Sept 1881", "Sept", true},
		{"early DECEMBER 1950", "DECEMBER", true},
		{"May 1765", "May", true},
		{"Summer of 1899, then October", "October", true},
		{"June 1764 – June 1767", "", false},
		{"1920-03-01", "", false},
		{"June and July 1800", "", false},
		{"1920", "", false},
		{"Marchioness 1830", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Month(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthAlternativesAcceptsPrefixes(t *testing.T) {
	for _, in := range []string{"jan", "janu", "janua", "januar", "january", "feb", "octo", "nov"} {
		got, ok := Month(in + " 1900")
		assert.True(t, ok, in)
		assert.Equal(t, in, got)
	}
}
