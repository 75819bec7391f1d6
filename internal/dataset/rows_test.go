package dataset

import (
	"errors"
	"testing"
)

func TestFromRows(t *testing.T) {
	header := []string{"Country", " victims ", "DATE"}
	rows := [][]string{
		{"India", "3 boys", "March 1996"},
		{"", "", ""},
		{"Russia", "a woman"},
	}
	got, err := FromRows(header, rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Row != 1 || got[0].Victims != "3 boys" || got[0].Date != "March 1996" {
		t.Fatalf("unexpected first record: %+v", got[0])
	}
	if got[1].Row != 3 || got[1].Date != "" || got[1].Field("country") != "Russia" {
		t.Fatalf("unexpected short row: %+v", got[1])
	}
}

func TestFromRowsMissingColumns(t *testing.T) {
	_, err := FromRows([]string{"Country", "Details"}, nil)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}
