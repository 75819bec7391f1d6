package core

import (
	"testing"
	"time"
)

func TestParseGender(t *testing.T) {
	cases := []struct {
		in  string
		out Gender
		ok  bool
	}{
		{"male", Male, true},
		{" Female ", Female, true},
		{"UNKNOWN", Unknown, true},
		{"all", All, true},
		{"other", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseGender(tc.in)
		if tc.ok && (err != nil || got != tc.out) {
			t.Fatalf("%q expected %q, got %q (err=%v)", tc.in, tc.out, got, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestVictimCountsOfAndAdd(t *testing.T) {
	c := VictimCounts{Male: 2, Female: 1, Unknown: 3}
	if c.Of(Male) != 2 || c.Of(Female) != 1 || c.Of(Unknown) != 3 || c.Of(All) != 6 {
		t.Fatalf("unexpected Of results for %+v", c)
	}
	sum := c.Add(VictimCounts{Male: 1})
	if sum != (VictimCounts{Male: 3, Female: 1, Unknown: 3}) {
		t.Fatalf("unexpected sum %+v", sum)
	}
}

func TestIncidentRecordField(t *testing.T) {
	r := IncidentRecord{Fields: map[string]string{"Location": "Italy"}}
	if got := r.Field("location"); got != "Italy" {
		t.Fatalf("expected case-insensitive lookup, got %q", got)
	}
	if got := r.Field("Country"); got != "" {
		t.Fatalf("expected empty for missing column, got %q", got)
	}
}

func TestCanonicalMonth(t *testing.T) {
	cases := []struct {
		in  string
		out time.Month
		ok  bool
	}{
		{"March", time.March, true},
		{"mar", time.March, true},
		{"SEPT", time.September, true},
		{"Jun", time.June, true},
		{"may", time.May, true},
		{"Decem", time.December, true},
		{"ju", 0, false},
		{"Marc h", 0, false},
		{"Smarch", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := CanonicalMonth(tc.in)
		if ok != tc.ok || got != tc.out {
			t.Fatalf("%q expected (%v,%v), got (%v,%v)", tc.in, tc.out, tc.ok, got, ok)
		}
	}
}

func TestParseMonthNumeric(t *testing.T) {
	if m, ok := ParseMonth("3"); !ok || m != time.March {
		t.Fatalf("expected March, got %v %v", m, ok)
	}
	if _, ok := ParseMonth("13"); ok {
		t.Fatalf("expected 13 to be rejected")
	}
	if m, ok := ParseMonth("october"); !ok || m != time.October {
		t.Fatalf("expected October, got %v %v", m, ok)
	}
}

func TestMonthlyAggregateGetAndTotal(t *testing.T) {
	var a MonthlyAggregate
	a.Counts[time.March-1] = VictimCounts{Male: 1}
	a.Counts[time.July-1] = VictimCounts{Female: 2, Unknown: 1}
	if a.Get(time.March).Male != 1 {
		t.Fatalf("expected March male=1")
	}
	if (a.Get(0) != VictimCounts{}) {
		t.Fatalf("expected zero for invalid month")
	}
	if a.Total() != (VictimCounts{Male: 1, Female: 2, Unknown: 1}) {
		t.Fatalf("unexpected total %+v", a.Total())
	}
}
