package service

import (
	"reflect"
	"testing"
)

func TestParseFacultyList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []ParsedFaculty
	}{
		{
			"full entries",
			"Dr. A Sharma (a.sharma@example.org, +91 98000 11111) | Prof. B Rao (b.rao@example.org)",
			[]ParsedFaculty{
				{Name: "Dr. A Sharma", Email: "a.sharma@example.org", Phone: "+91 98000 11111"},
				{Name: "Prof. B Rao", Email: "b.rao@example.org"},
			},
		},
		{
			"phone before email",
			"C Nair (9800012345, c.nair@example.org)",
			[]ParsedFaculty{{Name: "C Nair", Email: "c.nair@example.org", Phone: "9800012345"}},
		},
		{
			"name only",
			"D Gupta",
			[]ParsedFaculty{{Name: "D Gupta"}},
		},
		{
			"empty chunks dropped",
			" | E Iyer | ",
			[]ParsedFaculty{{Name: "E Iyer"}},
		},
		{
			"empty parenthetical",
			"F Khan ()",
			[]ParsedFaculty{{Name: "F Khan"}},
		},
		{
			"blank input",
			"   ",
			[]ParsedFaculty{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseFacultyList(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseFacultyList(%q) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

// Parsing the same text twice yields the same entries; together with
// the existence check before insert this is what makes the sync
// idempotent.
func TestParseFacultyListDeterministic(t *testing.T) {
	in := "Dr. A Sharma (a.sharma@example.org) | Prof. B Rao"
	if !reflect.DeepEqual(ParseFacultyList(in), ParseFacultyList(in)) {
		t.Error("parser output differs between runs")
	}
}

func TestNewInviteToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		tok, err := NewInviteToken()
		if err != nil {
			t.Fatalf("NewInviteToken: %v", err)
		}
		if len(tok) != 32 {
			t.Fatalf("token length = %d, want 32", len(tok))
		}
		for _, r := range tok {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
				t.Fatalf("token %q contains non-alphanumeric %q", tok, r)
			}
		}
		if seen[tok] {
			t.Fatalf("duplicate token %q", tok)
		}
		seen[tok] = true
	}
}

func TestSyncResultSamplesCapAtFive(t *testing.T) {
	var r SyncResult
	for i := 0; i < 8; i++ {
		r.RecordError("boom")
	}
	if r.Skipped != 8 {
		t.Errorf("skipped = %d, want 8", r.Skipped)
	}
	if len(r.SampleErrors) != 5 {
		t.Errorf("samples = %d, want 5", len(r.SampleErrors))
	}
	if r.FirstError() != "boom" {
		t.Errorf("first error = %q", r.FirstError())
	}
}
