package service

import (
	"crypto/rand"
	"regexp"
	"strings"
)

// ParsedFaculty is one person extracted from a session's free-text
// speaker/chairperson/moderator field.
type ParsedFaculty struct {
	Name  string
	Email string
	Phone string
}

// facultyEntry matches "Name (details)" where the parenthetical is
// optional and holds a comma separated email and/or phone.
var facultyEntry = regexp.MustCompile(`^\s*(.*?)\s*(?:\(([^)]*)\))?\s*$`)

// ParseFacultyList parses the program team's free-text format
// "Name (email, phone) | Name2 (email2)" into structured entries.
// Entries without a name are dropped; inside the parenthetical,
// whichever part contains '@' is the email and the other the phone.
func ParseFacultyList(text string) []ParsedFaculty {
	out := make([]ParsedFaculty, 0)
	for _, chunk := range strings.Split(text, "|") {
		m := facultyEntry.FindStringSubmatch(chunk)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		p := ParsedFaculty{Name: name}
		for _, part := range strings.Split(m[2], ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if strings.Contains(part, "@") {
				p.Email = part
			} else if p.Phone == "" {
				p.Phone = part
			}
		}
		out = append(out, p)
	}
	return out
}

const inviteTokenLen = 32

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NewInviteToken returns a 32-character alphanumeric token used to
// authorize a faculty member's response without login.
func NewInviteToken() (string, error) {
	buf := make([]byte, inviteTokenLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}
	return string(buf), nil
}

// SyncResult accumulates the outcome of one sync-assignments run.
// Per-row insert failures are swallowed into the skip count so the
// batch is best-effort; up to five error samples are kept.
type SyncResult struct {
	Created      int      `json:"created"`
	Skipped      int      `json:"skipped"`
	Total        int      `json:"total"`
	SampleErrors []string `json:"sampleErrors,omitempty"`
}

// RecordError counts a failed row and keeps its message as a sample.
func (r *SyncResult) RecordError(msg string) {
	r.Skipped++
	if len(r.SampleErrors) < 5 {
		r.SampleErrors = append(r.SampleErrors, msg)
	}
}

// FirstError returns the first sampled error message, or "".
func (r *SyncResult) FirstError() string {
	if len(r.SampleErrors) == 0 {
		return ""
	}
	return r.SampleErrors[0]
}
