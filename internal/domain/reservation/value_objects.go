package reservation

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const (
	MaxNameLength = 100
	MaxNoteLength = 1000
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidName  = errors.New("name must be between 1 and 100 characters")
	ErrNoteTooLong  = errors.New("note exceeds maximum length")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is the canonical client address: trimmed, NFC-normalized, lower-cased.
// Two inputs naming the same mailbox compare equal.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	// Caser is stateful, so one is built per call.
	s = cases.Lower(language.Und).String(norm.NFC.String(strings.TrimSpace(s)))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) IsZero() bool {
	return e.value == ""
}

func (e Email) Equal(other Email) bool {
	return e.value == other.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n == 0 || n > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

type Note struct {
	value *string
}

func NewNote(s *string) (Note, error) {
	if s == nil {
		return Note{}, nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return Note{}, nil
	}
	if utf8.RuneCountInString(v) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: &v}, nil
}

func (n Note) Value() *string {
	return n.value
}
