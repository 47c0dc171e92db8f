// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// the CLI, the storage backends, and utils can all import types without
// depending on each other.
package types

import (
	"strconv"
	"strings"
)

// Delimiter separates the fields of a record within one stored line.
// Field values containing the delimiter are NOT escaped; a name with a
// comma in it will corrupt its line. This is a known limitation of the
// flat-file format, inherited deliberately.
const Delimiter = ","

// FieldCount is the number of delimited fields in one stored line.
const FieldCount = 5

// Student represents a single student record.
//
// Struct tags: json:"..." controls the field names when a record is
// encoded to JSON (lowercase snake_case, the model convention used
// across our projects).
//
// Phone is text, not a number — phone numbers may start with 0 or '+',
// and nobody does arithmetic on them.
type Student struct {
	RollNo     int    `json:"roll_no"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// Serialize renders the record as exactly one line of the backing file:
// the five fields joined by the delimiter, in fixed order, terminated
// by a newline.
func (s Student) Serialize() string {
	return strings.Join([]string{
		strconv.Itoa(s.RollNo),
		s.Name,
		s.Department,
		s.Email,
		s.Phone,
	}, Delimiter) + "\n"
}

// ParseLine is the inverse of Serialize. It splits the line on the
// delimiter and, when the split yields exactly FieldCount parts, returns
// the populated record and true.
//
// Any other part count returns the zero-value record and false. Callers
// that ignore the bool see the historical behaviour of this format: a
// malformed line is indistinguishable from a record whose fields happen
// to be empty with roll number 0.
//
// A non-numeric roll number field parses as 0 rather than failing.
func ParseLine(line string) (Student, bool) {
	parts := strings.Split(line, Delimiter)
	if len(parts) != FieldCount {
		return Student{}, false
	}

	// Conversion error intentionally dropped: a bad roll number becomes
	// 0, the same as the zero value.
	rollNo, _ := strconv.Atoi(parts[0])

	return Student{
		RollNo:     rollNo,
		Name:       parts[1],
		Department: parts[2],
		Email:      parts[3],
		Phone:      parts[4],
	}, true
}
