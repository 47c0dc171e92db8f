// Package storage defines the Storage interface — a contract that any
// persistence backend must satisfy to work with this application.
//
// WHY AN INTERFACE?
// ─────────────────
// The menu loop (CLI layer) should not know or care where records live.
// By depending only on this interface:
//
//   - Switching backends (flat text file ↔ SQLite) = change one line
//     in main.go. Zero CLI changes.
//
//   - Writing tests = drive the menu against any implementation, or a
//     fake. No real file or database needed.
package storage

import (
	"errors"

	"github.com/aanand-mishra/students-cli/internal/types"
)

// ErrStudentNotFound is returned by lookups, updates, and deletes when
// no record carries the requested roll number. Callers check for it
// with errors.Is and print a plain not-found message — it is an
// expected outcome, not a failure.
var ErrStudentNotFound = errors.New("student not found")

// Storage is the persistence contract.
//
// Roll numbers are the intended identifier but are NOT unique: AddStudent
// never rejects a duplicate, and every method that takes a roll number
// applies to the FIRST matching record in insertion order.
type Storage interface {
	// AddStudent appends a new record after the existing ones.
	// No uniqueness check is performed.
	AddStudent(s types.Student) error

	// GetStudents returns every record in insertion order.
	// Returns an empty slice (not nil) when there are no records.
	GetStudents() ([]types.Student, error)

	// GetStudentByRoll returns the first record with the given roll
	// number, or an error wrapping ErrStudentNotFound.
	GetStudentByRoll(rollNo int) (types.Student, error)

	// UpdateStudentName replaces the name of the first record with the
	// given roll number. All other fields stay untouched.
	UpdateStudentName(rollNo int, newName string) error

	// DeleteStudent removes the first record with the given roll number;
	// later records shift up to fill the gap.
	DeleteStudent(rollNo int) error
}
