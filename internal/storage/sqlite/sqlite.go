// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// WHY KEEP A DATABASE BACKEND AT ALL?
// ───────────────────────────────────
// The flat text file is the default and matches the historical format,
// but it rewrites everything on every change. SQLite stores everything
// in a single file too, needs no server, and handles larger rosters
// without the rewrite cost. Select it with `storage_driver: sqlite`.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded — we never call anything from it directly.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/students-cli/internal/config"
	"github.com/aanand-mishra/students-cli/internal/storage"
	"github.com/aanand-mishra/students-cli/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete database implementation of storage.Storage.
// It holds a *sql.DB, the connection pool managed by database/sql.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at cfg.StoragePath, creates the
// students table if it does not already exist, and returns a
// ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Schema notes:
	//   id      — hidden autoincrement key. It records insertion order,
	//             which is what makes "first match" well defined here.
	//   roll_no — deliberately NOT unique. The flat-file store never
	//             enforced uniqueness and this backend must behave the
	//             same way.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			roll_no    INTEGER NOT NULL,
			name       TEXT    NOT NULL,
			department TEXT    NOT NULL,
			email      TEXT    NOT NULL,
			phone      TEXT    NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// AddStudent inserts a new row. Placeholders (?) keep user-typed values
// as pure data, never SQL syntax.
func (s *SQLite) AddStudent(st types.Student) error {
	stmt, err := s.Db.Prepare(
		"INSERT INTO students (roll_no, name, department, email, phone) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("AddStudent: prepare: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(st.RollNo, st.Name, st.Department, st.Email, st.Phone)
	if err != nil {
		return fmt.Errorf("AddStudent: exec: %w", err)
	}

	return nil
}

// GetStudents returns all rows in insertion order.
func (s *SQLite) GetStudents() ([]types.Student, error) {
	stmt, err := s.Db.Prepare(
		"SELECT roll_no, name, department, email, phone FROM students ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("GetStudents: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetStudents: query: %w", err)
	}
	defer rows.Close()

	// Pre-allocate an empty (non-nil) slice — "no records" is a list of
	// length zero, not an absent list.
	students := make([]types.Student, 0)

	for rows.Next() {
		var st types.Student
		if err := rows.Scan(
			&st.RollNo,
			&st.Name,
			&st.Department,
			&st.Email,
			&st.Phone,
		); err != nil {
			return nil, fmt.Errorf("GetStudents: scan row: %w", err)
		}
		students = append(students, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: rows iteration: %w", err)
	}

	return students, nil
}

// GetStudentByRoll fetches the FIRST row (lowest id = earliest insert)
// carrying the given roll number.
func (s *SQLite) GetStudentByRoll(rollNo int) (types.Student, error) {
	stmt, err := s.Db.Prepare(
		"SELECT roll_no, name, department, email, phone FROM students WHERE roll_no = ? ORDER BY id LIMIT 1",
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("GetStudentByRoll: prepare: %w", err)
	}
	defer stmt.Close()

	var st types.Student
	err = stmt.QueryRow(rollNo).Scan(
		&st.RollNo,
		&st.Name,
		&st.Department,
		&st.Email,
		&st.Phone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, fmt.Errorf("roll no %d: %w", rollNo, storage.ErrStudentNotFound)
		}
		return types.Student{}, fmt.Errorf("GetStudentByRoll: scan: %w", err)
	}

	return st, nil
}

// UpdateStudentName renames only the first matching row. The subquery
// pins the update to the lowest id so a duplicate roll number further
// down the table is left alone.
func (s *SQLite) UpdateStudentName(rollNo int, newName string) error {
	stmt, err := s.Db.Prepare(`
		UPDATE students SET name = ?
		WHERE id = (SELECT id FROM students WHERE roll_no = ? ORDER BY id LIMIT 1)
	`)
	if err != nil {
		return fmt.Errorf("UpdateStudentName: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(newName, rollNo)
	if err != nil {
		return fmt.Errorf("UpdateStudentName: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("UpdateStudentName: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("roll no %d: %w", rollNo, storage.ErrStudentNotFound)
	}

	return nil
}

// DeleteStudent removes only the first matching row, same first-match
// rule as UpdateStudentName.
func (s *SQLite) DeleteStudent(rollNo int) error {
	stmt, err := s.Db.Prepare(`
		DELETE FROM students
		WHERE id = (SELECT id FROM students WHERE roll_no = ? ORDER BY id LIMIT 1)
	`)
	if err != nil {
		return fmt.Errorf("DeleteStudent: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(rollNo)
	if err != nil {
		return fmt.Errorf("DeleteStudent: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteStudent: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("roll no %d: %w", rollNo, storage.ErrStudentNotFound)
	}

	return nil
}

// ensure we implement the storage contract
var _ storage.Storage = (*SQLite)(nil)
