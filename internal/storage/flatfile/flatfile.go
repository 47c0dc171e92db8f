// Package flatfile provides the default storage.Storage implementation:
// an ordered in-memory slice of records backed by a flat comma-delimited
// text file.
//
// THE PERSISTENCE STRATEGY:
// ─────────────────────────
// The whole file is read once, at construction, into the slice. After
// every mutation (add, update, delete) the whole file is rewritten as
// the in-order serialization of the slice. Read-only operations never
// touch the disk. Linear scans everywhere — this store is meant for a
// class roster, not a registrar's database.
//
// The rewrite goes through atomicfile (write to a temp file in the same
// directory, then rename over the destination), so a successful mutation
// leaves the file holding exactly the in-memory sequence.
package flatfile

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/kjk/common/atomicfile"

	"github.com/aanand-mishra/students-cli/internal/config"
	"github.com/aanand-mishra/students-cli/internal/storage"
	"github.com/aanand-mishra/students-cli/internal/types"
)

// FlatFile is the concrete flat-text-file implementation of
// storage.Storage. It is the single owner of the record slice; the
// process is single-threaded, so there is no locking.
type FlatFile struct {
	path     string
	students []types.Student
	log      *slog.Logger
}

// New loads the backing file at cfg.StoragePath and returns a
// ready-to-use store. A missing file is not an error — the store simply
// starts empty and the file appears on the first mutation.
func New(cfg *config.Config, log *slog.Logger) (*FlatFile, error) {
	f := &FlatFile{path: cfg.StoragePath, log: log}
	if err := f.load(); err != nil {
		return nil, fmt.Errorf("flatfile.New: load %s: %w", cfg.StoragePath, err)
	}
	return f, nil
}

// load reads the backing file line by line into the slice, in file
// order. Empty lines are skipped. A malformed line (wrong field count)
// still loads — as the zero-value record — because that is what every
// earlier version of this tool did with such lines; the warning log is
// the only trace that the line was bad.
func (f *FlatFile) load() error {
	f.students = f.students[:0]

	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		st, ok := types.ParseLine(line)
		if !ok {
			f.log.Warn("malformed line in backing file",
				slog.String("path", f.path),
				slog.String("line", line))
		}
		f.students = append(f.students, st)
	}
	return scanner.Err()
}

// persist rewrites the backing file as the exact serialization of the
// in-memory sequence, in order.
func (f *FlatFile) persist() error {
	w, err := atomicfile.New(f.path)
	if err != nil {
		return err
	}
	// Close is a no-op the second time; the defer only matters on the
	// early-return paths, where it discards the temp file.
	defer w.Close()

	for _, st := range f.students {
		if _, err := w.WriteString(st.Serialize()); err != nil {
			return err
		}
	}
	return w.Close()
}

// AddStudent appends the record and persists. Duplicate roll numbers
// are allowed through.
func (f *FlatFile) AddStudent(s types.Student) error {
	f.students = append(f.students, s)
	if err := f.persist(); err != nil {
		return fmt.Errorf("AddStudent: persist: %w", err)
	}
	return nil
}

// GetStudents returns a copy of the sequence so callers cannot mutate
// the store's own slice.
func (f *FlatFile) GetStudents() ([]types.Student, error) {
	out := make([]types.Student, len(f.students))
	copy(out, f.students)
	return out, nil
}

// GetStudentByRoll scans in insertion order and returns the first match.
func (f *FlatFile) GetStudentByRoll(rollNo int) (types.Student, error) {
	for _, st := range f.students {
		if st.RollNo == rollNo {
			return st, nil
		}
	}
	return types.Student{}, fmt.Errorf("roll no %d: %w", rollNo, storage.ErrStudentNotFound)
}

// UpdateStudentName renames the first record with the given roll number
// and persists. Only the name changes.
func (f *FlatFile) UpdateStudentName(rollNo int, newName string) error {
	for i := range f.students {
		if f.students[i].RollNo == rollNo {
			f.students[i].Name = newName
			if err := f.persist(); err != nil {
				return fmt.Errorf("UpdateStudentName: persist: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("roll no %d: %w", rollNo, storage.ErrStudentNotFound)
}

// DeleteStudent removes the first record with the given roll number and
// persists. Index-based removal; later records shift up.
func (f *FlatFile) DeleteStudent(rollNo int) error {
	for i := range f.students {
		if f.students[i].RollNo == rollNo {
			f.students = append(f.students[:i], f.students[i+1:]...)
			if err := f.persist(); err != nil {
				return fmt.Errorf("DeleteStudent: persist: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("roll no %d: %w", rollNo, storage.ErrStudentNotFound)
}

// ensure we implement the storage contract
var _ storage.Storage = (*FlatFile)(nil)
