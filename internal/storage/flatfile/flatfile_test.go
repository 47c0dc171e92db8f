package flatfile

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert"

	"github.com/aanand-mishra/students-cli/internal/config"
	"github.com/aanand-mishra/students-cli/internal/storage"
	"github.com/aanand-mishra/students-cli/internal/types"
)

var (
	alice = types.Student{RollNo: 1, Name: "Alice", Department: "CS", Email: "a@x.com", Phone: "555"}
	bob   = types.Student{RollNo: 2, Name: "Bob", Department: "EE", Email: "b@x.com", Phone: "556"}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) (*FlatFile, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "students.txt")
	st, err := New(&config.Config{StoragePath: path}, discardLogger())
	assert.NoError(t, err)
	return st, path
}

func TestMissingFileStartsEmpty(t *testing.T) {
	st, path := newTestStore(t)

	students, err := st.GetStudents()
	assert.NoError(t, err)
	assert.Len(t, students, 0)

	// Loading must not create the file; only a mutation does.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestAddAndFind(t *testing.T) {
	st, path := newTestStore(t)

	assert.NoError(t, st.AddStudent(alice))

	got, err := st.GetStudentByRoll(1)
	assert.NoError(t, err)
	assert.Equal(t, alice, got)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "1,Alice,CS,a@x.com,555\n", string(data))
}

func TestReloadFromDisk(t *testing.T) {
	st, path := newTestStore(t)
	assert.NoError(t, st.AddStudent(alice))
	assert.NoError(t, st.AddStudent(bob))

	// A fresh store over the same file sees the same sequence, in order.
	st2, err := New(&config.Config{StoragePath: path}, discardLogger())
	assert.NoError(t, err)

	students, err := st2.GetStudents()
	assert.NoError(t, err)
	assert.Equal(t, []types.Student{alice, bob}, students)
}

func TestReadOnlyOperationsLeaveFileUntouched(t *testing.T) {
	st, path := newTestStore(t)
	assert.NoError(t, st.AddStudent(alice))

	before, err := os.ReadFile(path)
	assert.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = st.GetStudents()
		assert.NoError(t, err)
		_, err = st.GetStudentByRoll(1)
		assert.NoError(t, err)
	}

	after, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestFindAbsent(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.GetStudentByRoll(99)
	assert.True(t, errors.Is(err, storage.ErrStudentNotFound))
}

func TestUpdateName(t *testing.T) {
	st, _ := newTestStore(t)
	assert.NoError(t, st.AddStudent(alice))
	assert.NoError(t, st.AddStudent(bob))

	assert.NoError(t, st.UpdateStudentName(1, "Alicia"))

	got, err := st.GetStudentByRoll(1)
	assert.NoError(t, err)
	assert.Equal(t, "Alicia", got.Name)
	// Every other field of the renamed record is untouched.
	assert.Equal(t, alice.Department, got.Department)
	assert.Equal(t, alice.Email, got.Email)
	assert.Equal(t, alice.Phone, got.Phone)

	// And the other record is untouched entirely.
	other, err := st.GetStudentByRoll(2)
	assert.NoError(t, err)
	assert.Equal(t, bob, other)
}

func TestUpdateNameAbsent(t *testing.T) {
	st, _ := newTestStore(t)
	assert.NoError(t, st.AddStudent(alice))

	err := st.UpdateStudentName(99, "Nobody")
	assert.True(t, errors.Is(err, storage.ErrStudentNotFound))
}

func TestDelete(t *testing.T) {
	st, _ := newTestStore(t)
	assert.NoError(t, st.AddStudent(alice))
	assert.NoError(t, st.AddStudent(bob))

	assert.NoError(t, st.DeleteStudent(1))

	_, err := st.GetStudentByRoll(1)
	assert.True(t, errors.Is(err, storage.ErrStudentNotFound))

	students, err := st.GetStudents()
	assert.NoError(t, err)
	assert.Equal(t, []types.Student{bob}, students)
}

func TestDeleteAbsent(t *testing.T) {
	st, _ := newTestStore(t)
	assert.NoError(t, st.AddStudent(alice))

	err := st.DeleteStudent(99)
	assert.True(t, errors.Is(err, storage.ErrStudentNotFound))

	students, err := st.GetStudents()
	assert.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestDuplicateRollNumbers(t *testing.T) {
	st, _ := newTestStore(t)
	first := types.Student{RollNo: 1, Name: "First", Department: "CS", Email: "f@x.com", Phone: "1"}
	second := types.Student{RollNo: 1, Name: "Second", Department: "EE", Email: "s@x.com", Phone: "2"}

	assert.NoError(t, st.AddStudent(first))
	assert.NoError(t, st.AddStudent(second))

	// Lookup returns the first added.
	got, err := st.GetStudentByRoll(1)
	assert.NoError(t, err)
	assert.Equal(t, "First", got.Name)

	// Update renames only the first added.
	assert.NoError(t, st.UpdateStudentName(1, "Renamed"))
	students, err := st.GetStudents()
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", students[0].Name)
	assert.Equal(t, "Second", students[1].Name)

	// Delete removes only the first; the duplicate becomes visible.
	assert.NoError(t, st.DeleteStudent(1))
	got, err = st.GetStudentByRoll(1)
	assert.NoError(t, err)
	assert.Equal(t, "Second", got.Name)
}

// Documents the historical malformed-line handling: a line whose
// comma-split is not exactly five parts loads as the zero-value record
// rather than failing the load. Worth revisiting, but changing it would
// change what existing files mean.
func TestMalformedLineLoadsAsZeroRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.txt")
	content := "1,Alice,CS\n" + // 3 parts: malformed
		"\n" + // empty: skipped
		"2,Bob,EE,b@x.com,556\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	st, err := New(&config.Config{StoragePath: path}, discardLogger())
	assert.NoError(t, err)

	students, err := st.GetStudents()
	assert.NoError(t, err)
	assert.Len(t, students, 2)
	assert.Equal(t, types.Student{}, students[0])
	assert.Equal(t, bob, students[1])
}

// The scenario from the original tool's manual test script.
func TestFullScenario(t *testing.T) {
	st, path := newTestStore(t)

	assert.NoError(t, st.AddStudent(alice))
	assert.NoError(t, st.AddStudent(bob))

	students, err := st.GetStudents()
	assert.NoError(t, err)
	assert.Equal(t, []types.Student{alice, bob}, students)

	assert.NoError(t, st.UpdateStudentName(1, "Alicia"))
	got, err := st.GetStudentByRoll(1)
	assert.NoError(t, err)
	assert.Equal(t, "Alicia", got.Name)

	assert.NoError(t, st.DeleteStudent(2))
	students, err = st.GetStudents()
	assert.NoError(t, err)
	assert.Len(t, students, 1)
	assert.Equal(t, "Alicia", students[0].Name)

	// The file holds exactly the final sequence.
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "1,Alicia,CS,a@x.com,555\n", string(data))
}
