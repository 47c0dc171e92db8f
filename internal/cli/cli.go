// Package cli implements the interactive menu that drives the record
// manager: print the menu, read a numeric choice, dispatch to the
// matching storage operation, repeat until Exit.
//
// The loop talks to persistence only through the storage.Storage
// interface, so the same session logic runs against the flat file or
// SQLite — and, in tests, against a store rooted in a temp directory
// with scripted stdin.
//
// Error handling follows one rule: anything the user can recover from
// by trying again (unknown roll number, empty roster, a bad menu
// choice, even a failed disk write) is printed and control returns to
// the menu. Only a broken input stream ends the session.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aanand-mishra/students-cli/internal/storage"
	"github.com/aanand-mishra/students-cli/internal/types"
	"github.com/aanand-mishra/students-cli/internal/utils/prompt"
)

// Menu choices, in the order the menu prints them.
const (
	choiceAdd = iota + 1
	choiceView
	choiceSearch
	choiceUpdate
	choiceDelete
	choiceExit
)

const menuText = `
--- Student Information System ---
1. Add Student
2. View Students
3. Search Student
4. Update Student
5. Delete Student
6. Exit
`

// CLI owns one interactive session.
type CLI struct {
	storage storage.Storage
	log     *slog.Logger
	in      *prompt.Reader
	out     io.Writer
}

// New wires the session to a storage backend and an I/O pair.
// Production passes os.Stdin/os.Stdout; tests pass buffers.
func New(st storage.Storage, log *slog.Logger, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		storage: st,
		log:     log,
		in:      prompt.New(in, out),
		out:     out,
	}
}

// Run executes the menu loop until Exit is chosen. A closed input
// stream (Ctrl+D, or a scripted session running out of lines) is
// treated as Exit, not as an error.
func (c *CLI) Run() error {
	for {
		fmt.Fprint(c.out, menuText)

		choice, err := c.in.Int("Enter choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("cli.Run: read choice: %w", err)
		}

		switch choice {
		case choiceAdd:
			err = c.addStudent()
		case choiceView:
			c.viewStudents()
		case choiceSearch:
			err = c.searchStudent()
		case choiceUpdate:
			err = c.updateStudent()
		case choiceDelete:
			err = c.deleteStudent()
		case choiceExit:
			fmt.Fprintln(c.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice!")
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("cli.Run: %w", err)
		}
	}
}

// addStudent prompts for all five fields and appends the record.
// There is no uniqueness check on the roll number and no validation of
// the field contents — whatever is typed is stored.
func (c *CLI) addStudent() error {
	rollNo, err := c.in.Int("Enter Roll No: ")
	if err != nil {
		return err
	}
	name, err := c.in.Line("Enter Name: ")
	if err != nil {
		return err
	}
	department, err := c.in.Line("Enter Department: ")
	if err != nil {
		return err
	}
	email, err := c.in.Line("Enter Email: ")
	if err != nil {
		return err
	}
	phone, err := c.in.Line("Enter Phone: ")
	if err != nil {
		return err
	}

	st := types.Student{
		RollNo:     rollNo,
		Name:       name,
		Department: department,
		Email:      email,
		Phone:      phone,
	}

	if err := c.storage.AddStudent(st); err != nil {
		c.reportError(err)
		return nil
	}

	c.log.Info("student added", slog.Int("roll_no", rollNo))
	fmt.Fprintln(c.out, "Student Added Successfully!")
	return nil
}

// viewStudents prints every record in insertion order, or a plain
// message when the roster is empty.
func (c *CLI) viewStudents() {
	students, err := c.storage.GetStudents()
	if err != nil {
		c.reportError(err)
		return
	}
	if len(students) == 0 {
		fmt.Fprintln(c.out, "No records found!")
		return
	}
	for _, st := range students {
		c.display(st)
	}
}

func (c *CLI) searchStudent() error {
	rollNo, err := c.in.Int("Enter Roll No to Search: ")
	if err != nil {
		return err
	}

	st, err := c.storage.GetStudentByRoll(rollNo)
	if err != nil {
		c.reportError(err)
		return nil
	}

	c.display(st)
	return nil
}

// updateStudent renames the first record with the given roll number.
// The name is the only updatable field.
func (c *CLI) updateStudent() error {
	rollNo, err := c.in.Int("Enter Roll No to Update: ")
	if err != nil {
		return err
	}
	newName, err := c.in.Line("Enter New Name: ")
	if err != nil {
		return err
	}

	if err := c.storage.UpdateStudentName(rollNo, newName); err != nil {
		c.reportError(err)
		return nil
	}

	c.log.Info("student updated", slog.Int("roll_no", rollNo))
	fmt.Fprintln(c.out, "Student Updated!")
	return nil
}

func (c *CLI) deleteStudent() error {
	rollNo, err := c.in.Int("Enter Roll No to Delete: ")
	if err != nil {
		return err
	}

	if err := c.storage.DeleteStudent(rollNo); err != nil {
		c.reportError(err)
		return nil
	}

	c.log.Info("student deleted", slog.Int("roll_no", rollNo))
	fmt.Fprintln(c.out, "Student Deleted!")
	return nil
}

// display prints one record in the block format the tool has always
// used.
func (c *CLI) display(st types.Student) {
	fmt.Fprintf(c.out,
		"Roll No: %d\nName: %s\nDepartment: %s\nEmail: %s\nPhone: %s\n-------------------\n",
		st.RollNo, st.Name, st.Department, st.Email, st.Phone)
}

// reportError surfaces a storage error to the user and returns control
// to the menu. Not-found gets the short message; anything else is shown
// verbatim and logged.
func (c *CLI) reportError(err error) {
	if errors.Is(err, storage.ErrStudentNotFound) {
		fmt.Fprintln(c.out, "Student not found!")
		return
	}
	c.log.Error("storage operation failed", slog.String("error", err.Error()))
	fmt.Fprintf(c.out, "Error: %s\n", err)
}
