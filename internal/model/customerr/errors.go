package customerr

import "fmt"

// AlreadyExistsError reports a registration collision on username.
type AlreadyExistsError struct {
	Username string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("user %q already exists", e.Username)
}

// NotFoundError reports an update or delete with an id that is no
// longer present in the table.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction %d not found", e.ID)
}

// CorruptError reports an unparseable row in a backing table. The
// store fails fast instead of silently dropping rows.
type CorruptError struct {
	File string
	Line int
	Err  string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt store %s, line %d: %s", e.File, e.Line, e.Err)
}
