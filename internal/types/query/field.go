package query

import "fmt"

// Field is a whitelisted article attribute that filters and sorts may refer to.
// Only fields declared here can reach a compiled statement.
type Field string

const (
	FieldState       Field = "state"
	FieldCategory    Field = "category"
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
)

var knownFields = map[Field]bool{
	FieldState:       true,
	FieldCategory:    true,
	FieldTitle:       true,
	FieldDescription: true,
}

func (f Field) Validate() error {
	if !knownFields[f] {
		return fmt.Errorf("unsupported field: %q", string(f))
	}
	return nil
}
