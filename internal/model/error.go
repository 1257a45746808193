package model

import "fmt"

type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidationErrors collects every failed rule of a request, keyed by field
// in the order the fields were checked.
type ValidationErrors struct {
	Fields []*ValidationError
}

func (e *ValidationErrors) Add(err *ValidationError) {
	e.Fields = append(e.Fields, err)
}

func (e *ValidationErrors) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationErrors) Error() string {
	if len(e.Fields) == 0 {
		return "The given data was invalid."
	}

	if len(e.Fields) == 1 {
		return e.Fields[0].Message
	}

	more := "errors"
	if len(e.Fields) == 2 {
		more = "error"
	}

	return fmt.Sprintf("%s (and %d more %s)", e.Fields[0].Message, len(e.Fields)-1, more)
}

// Messages groups the error messages by field name.
func (e *ValidationErrors) Messages() map[string][]string {
	messages := make(map[string][]string, len(e.Fields))
	for _, field := range e.Fields {
		messages[field.Param] = append(messages[field.Param], field.Message)
	}

	return messages
}
