package errors

import (
	stderrors "errors"
)

// Build classifies an error caught at a command handler boundary.
//
// Business, repository and system errors are returned unchanged. Anything else
// is wrapped into a system error naming the handler, the command type and the
// response type, with the caught error kept as the cause.
func Build(caught error, handler, command, response string) error {
	if caught == nil {
		return NewArgumentNilError("caught")
	}

	var ie *IntranetError
	if stderrors.As(caught, &ie) {
		switch ie.Kind {
		case KindBusiness, KindRepository, KindSystem:
			return caught
		}
	}

	wrapped := NewSystemError(CodeErrorInCommandHandler, caught, handler, command, response, caught.Error())
	wrapped.Metadata = map[string]string{
		"handler":  handler,
		"command":  command,
		"response": response,
	}
	return wrapped
}
