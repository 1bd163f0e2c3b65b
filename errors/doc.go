/*
Package errors implements the error handling used by remit.

Every failure returned to a client is a wrapped root error. Root errors are
declared with Register, which binds a unique ABCI code to a description. An
extension that needs its own failure kinds registers them at package
initialization, using a code range of its own.

Create an error instance at the place it happens with ErrXyz.New("...") or
Wrap(ErrXyz, "...") so that a stack trace of that frame is attached. Wrapping
an already wrapped error adds context but not another stack trace.

Test the kind of an error with ErrXyz.Is(err). Use ABCIInfo to translate an
error into the code and log of an ABCI response.

Format verbs:
	%s is the error message
	%+v is the message followed by the stack trace of the innermost wrap
*/
package errors
