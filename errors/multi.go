package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no errors are given, nil is returned. A single error is returned as it
// is. The result of clubbing more than one error matches (via Is) every root
// error of its members and reports the code of the first member.
func Append(errs ...error) error {
	var flat []error
	for _, err := range errs {
		if errIsNil(err) {
			continue
		}
		if u, ok := err.(unpacker); ok {
			flat = append(flat, u.Unpack()...)
		} else {
			flat = append(flat, err)
		}
	}
	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return multiErr(flat)
	}
}

type multiErr []error

func (m multiErr) Unpack() []error {
	return m
}

func (m multiErr) Error() string {
	points := make([]string, len(m))
	for i, err := range m {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(m), strings.Join(points, "\n\t"))
}

// ABCICode returns the code of the first error, consistent with a fail fast
// validation approach.
func (m multiErr) ABCICode() uint32 {
	return abciCode(m[0])
}
