package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/goemoj/internal/flushio"
)

type ioCore struct {
	out flushio.WriteFlusher
}

func (ioc *ioCore) Close() error {
	if ioc.out != nil {
		return ioc.out.Flush()
	}
	return nil
}

func (ioc *ioCore) flushOutput(s string) error {
	if ioc.out == nil || s == "" {
		return nil
	}
	if _, err := io.WriteString(ioc.out, s); err != nil {
		return err
	}
	return ioc.out.Flush()
}

var (
	ErrStackUnderflow        = errors.New("stack underflow")
	ErrInvalidNumericLiteral = errors.New("invalid numeric literal")
	ErrTypeMismatch          = errors.New("type mismatch")
	ErrDivisionByZero        = errors.New("division by zero")
	ErrInvalidCharacter      = errors.New("invalid character code")
	ErrStepLimit             = errors.New("step limit exceeded")
)

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

// opError attributes an error to the instruction that raised it.
type opError struct {
	op  Atom
	err error
}

func (err opError) Error() string { return fmt.Sprintf("%v: %v", err.op, err.err) }
func (err opError) Unwrap() error { return err.err }

type typeError struct {
	want string
	got  Value
}

func (err typeError) Error() string {
	if err.got == nil {
		return fmt.Sprintf("%v: expected %v", ErrTypeMismatch, err.want)
	}
	return fmt.Sprintf("%v: expected %v, got %v %v", ErrTypeMismatch, err.want, valueKind(err.got), err.got)
}
func (err typeError) Unwrap() error { return ErrTypeMismatch }

type literalError struct{ got Value }

func (err literalError) Error() string {
	return fmt.Sprintf("%v: %v is not a digit", ErrInvalidNumericLiteral, err.got)
}
func (err literalError) Unwrap() error { return ErrInvalidNumericLiteral }

type charError struct{ n Number }

func (err charError) Error() string { return fmt.Sprintf("%v %v", ErrInvalidCharacter, err.n) }
func (err charError) Unwrap() error { return ErrInvalidCharacter }

// ErrorKind names the kind of a run error, for display to a user; it returns
// "Error" for anything that isn't one of the VM's own error kinds.
func ErrorKind(err error) string {
	for _, kind := range []struct {
		err  error
		name string
	}{
		{ErrStackUnderflow, "StackUnderflow"},
		{ErrInvalidNumericLiteral, "InvalidNumericLiteral"},
		{ErrTypeMismatch, "TypeMismatch"},
		{ErrDivisionByZero, "DivisionByZero"},
		{ErrInvalidCharacter, "InvalidCharacter"},
		{ErrStepLimit, "StepLimit"},
	} {
		if errors.Is(err, kind.err) {
			return kind.name
		}
	}
	return "Error"
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(" ", n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
