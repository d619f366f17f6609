package keygen

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Code identifies a generator failure. Codes are stable and safe to expose
// to API clients.
type Code string

const (
	CodeEmptyCharacterPool      Code = "EMPTY_CHARACTER_POOL"
	CodeEmptyPoolAfterExclusion Code = "EMPTY_POOL_AFTER_EXCLUSION"
	CodeInvalidPasswordLength   Code = "INVALID_PASSWORD_LENGTH"
	CodeMaxAttemptsExceeded     Code = "MAX_ATTEMPTS_EXCEEDED"
	CodeInvalidMaxAttempts      Code = "INVALID_MAX_ATTEMPTS"
	CodeInvalidWordCount        Code = "INVALID_WORD_COUNT"
	CodeEmptyWordList           Code = "EMPTY_WORD_LIST"
	CodeInvalidWordStyle        Code = "INVALID_WORD_STYLE"
	CodeInvalidWord             Code = "INVALID_WORD"
)

var messages = map[Code]string{
	CodeEmptyCharacterPool:      "character pool cannot be empty",
	CodeEmptyPoolAfterExclusion: "no characters remaining after applying exclusions",
	CodeInvalidPasswordLength:   "password length must be at least the number of enabled character sets",
	CodeMaxAttemptsExceeded:     "unable to generate password meeting requirements, consider relaxing constraints",
	CodeInvalidMaxAttempts:      "max attempts must be positive",
	CodeInvalidWordCount:        "word count must be at least 1",
	CodeEmptyWordList:           "word list is empty",
	CodeInvalidWordStyle:        "word style must be one of lowercase, uppercase, capitalize",
	CodeInvalidWord:             "word list entries must be ASCII letters",
}

// Sentinels for errors.Is. Errors returned by this package carry metadata
// but compare equal to these by code.
var (
	ErrEmptyCharacterPool      = &Error{Code: CodeEmptyCharacterPool, Message: messages[CodeEmptyCharacterPool]}
	ErrEmptyPoolAfterExclusion = &Error{Code: CodeEmptyPoolAfterExclusion, Message: messages[CodeEmptyPoolAfterExclusion]}
	ErrInvalidPasswordLength   = &Error{Code: CodeInvalidPasswordLength, Message: messages[CodeInvalidPasswordLength]}
	ErrMaxAttemptsExceeded     = &Error{Code: CodeMaxAttemptsExceeded, Message: messages[CodeMaxAttemptsExceeded]}
	ErrInvalidMaxAttempts      = &Error{Code: CodeInvalidMaxAttempts, Message: messages[CodeInvalidMaxAttempts]}
	ErrInvalidWordCount        = &Error{Code: CodeInvalidWordCount, Message: messages[CodeInvalidWordCount]}
	ErrEmptyWordList           = &Error{Code: CodeEmptyWordList, Message: messages[CodeEmptyWordList]}
	ErrInvalidWordStyle        = &Error{Code: CodeInvalidWordStyle, Message: messages[CodeInvalidWordStyle]}
	ErrInvalidWord             = &Error{Code: CodeInvalidWord, Message: messages[CodeInvalidWord]}
)

// Error is a generator failure with a stable code and optional metadata.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]any
}

// newError builds an Error for code, attaching metadata to the standard message.
func newError(code Code, metadata map[string]any) *Error {
	return &Error{Code: code, Message: messages[code], Metadata: metadata}
}

func (e *Error) Error() string {
	if len(e.Metadata) == 0 {
		return e.Message
	}

	keys := make([]string, 0, len(e.Metadata))
	for k := range e.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, e.Metadata[k])
	}
	return e.Message + " (" + strings.Join(parts, ", ") + ")"
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// CodeOf returns the code carried by err, or "" when err is not a generator error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
