// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package command

// Kind identifies a command failure category, mirrored verbatim from
// spec §4.5 plus the Released kind this repo adds for commands issued
// after the engine has been torn down.
type Kind string

const (
	// ParseError covers unknown verbs and malformed syntax.
	ParseError Kind = "ParseError"
	// UnknownParameter covers a CONFIGURE name the engine doesn't
	// recognize.
	UnknownParameter Kind = "UnknownParameter"
	// OutOfRange covers a CONFIGURE value outside its parameter's
	// bounds.
	OutOfRange Kind = "OutOfRange"
	// NoSubmissions covers GET ANSWER TO a question with no prior SET.
	NoSubmissions Kind = "NoSubmissions"
	// Released covers any command issued after Engine.Release.
	Released Kind = "Released"
)

// Error is the structured failure returned by Parse and Dispatch.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}
