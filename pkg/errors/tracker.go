// XkcdGrab: A small CLI tool for fetching and saving xkcd comics.
// Copyright (C) 2025 Luca M. Schmidt (LuMiSxh)
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package errors

import (
	"runtime"
	"strings"
	"time"
)

// TrackedError wraps errors with the chain of functions they passed through
type TrackedError struct {
	Original    error                  `json:"original_error"`
	CallChain   []FunctionCall         `json:"call_chain"`
	Context     map[string]interface{} `json:"context,omitempty"`
	UserMessage string                 `json:"user_message,omitempty"`
	Category    ErrorCategory          `json:"category"`
}

// FunctionCall represents a single function in the call chain
type FunctionCall struct {
	Function  string    `json:"function"`
	ShortName string    `json:"short_name"`
	File      string    `json:"file"`
	Line      int       `json:"line"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorCategory classifies errors by the stage that produced them
type ErrorCategory string

const (
	CategoryConfig        ErrorCategory = "config"
	CategoryTransport     ErrorCategory = "transport"
	CategoryParse         ErrorCategory = "parse"
	CategoryPath          ErrorCategory = "path"
	CategoryIO            ErrorCategory = "io"
	CategorySerialization ErrorCategory = "serialization"
	CategoryUnknown       ErrorCategory = "unknown"
)

func (e *TrackedError) Error() string {
	if e.UserMessage != "" && e.Original != nil {
		return e.UserMessage + ": " + e.Original.Error()
	}
	if e.UserMessage != "" {
		return e.UserMessage
	}
	if e.Original != nil {
		return e.Original.Error()
	}
	return "unknown error"
}

func (e *TrackedError) Unwrap() error {
	return e.Original
}

// GetFunctionChain returns the function call path as a string
func (e *TrackedError) GetFunctionChain() string {
	if len(e.CallChain) == 0 {
		return ""
	}

	functions := make([]string, len(e.CallChain))
	for i, call := range e.CallChain {
		functions[i] = call.ShortName
	}

	return strings.Join(functions, " -> ")
}

// trackError records the caller and either starts a new TrackedError or extends an existing one
func trackError(err error) *TrackedError {
	call := callerFrame()

	if existing, ok := err.(*TrackedError); ok {
		existing.CallChain = append(existing.CallChain, call)
		return existing
	}

	tracked := &TrackedError{
		Original:  err,
		CallChain: []FunctionCall{call},
		Context:   make(map[string]interface{}),
		Category:  CategoryUnknown,
	}

	// A wrapped tracked error hands down its chain and category
	var inner *TrackedError
	if As(err, &inner) {
		tracked.CallChain = append(append([]FunctionCall{}, inner.CallChain...), call)
		tracked.Category = inner.Category
	}

	return tracked
}

// callerFrame walks up the stack to the first function outside this package
func callerFrame() FunctionCall {
	for i := 1; i < 12; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		if strings.Contains(file, "pkg/errors/") && !strings.HasSuffix(file, "_test.go") {
			continue
		}

		name := "unknown"
		if fn := runtime.FuncForPC(pc); fn != nil {
			name = fn.Name()
		}

		return FunctionCall{
			Function:  name,
			ShortName: shortFunctionName(name),
			File:      fileName(file),
			Line:      line,
			Timestamp: time.Now(),
		}
	}

	return FunctionCall{Function: "unknown", ShortName: "unknown", File: "unknown", Timestamp: time.Now()}
}

// shortFunctionName turns "XkcdGrab/pkg/engine.(*Engine).Run" into "Engine.Run"
func shortFunctionName(fullName string) string {
	if idx := strings.LastIndex(fullName, "/"); idx != -1 {
		fullName = fullName[idx+1:]
	}
	if idx := strings.Index(fullName, "."); idx != -1 {
		fullName = fullName[idx+1:]
	}
	fullName = strings.ReplaceAll(fullName, "(*", "")
	return strings.ReplaceAll(fullName, ")", "")
}

func fileName(fullPath string) string {
	if idx := strings.LastIndex(fullPath, "/"); idx != -1 {
		return fullPath[idx+1:]
	}
	return fullPath
}
