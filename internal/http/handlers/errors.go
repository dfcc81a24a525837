// Package handlers implements the HTTP endpoints and the boundary at which
// handler failures become problem responses.
//
// This file holds the sentinel failures raised by handler steps. They never
// reach clients verbatim: the boundary wraps them as internal errors, and the
// rendered detail is the configured generic message.
package handlers

import "errors"

// ErrSomethingWentWrong is raised by the default root step.
var ErrSomethingWentWrong = errors.New("Something went wrong")
