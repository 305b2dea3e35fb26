// Package report renders solved castings for human consumption. It is
// a pure formatting collaborator: it consumes assign.Result values and
// produces strings, never touching stdout or the solver's state.
package report
