// Package prompt reads single lines of user input for interactive questions.
// End of input and interrupts are reported as distinct sentinel errors so
// callers can treat both as a request to stop.
package prompt
