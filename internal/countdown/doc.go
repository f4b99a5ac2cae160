// Package countdown implements the waiting core of the on command.
//
// It parses clock-time and delay arguments into a wait duration and
// renders a countdown timer and/or progress bar while the deadline
// approaches.
package countdown
