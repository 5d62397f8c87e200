// Package triplechecker is the console driver of the Pythagorean triple checker.
//
// One run localizes the interface texts, prints a header, reads a single line with three integers
// and prints whether they form a Pythagorean triple. Input problems are reported to the user,
// never returned to the caller.
package triplechecker
