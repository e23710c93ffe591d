// Command ls-panchang derives the Tamil almanac, sidereal birth charts
// and Vimshottari periods in the terminal.
package main

func main() {
	Execute()
}
