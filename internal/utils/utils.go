package utils

import "fmt"

// Returns the average of all given numbers n (0 for no numbers)
func Average(n ...float64) float64 {
	if len(n) == 0 {
		return 0
	}

	// Sum all numbers
	var sum float64
	for _, num := range n {
		sum += num
	}

	// Divide sum by total numbers
	return sum / float64(len(n))
}

// Clamps v to the range [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamps a normalized channel value to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Clamps an integer index to [0, n-1]
func ClampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Print a Colored Block in terminal
func ColoredBlock(block string, red int, green int, blue int) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", red, green, blue, block)
}
