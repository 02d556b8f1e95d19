// Package summation computes the sum of the integers 1 through n. The three
// functions are interchangeable; all of them return 0 for n <= 0.
package summation

// SumClosedForm uses n(n+1)/2. O(1).
func SumClosedForm(n int) int {
	if n <= 0 {
		return 0
	}
	return n * (n + 1) / 2
}

// SumRecursive adds n to the sum of 1..n-1. O(n) time and stack depth.
func SumRecursive(n int) int {
	if n <= 0 {
		return 0
	}
	return n + SumRecursive(n-1)
}

// SumIterative accumulates 1..n in a loop. O(n).
func SumIterative(n int) int {
	sum := 0
	for i := 1; i <= n; i++ {
		sum += i
	}
	return sum
}
