package numberutils

import (
	"math"
	"strconv"
)

// ToIntWithDefault converts the given string to an integer.
// If the string cannot be converted, it returns the provided default value.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return defaultVal
}

// MaxInt returns the maximum value from a list of integers.
// It accepts a variadic number of integers and returns the largest one.
func MaxInt(nums ...int) int {
	maxVal := math.MinInt
	for _, num := range nums {
		if num > maxVal {
			maxVal = num
		}
	}
	return maxVal
}

// MinInt returns the minimum value from a list of integers.
// It accepts a variadic number of integers and returns the smallest one.
func MinInt(nums ...int) int {
	minVal := math.MaxInt
	for _, num := range nums {
		if num < minVal {
			minVal = num
		}
	}
	return minVal
}

// ClampInt limits value to the inclusive range [lower, upper].
func ClampInt(value, lower, upper int) int {
	return MinInt(MaxInt(value, lower), upper)
}
