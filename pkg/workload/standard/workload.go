package standard

import (
	"errors"
	"math/rand"
	"sort"
)

// MaxElementValue bounds the random values used to fill sorting and search inputs.
const MaxElementValue = 100

var ErrNegativeSize = errors.New("input size must not be negative")

func randomInts(n int) []int {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = rand.Intn(MaxElementValue)
	}
	return arr
}

// BubbleSort fills an array of n random values and sorts it in place.
func BubbleSort(n int) []int {
	arr := randomInts(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
			}
		}
	}
	return arr
}

// LinearSearch walks 0..n-1 looking for the last index. Returns -1 for n == 0.
func LinearSearch(n int) int {
	for i := 0; i < n; i++ {
		if i == n-1 {
			return i
		}
	}
	return -1
}

// BinarySearch sorts n random values and searches for the largest one.
func BinarySearch(n int) int {
	if n == 0 {
		return -1
	}

	arr := randomInts(n)
	sort.Ints(arr)
	target := arr[n-1]

	left, right := 0, n-1
	for left <= right {
		mid := left + (right-left)/2
		switch {
		case arr[mid] == target:
			return mid
		case arr[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return -1
}

// NestedLoops counts n*n iterations of a doubly nested loop.
func NestedLoops(n int) int {
	count := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			count++
		}
	}
	return count
}
