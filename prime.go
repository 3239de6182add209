package htable

// minCapacity is the smallest table length; nextPrime never returns less.
const minCapacity = 2

// isPrime reports whether n is prime using trial division by odd integers
// up to √n.
//
//go:nosplit
func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// nextPrime returns the smallest prime that is greater than or equal to n.
// Values below 2 yield 2. The caller guarantees n stays well below maxInt,
// see maxCapacity.
func nextPrime(n int) int {
	if n <= minCapacity {
		return minCapacity
	}
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}
	return n
}
