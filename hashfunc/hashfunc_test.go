package hashfunc

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAlgorithmFunc_Sum(t *testing.T) {
	t.Run("adapts a plain function to the interface", func(t *testing.T) {
		// Prepare
		var alg HashAlgorithm[string] = HashAlgorithmFunc[string](func(key string) uint64 {
			return uint64(len(key))
		})

		// Execute
		sum := alg.Sum("apple")

		// Check
		assert.Equal(t, uint64(5), sum, "wrapped function is called")
	})
}

func TestCRC32(t *testing.T) {
	t.Run("matches crc32.ChecksumIEEE over the key bytes", func(t *testing.T) {
		// Prepare
		alg := CRC32()

		// Execute
		sum := alg.Sum("apple")

		// Check
		assert.Equal(t, uint64(crc32.ChecksumIEEE([]byte("apple"))), sum, "crc32 checksum of the key")
	})

	t.Run("is deterministic for equal keys", func(t *testing.T) {
		// Prepare
		alg := CRC32()

		// Execute and check
		assert.Equal(t, alg.Sum("banana"), alg.Sum("banana"), "equal keys give equal sums")
	})
}

func TestDJB2(t *testing.T) {
	t.Run("returns the seed for the empty key", func(t *testing.T) {
		// Prepare
		alg := DJB2()

		// Execute
		sum := alg.Sum("")

		// Check
		assert.Equal(t, uint64(5381), sum, "empty key gives the seed")
	})

	t.Run("folds key bytes with hash*33+c", func(t *testing.T) {
		// Prepare
		alg := DJB2()

		// Execute
		sum := alg.Sum("a")

		// Check
		assert.Equal(t, uint64(5381*33+'a'), sum, "one step of the fold")
	})
}

func TestFNV1a(t *testing.T) {
	t.Run("returns the offset basis for the empty key", func(t *testing.T) {
		// Prepare
		alg := FNV1a()

		// Execute
		sum := alg.Sum("")

		// Check
		assert.Equal(t, uint64(2166136261), sum, "empty key gives the offset basis")
	})

	t.Run("matches the published value for a single byte", func(t *testing.T) {
		// Prepare
		alg := FNV1a()

		// Execute
		sum := alg.Sum("a")

		// Check
		assert.Equal(t, uint64(0xe40c292c), sum, "fnv-1a 32 bit of \"a\"")
	})
}

func TestPolynomial(t *testing.T) {
	t.Run("folds key bytes with hash*base+c", func(t *testing.T) {
		// Prepare
		alg := Polynomial(31)

		// Execute
		sum := alg.Sum("abc")

		// Check
		expected := (uint64('a')*31+uint64('b'))*31 + uint64('c')
		assert.Equal(t, expected, sum, "three steps of the base 31 fold")
	})

	t.Run("returns zero for the empty key", func(t *testing.T) {
		// Prepare
		alg := Polynomial(31)

		// Execute and check
		assert.Zero(t, alg.Sum(""), "empty key folds to zero")
	})
}

func TestFibonacci(t *testing.T) {
	t.Run("multiplies by the golden ratio constant", func(t *testing.T) {
		// Prepare
		alg := Fibonacci()

		// Execute
		sum := alg.Sum(1)

		// Check
		assert.Equal(t, uint64(11400714819323198485), sum, "identity key gives the constant")
	})

	t.Run("is deterministic and spreads nearby keys", func(t *testing.T) {
		// Prepare
		alg := Fibonacci()

		// Execute and check
		assert.Equal(t, alg.Sum(42), alg.Sum(42), "equal keys give equal sums")
		assert.NotEqual(t, alg.Sum(42)%1024, alg.Sum(43)%1024, "adjacent keys land in different buckets")
	})
}
