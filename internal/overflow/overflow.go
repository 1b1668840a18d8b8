// Package overflow provides overflow-checked arithmetic over the uint32
// length and capacity fields a Tendril carries.
package overflow

import (
	"fmt"
	"math"
)

// MaxLen is the largest length a Tendril may hold (2^32 - 1 bytes), per the
// core's 32-bit length/capacity/offset field width.
const MaxLen = math.MaxUint32

// CheckAddOverflow reports whether a+b would exceed MaxLen.
func CheckAddOverflow(a, b uint32) error {
	if a > MaxLen-b {
		return fmt.Errorf("length overflow: %d + %d exceeds %d", a, b, uint32(MaxLen))
	}
	return nil
}

// SafeAdd adds a and b, returning an error instead of wrapping on overflow.
func SafeAdd(a, b uint32) (uint32, error) {
	if err := CheckAddOverflow(a, b); err != nil {
		return 0, err
	}
	return a + b, nil
}

// CheckMulOverflow reports whether a*b would exceed MaxLen, used when
// doubling a capacity.
func CheckMulOverflow(a, b uint32) error {
	if a == 0 || b == 0 {
		return nil
	}
	if a > MaxLen/b {
		return fmt.Errorf("capacity overflow: %d * %d exceeds %d", a, b, uint32(MaxLen))
	}
	return nil
}

// NextCapacity returns a doubling-policy capacity that is at least need,
// never exceeding MaxLen.
func NextCapacity(current, need uint32) (uint32, error) {
	if current >= need {
		return current, nil
	}
	next := current
	if next == 0 {
		next = 8
	}
	for next < need {
		if err := CheckMulOverflow(next, 2); err != nil {
			return 0, err
		}
		next *= 2
	}
	return next, nil
}
