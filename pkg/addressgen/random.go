package addressgen

import (
	"math/rand"
	"strconv"
	"strings"
)

// randInt returns a uniform integer in [minInclusive, maxInclusive].
func randInt(rnd *rand.Rand, minInclusive, maxInclusive int) int {
	return rnd.Intn(maxInclusive-minInclusive+1) + minInclusive
}

// randDigits returns n uniformly random decimal digits.
func randDigits(rnd *rand.Rand, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + rnd.Intn(10)))
	}
	return b.String()
}

// randUpper returns one uniformly random uppercase ASCII letter.
func randUpper(rnd *rand.Rand) string {
	return string(rune('A' + rnd.Intn(26)))
}

// streetNumber returns a random street number of 3 to 5 digits, never with a
// leading zero.
func streetNumber(rnd *rand.Rand) string {
	n := randInt(rnd, 3, 5)
	var b strings.Builder
	b.Grow(n)
	b.WriteByte(byte('1' + rnd.Intn(9)))
	b.WriteString(randDigits(rnd, n-1))
	return b.String()
}

// ordinal formats n as an English ordinal: 1st, 2nd, 3rd, 4th, 11th, 21st.
func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
		// 11th, 12th, 13th keep the default suffix.
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
