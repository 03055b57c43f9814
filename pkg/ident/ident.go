// Package ident generates correlation identifiers.
//
// Nothing here is cryptographically secure. Values are meant to tag
// requests and DOM elements, never to act as tokens or secrets.
package ident

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const (
	guidTemplate = "xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx"
	hexDigits    = "0123456789abcdef"
)

// RandomString returns n characters drawn uniformly, with replacement, from
// [A-Za-z0-9]. n <= 0 yields "".
func RandomString(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}

// GUID returns a v4-shaped GUID seeded from the wall clock.
func GUID() string {
	return NewGUID(time.Now, rand.Float64)
}

// NewGUID fills the GUID template from now and rnd. Each placeholder takes
// (d + rnd()*16) mod 16, where d starts at now in Unix milliseconds and is
// divided by 16 after every placeholder. The "y" position is masked to the
// RFC 4122 variant range 8-b. Clocks before 1970 yield negative remainders,
// which are masked into 0-f.
func NewGUID(now func() time.Time, rnd func() float64) string {
	d := float64(now().UnixMilli())
	var sb strings.Builder
	sb.Grow(len(guidTemplate))
	for i := 0; i < len(guidTemplate); i++ {
		ch := guidTemplate[i]
		if ch != 'x' && ch != 'y' {
			sb.WriteByte(ch)
			continue
		}
		r := int(math.Mod(d+rnd()*16, 16)) & 0xf
		d = math.Floor(d / 16)
		if ch == 'y' {
			r = r&0x3 | 0x8
		}
		sb.WriteByte(hexDigits[r])
	}
	return sb.String()
}

// IsGUID reports whether s is a canonical 36-character GUID carrying
// version 4 and the RFC 4122 variant.
func IsGUID(s string) bool {
	if len(s) != len(guidTemplate) {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122
}
