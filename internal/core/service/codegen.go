package service

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	containerCodePrefix = "CONT"
	skuPrefix           = "KC"
)

// NewContainerCode returns a human-readable container code in the format
// CONT-<base36 millis>-<base36 random>, upper-cased. The generator does not
// guarantee global uniqueness; callers enforce it against the store.
func NewContainerCode() string {
	return code(containerCodePrefix, 4)
}

// NewSKU returns a generated SKU in the format KC-<base36 millis>-<base36 random>.
func NewSKU() string {
	return code(skuPrefix, 2)
}

func code(prefix string, randLen int) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := randomBase36(randLen)
	return strings.ToUpper(prefix + "-" + ts + "-" + suffix)
}

const base36Digits = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36Digits[rand.Intn(len(base36Digits))]
	}
	return string(b)
}
