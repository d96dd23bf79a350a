package ops

import (
	"strings"

	"github.com/aretw0/scrambler/pkg/domain"
)

// MaxOutput bounds the length of a message produced by Duplicate.
const MaxOutput = 1 << 20

// Duplicate inserts k extra copies of the character at index i right after it.
// HOPED with i=2, k=1 becomes HOPPED.
func Duplicate(msg string, i, k int) (string, error) {
	if err := checkIndex(domain.FamilyDuplicate, msg, i); err != nil {
		return "", err
	}
	if k < 0 {
		return "", &domain.IndexError{Op: domain.FamilyDuplicate, Index: i, Length: len(msg), Reason: "negative count"}
	}
	if k > 0 && k > MaxOutput-len(msg) {
		return "", &domain.IndexError{Op: domain.FamilyDuplicate, Index: i, Length: len(msg), Reason: "count too large"}
	}
	var b strings.Builder
	b.Grow(len(msg) + k)
	b.WriteString(msg[:i+1])
	b.WriteString(strings.Repeat(msg[i:i+1], k))
	b.WriteString(msg[i+1:])
	return b.String(), nil
}

// Unduplicate removes the k characters at positions i+1..i+k, which are
// exactly the copies Duplicate(msg, i, k) inserted.
func Unduplicate(msg string, i, k int) (string, error) {
	if err := checkIndex(domain.FamilyDuplicate, msg, i); err != nil {
		return "", err
	}
	if k < 0 {
		return "", &domain.IndexError{Op: domain.FamilyDuplicate, Index: i, Length: len(msg), Reason: "negative count"}
	}
	if k >= len(msg)-i {
		return "", &domain.IndexError{Op: domain.FamilyDuplicate, Index: i, Length: len(msg), Reason: "not enough characters to remove"}
	}
	return msg[:i+1] + msg[i+1+k:], nil
}

// UnduplicateLegacy reproduces the historical multi-copy inverse, which keeps
// msg[:i+1] and then resumes at offset i*k. A count of 1 always uses the
// regular removal: "D2" and "D2,1" parse to the same command, so the old
// tool's different handling of an explicit ",1" is not reproduced.
func UnduplicateLegacy(msg string, i, k int) (string, error) {
	if k == 1 {
		return Unduplicate(msg, i, k)
	}
	if err := checkIndex(domain.FamilyDuplicate, msg, i); err != nil {
		return "", err
	}
	if k < 0 {
		return "", &domain.IndexError{Op: domain.FamilyDuplicate, Index: i, Length: len(msg), Reason: "negative count"}
	}
	from := len(msg)
	if k == 0 || i <= len(msg)/k {
		from = min(i*k, len(msg))
	}
	return msg[:i+1] + msg[from:], nil
}
