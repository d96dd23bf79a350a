package ops

import (
	"github.com/aretw0/scrambler/pkg/domain"
)

// Trade swaps the characters at positions i and j. It is its own inverse.
// SAUCE with i=0, j=3 becomes CAUSE.
func Trade(msg string, i, j int) (string, error) {
	if err := checkIndex(domain.FamilyTrade, msg, i); err != nil {
		return "", err
	}
	if err := checkIndex(domain.FamilyTrade, msg, j); err != nil {
		return "", err
	}
	b := []byte(msg)
	b[i], b[j] = b[j], b[i]
	return string(b), nil
}

// TradeGroups splits msg into g contiguous blocks of len(msg)/g characters and
// swaps blocks i and j. It is its own inverse.
// BACKHAND with g=4, i=0, j=2 becomes HACKBAND.
func TradeGroups(msg string, g, i, j int) (string, error) {
	if g <= 0 || len(msg)%g != 0 {
		return "", &domain.IndexError{Op: domain.FamilyTrade, Index: g, Length: len(msg), Reason: "group count must evenly divide the message"}
	}
	for _, idx := range []int{i, j} {
		if idx < 0 || idx >= g {
			return "", &domain.IndexError{Op: domain.FamilyTrade, Index: idx, Length: len(msg), Reason: "group index out of range"}
		}
	}
	if i == j {
		return msg, nil
	}
	if i > j {
		i, j = j, i
	}
	size := len(msg) / g
	a, b := i*size, j*size
	return msg[:a] + msg[b:b+size] + msg[a+size:b] + msg[a:a+size] + msg[b+size:], nil
}
