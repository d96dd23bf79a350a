package ops

// Rotate right-rotates msg by n positions; negative n rotates left.
// n is reduced modulo the message length, so any n is accepted and the empty
// message is returned unchanged.
func Rotate(msg string, n int) string {
	if len(msg) == 0 {
		return msg
	}
	n %= len(msg)
	if n < 0 {
		n += len(msg)
	}
	if n == 0 {
		return msg
	}
	cut := len(msg) - n
	return msg[cut:] + msg[:cut]
}

// Unrotate is the inverse of Rotate(msg, n).
func Unrotate(msg string, n int) string {
	if len(msg) == 0 {
		return msg
	}
	return Rotate(msg, -(n % len(msg)))
}
