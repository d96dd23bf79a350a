/*
Package ops is the operator library of the transformation language.

Every operator is a pure function from a message and its parameters to a new
message. Forward and inverse variants are provided per family:

	Shift / Unshift             letter at i moved +k / -k in its alphabet
	Rotate / Unrotate           right-rotate by n / by -n
	Duplicate / Unduplicate     insert / remove k copies after i
	Trade, TradeGroups          self-inverse swaps

Positions are byte offsets; messages are expected to be ASCII text.
Invalid parameters fail with a *domain.IndexError, never by clamping.
*/
package ops
