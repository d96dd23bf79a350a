package domain

import "fmt"

// Family identifies one of the operator families of the command language.
type Family string

const (
	FamilyShift     Family = "shift"
	FamilyRotate    Family = "rotate"
	FamilyDuplicate Family = "duplicate"
	FamilyTrade     Family = "trade"
)

// Command is a single parsed transformation token.
// The set of implementations is closed; dispatch on it with a type switch.
type Command interface {
	Family() Family
	// String renders the canonical token, e.g. "S3,2" or "T(4)0,2".
	String() string
	isCommand()
}

// Shift moves the letter at Index by Delta positions in the alphabet.
// A token without an explicit delta ("S3") carries Delta 1.
type Shift struct {
	Index int `json:"index"`
	Delta int `json:"delta"`
}

// Rotate right-rotates the whole message by Amount positions.
// A bare "R" carries Amount 1; negative amounts rotate left.
type Rotate struct {
	Amount int `json:"amount"`
}

// Duplicate inserts Count extra copies of the character at Index right after it.
type Duplicate struct {
	Index int `json:"index"`
	Count int `json:"count"`
}

// Trade swaps positions I and J. When Groups is non-zero the message is split
// into Groups equal blocks and whole blocks I and J are swapped instead.
type Trade struct {
	Groups int `json:"groups,omitempty"`
	I      int `json:"i"`
	J      int `json:"j"`
}

func (Shift) Family() Family     { return FamilyShift }
func (Rotate) Family() Family    { return FamilyRotate }
func (Duplicate) Family() Family { return FamilyDuplicate }
func (Trade) Family() Family     { return FamilyTrade }

func (Shift) isCommand()     {}
func (Rotate) isCommand()    {}
func (Duplicate) isCommand() {}
func (Trade) isCommand()     {}

func (c Shift) String() string {
	if c.Delta == 1 {
		return fmt.Sprintf("S%d", c.Index)
	}
	return fmt.Sprintf("S%d,%d", c.Index, c.Delta)
}

func (c Rotate) String() string {
	if c.Amount == 1 {
		return "R"
	}
	return fmt.Sprintf("R%d", c.Amount)
}

func (c Duplicate) String() string {
	if c.Count == 1 {
		return fmt.Sprintf("D%d", c.Index)
	}
	return fmt.Sprintf("D%d,%d", c.Index, c.Count)
}

func (c Trade) String() string {
	if c.Groups == 0 {
		return fmt.Sprintf("T%d,%d", c.I, c.J)
	}
	return fmt.Sprintf("T(%d)%d,%d", c.Groups, c.I, c.J)
}
