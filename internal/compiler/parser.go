package compiler

import (
	"strconv"
	"strings"

	"github.com/aretw0/scrambler/pkg/domain"
)

// Parser converts command tokens into typed domain commands.
//
// Grammar:
//
//	Shift     := 'S' int [',' int]
//	Rotate    := 'R' [int]
//	Duplicate := 'D' int [',' int]
//	Trade     := 'T' ['(' int ')'] int ',' int
//	int       := ['+'|'-'] digit {digit}
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Split breaks a command line into raw tokens. Both ';' and whitespace act as
// delimiters and empty fields are dropped, so encode-form and decode-form lines
// tokenize the same way.
func Split(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
}

// ParseLine parses every token of a command line, in order.
func (p *Parser) ParseLine(line string) ([]domain.Command, error) {
	tokens := Split(line)
	cmds := make([]domain.Command, 0, len(tokens))
	for _, tok := range tokens {
		cmd, err := p.Parse(tok)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// Parse decodes a single token such as "S3,2", "R", "D1" or "T(4)0,2".
func (p *Parser) Parse(tok string) (domain.Command, error) {
	s := &scanner{src: tok}
	if s.eof() {
		return nil, s.fail("empty token")
	}

	var cmd domain.Command
	var err error
	switch op := s.next(); op {
	case 'S':
		cmd, err = s.shift()
	case 'R':
		cmd, err = s.rotate()
	case 'D':
		cmd, err = s.duplicate()
	case 'T':
		cmd, err = s.trade()
	default:
		s.pos = 0
		return nil, s.fail("unknown operator " + strconv.QuoteRune(rune(op)))
	}
	if err != nil {
		return nil, err
	}
	if !s.eof() {
		return nil, s.fail("unexpected trailing input")
	}
	return cmd, nil
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) next() byte {
	c := s.peek()
	s.pos++
	return c
}

func (s *scanner) accept(c byte) bool {
	if s.peek() == c && !s.eof() {
		s.pos++
		return true
	}
	return false
}

func (s *scanner) expect(c byte) error {
	if !s.accept(c) {
		return s.fail("expected " + strconv.QuoteRune(rune(c)))
	}
	return nil
}

func (s *scanner) fail(reason string) *domain.ParseError {
	return &domain.ParseError{Token: s.src, Pos: s.pos, Reason: reason}
}

// integer reads a base-10 signed integer; field names the value in errors.
func (s *scanner) integer(field string) (int, error) {
	start := s.pos
	if c := s.peek(); c == '+' || c == '-' {
		s.pos++
	}
	digits := s.pos
	for !s.eof() && s.peek() >= '0' && s.peek() <= '9' {
		s.pos++
	}
	if s.pos == digits {
		s.pos = start
		return 0, s.fail("missing " + field)
	}
	n, err := strconv.Atoi(s.src[start:s.pos])
	if err != nil {
		s.pos = start
		return 0, s.fail("invalid " + field)
	}
	return n, nil
}

func (s *scanner) shift() (domain.Command, error) {
	idx, err := s.integer("index")
	if err != nil {
		return nil, err
	}
	delta := 1
	if s.accept(',') {
		if delta, err = s.integer("delta"); err != nil {
			return nil, err
		}
	}
	return domain.Shift{Index: idx, Delta: delta}, nil
}

func (s *scanner) rotate() (domain.Command, error) {
	if s.eof() {
		return domain.Rotate{Amount: 1}, nil
	}
	n, err := s.integer("amount")
	if err != nil {
		return nil, err
	}
	return domain.Rotate{Amount: n}, nil
}

func (s *scanner) duplicate() (domain.Command, error) {
	idx, err := s.integer("index")
	if err != nil {
		return nil, err
	}
	count := 1
	if s.accept(',') {
		if count, err = s.integer("count"); err != nil {
			return nil, err
		}
	}
	return domain.Duplicate{Index: idx, Count: count}, nil
}

func (s *scanner) trade() (domain.Command, error) {
	var t domain.Trade
	var err error
	if s.accept('(') {
		if t.Groups, err = s.integer("group count"); err != nil {
			return nil, err
		}
		if err := s.expect(')'); err != nil {
			return nil, err
		}
		if t.Groups == 0 {
			return nil, &domain.ParseError{Token: s.src, Pos: 1, Reason: "group count must be non-zero"}
		}
	}
	if t.I, err = s.integer("first index"); err != nil {
		return nil, err
	}
	if err := s.expect(','); err != nil {
		return nil, err
	}
	if t.J, err = s.integer("second index"); err != nil {
		return nil, err
	}
	return t, nil
}
