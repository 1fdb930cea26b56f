package token

import (
	"fmt"
	"strconv"
)

// Pos is a byte offset into the expression that was tokenized.
type Pos struct {
	I   int
	Src string
}

func (p *Pos) Col() int {
	return p.I + 1
}

func (p Pos) String() string {
	if p.Src == "" {
		return fmt.Sprintf("offset %d", p.I)
	}
	sample := p.Src[max(0, p.I-5):min(p.I+5, len(p.Src))]
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (col=%d)", sample, p.I, p.Col())
}
