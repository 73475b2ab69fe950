// Package packed provides a compact representation of key transitions.
package packed

// Pair is a compressed representation of a transition between two keys.
type Pair uint16

// Pack returns the packed transition from key from to key to.
func Pack(from, to byte) Pair { return Pair(from)<<8 | Pair(to) }

func (p Pair) From() byte { return byte(p >> 8) }

func (p Pair) To() byte { return byte(p) }

func (p Pair) Unpack() (from, to byte) { return p.From(), p.To() }

func (p Pair) String() string { return string([]byte{p.From(), p.To()}) }

// Pairs returns the transitions typing s with the arm resting on key start.
func Pairs(start byte, s string) []Pair {
	pairs := make([]Pair, len(s))
	from := start
	for i := 0; i < len(s); i++ {
		pairs[i] = Pack(from, s[i])
		from = s[i]
	}
	return pairs
}
