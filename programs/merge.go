package programs

import "github.com/zephyrtronium/tigerrt"

// Merge reads two ascending lists of non-negative integers from standard
// input and prints their merge, each number followed by a space and the
// whole followed by a newline. Numbers are separated by spaces or newlines;
// any other byte ends the first list and is skipped before the second.
//
// Lists are records of two words: the element, then a reference to the rest.
func Merge(rt *tigerrt.Runtime) int {
	m := merge{
		rt:    rt,
		space: rt.Literal(" "),
		nl:    rt.Literal("\n"),
		minus: rt.Literal("-"),
		zero:  rt.Chr('0'),
	}
	m.buffer = rt.Getchar()
	list1 := m.readlist()
	m.buffer = rt.Getchar()
	list2 := m.readlist()
	m.printlist(m.merge(list1, list2))
	return 0
}

const (
	listFirst = iota
	listRest
	listWords
)

type merge struct {
	rt     *tigerrt.Runtime
	buffer *tigerrt.String

	space, nl, minus, zero *tigerrt.String
}

func (m *merge) isdigit() bool {
	c := m.rt.Ord(m.buffer)
	return c >= m.rt.Ord(m.zero) && c <= m.rt.Ord(m.zero)+9
}

// readint reads a number, reporting in ok whether there was one.
func (m *merge) readint() (i int, ok bool) {
	for m.rt.StringEqual(m.buffer, m.space) || m.rt.StringEqual(m.buffer, m.nl) {
		m.buffer = m.rt.Getchar()
	}
	ok = m.isdigit()
	for m.isdigit() {
		i = i*10 + m.rt.Ord(m.buffer) - m.rt.Ord(m.zero)
		m.buffer = m.rt.Getchar()
	}
	return i, ok
}

func (m *merge) cons(first int, rest *tigerrt.Block) *tigerrt.Block {
	l := m.rt.AllocRecord(listWords * tigerrt.WordSize)
	l.SetInt(listFirst, int64(first))
	if rest != nil {
		l.SetRef(listRest, rest)
	}
	return l
}

func first(l *tigerrt.Block) int {
	return int(l.Int(listFirst))
}

func rest(l *tigerrt.Block) *tigerrt.Block {
	r, _ := l.Ref(listRest).(*tigerrt.Block)
	return r
}

func (m *merge) readlist() *tigerrt.Block {
	i, ok := m.readint()
	if !ok {
		return nil
	}
	return m.cons(i, m.readlist())
}

func (m *merge) merge(a, b *tigerrt.Block) *tigerrt.Block {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case first(a) < first(b):
		return m.cons(first(a), m.merge(rest(a), b))
	default:
		return m.cons(first(b), m.merge(a, rest(b)))
	}
}

func (m *merge) printint(i int) {
	var f func(i int)
	f = func(i int) {
		if i > 0 {
			f(i / 10)
			m.rt.Print(m.rt.Chr(i - i/10*10 + m.rt.Ord(m.zero)))
		}
	}
	switch {
	case i < 0:
		m.rt.Print(m.minus)
		f(-i)
	case i > 0:
		f(i)
	default:
		m.rt.Print(m.zero)
	}
}

func (m *merge) printlist(l *tigerrt.Block) {
	for ; l != nil; l = rest(l) {
		m.printint(first(l))
		m.rt.Print(m.space)
	}
	m.rt.Print(m.nl)
}
