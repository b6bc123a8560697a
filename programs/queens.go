package programs

import "github.com/zephyrtronium/tigerrt"

// Queens returns a program that prints every solution to the n queens
// problem, one board per solution followed by a blank line. Column i of the
// board shows the queen's row in the ith line. n must be positive.
func Queens(n int) tigerrt.Program {
	return func(rt *tigerrt.Runtime) int {
		q := queens{
			rt:    rt,
			n:     n,
			row:   rt.InitArray(n, 0),
			col:   rt.InitArray(n, 0),
			diag1: rt.InitArray(2*n-1, 0),
			diag2: rt.InitArray(2*n-1, 0),
			queen: rt.Literal(" O"),
			empty: rt.Literal(" ."),
			nl:    rt.Literal("\n"),
		}
		q.try(0)
		return 0
	}
}

type queens struct {
	rt *tigerrt.Runtime
	n  int

	row, col, diag1, diag2 *tigerrt.Block

	queen, empty, nl *tigerrt.String
}

func (q *queens) printboard() {
	for i := 0; i < q.n; i++ {
		for j := 0; j < q.n; j++ {
			if q.col.Int(i) == int64(j) {
				q.rt.Print(q.queen)
			} else {
				q.rt.Print(q.empty)
			}
		}
		q.rt.Print(q.nl)
	}
	q.rt.Print(q.nl)
}

func (q *queens) try(c int) {
	if c == q.n {
		q.printboard()
		return
	}
	for r := 0; r < q.n; r++ {
		d1, d2 := r+c, r+q.n-1-c
		if q.row.Int(r) == 0 && q.diag1.Int(d1) == 0 && q.diag2.Int(d2) == 0 {
			q.row.SetInt(r, 1)
			q.diag1.SetInt(d1, 1)
			q.diag2.SetInt(d2, 1)
			q.col.SetInt(c, int64(r))
			q.try(c + 1)
			q.row.SetInt(r, 0)
			q.diag1.SetInt(d1, 0)
			q.diag2.SetInt(d2, 0)
		}
	}
}
