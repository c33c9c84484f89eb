// Package lpfile writes models in CPLEX LP format, which both glpsol and cbc read.
package lpfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aalvaropc/lpdash/internal/domain"
)

// Column names used in the written file; solution parsers look them up.
const (
	VarX = "x"
	VarY = "y"
)

// Write encodes m to w.
func Write(w io.Writer, m domain.Model) error {
	bw := bufio.NewWriter(w)

	name := m.Name
	if strings.TrimSpace(name) == "" {
		name = "model"
	}
	fmt.Fprintf(bw, "\\ Problem: %s\n", name)

	switch m.Sense {
	case domain.Minimize:
		bw.WriteString("Minimize\n")
	default:
		bw.WriteString("Maximize\n")
	}
	fmt.Fprintf(bw, " obj: %s\n", expr(m.ObjX, m.ObjY))

	bw.WriteString("Subject To\n")
	for i, c := range m.Constraints {
		label := c.Name
		if label == "" {
			label = "c" + strconv.Itoa(i+1)
		}
		fmt.Fprintf(bw, " %s: %s <= %s\n", label, expr(c.A, c.B), num(c.RHS))
	}

	bw.WriteString("Bounds\n")
	fmt.Fprintf(bw, " %s <= %s <= %s\n", num(m.X.Lower), VarX, num(m.X.Upper))
	fmt.Fprintf(bw, " %s <= %s <= %s\n", num(m.Y.Lower), VarY, num(m.Y.Upper))
	bw.WriteString("End\n")

	return bw.Flush()
}

// String returns the LP text of m.
func String(m domain.Model) string {
	var b strings.Builder
	_ = Write(&b, m)
	return b.String()
}

func expr(a, b float64) string {
	var sb strings.Builder
	writeTerm(&sb, a, VarX, true)
	writeTerm(&sb, b, VarY, sb.Len() == 0)
	if sb.Len() == 0 {
		// LP format needs at least one term.
		return "0 " + VarX
	}
	return sb.String()
}

func writeTerm(sb *strings.Builder, coef float64, name string, first bool) {
	if coef == 0 {
		return
	}
	sign := "+"
	if coef < 0 {
		sign = "-"
		coef = -coef
	}
	switch {
	case first && sign == "-":
		sb.WriteString("- ")
	case !first:
		sb.WriteString(" " + sign + " ")
	}
	if coef != 1 {
		sb.WriteString(num(coef))
		sb.WriteByte(' ')
	}
	sb.WriteString(name)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
