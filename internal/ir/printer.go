// SPDX-License-Identifier: Apache-2.0
package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v2"
	"github.com/iancoleman/strcase"
)

// Printer renders an Expr to a single-line, s-expression-like canonical
// form, e.g. "(add %x (const 3 : i32))".
type Printer struct {
	output strings.Builder
}

// Print returns the canonical textual form of e.
func Print(e Expr) string {
	p := &Printer{}
	p.write(e)
	return p.output.String()
}

func (p *Printer) write(e Expr) {
	switch n := e.(type) {
	case *IntImm:
		fmt.Fprintf(&p.output, "(const %d : %s)", n.Value, n.Type_)
	case *UIntImm:
		fmt.Fprintf(&p.output, "(const %d : %s)", n.Value, n.Type_)
	case *FloatImm:
		fmt.Fprintf(&p.output, "(const %s : %s)", formatFloat(n.Value), n.Type_)
	case *Var:
		p.output.WriteString("%" + n.Name)
	case *IterVar:
		p.write(n.Var)
	case *CastExpr:
		fmt.Fprintf(&p.output, "(cast %s ", n.Type_)
		p.write(n.Value)
		p.output.WriteByte(')')
	case *Broadcast:
		p.output.WriteString("(broadcast ")
		p.write(n.Value)
		fmt.Fprintf(&p.output, " %d)", n.Lanes)
	case *AddExpr:
		p.writeOp("add", n.A, n.B)
	case *SubExpr:
		p.writeOp("sub", n.A, n.B)
	case *MulExpr:
		p.writeOp("mul", n.A, n.B)
	case *DivExpr:
		p.writeOp("div", n.A, n.B)
	case *ModExpr:
		p.writeOp("mod", n.A, n.B)
	case *MinExpr:
		p.writeOp("min", n.A, n.B)
	case *MaxExpr:
		p.writeOp("max", n.A, n.B)
	case *GTExpr:
		p.writeOp("gt", n.A, n.B)
	case *GEExpr:
		p.writeOp("ge", n.A, n.B)
	case *LTExpr:
		p.writeOp("lt", n.A, n.B)
	case *LEExpr:
		p.writeOp("le", n.A, n.B)
	case *EQExpr:
		p.writeOp("eq", n.A, n.B)
	case *NEExpr:
		p.writeOp("ne", n.A, n.B)
	case *AndExpr:
		p.writeOp("and", n.A, n.B)
	case *OrExpr:
		p.writeOp("or", n.A, n.B)
	case *NotExpr:
		p.writeOp("not", n.A)
	case *SelectExpr:
		p.writeOp("select", n.Cond, n.T, n.F)
	case *CallExpr:
		p.writeOp(strcase.ToSnake(n.Name), n.Args...)
	case *ReduceExpr:
		p.writeOp("reduce", n.Source[0])
	default:
		p.output.WriteString(e.String())
	}
}

func (p *Printer) writeOp(name string, operands ...Expr) {
	p.output.WriteByte('(')
	p.output.WriteString(name)
	for _, o := range operands {
		p.output.WriteByte(' ')
		p.write(o)
	}
	p.output.WriteByte(')')
}

// formatFloat renders a float64 as a canonical, non-scientific decimal
// (0.1 prints as "0.1", never "1e-01"); the fold rules and stored value of a
// FloatImm remain float64 exactly — this is presentation only.
func formatFloat(v float64) string {
	d := new(apd.Decimal)
	if _, err := d.SetFloat64(v); err != nil {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return d.Text('f')
}
