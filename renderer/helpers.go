package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/moneymind"
	"github.com/shopspring/decimal"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// formatter formats amounts in a currency.
type formatter string

func (cur formatter) amount(v decimal.Decimal) string { return moneymind.M(v, string(cur)).String() }

// signed formats the effect of a transaction, like "+₹100.00" or "-₹20.00".
func (cur formatter) signed(tx moneymind.Transaction) string {
	return moneymind.M(tx.Effect(), string(cur)).SignedString()
}

const barWidth = 10

// progressBar draws a percentage as a text bar, capped at 100%.
func progressBar(pct decimal.Decimal) string {
	filled := int(pct.Div(decimal.NewFromInt(100 / barWidth)).IntPart())
	filled = max(0, min(barWidth, filled))
	return fmt.Sprintf("%s%s %s%%", strings.Repeat("█", filled), strings.Repeat("░", barWidth-filled), pct.StringFixed(0))
}

// names resolves account and category names for display.
type names struct{ d *moneymind.UserData }

func (n names) account(id string) string {
	if a, ok := n.d.Account(id); ok {
		return a.Name
	}
	return "N/A"
}

func (n names) category(id string) string {
	if c, ok := n.d.Category(id); ok {
		return c.Name
	}
	return "N/A"
}
