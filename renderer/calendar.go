package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/moneymind"
	md "github.com/nao1215/markdown"
)

// Calendar renders a month as a Monday first grid. Each day shows its net
// flow. The transactions of every active day are listed below the grid.
func Calendar(cal moneymind.Calendar, d *moneymind.UserData) string {
	cur := formatter(cal.Currency)
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Calendar %s", cal.Month.Identifier()))

	var rows [][]string
	week := make([]string, 7)
	for _, day := range cal.Days {
		col := (int(day.Day.Weekday()) + 6) % 7
		cell := strconv.Itoa(day.Day.Day())
		if net := day.Income.Sub(day.Expenses); len(day.Transactions) > 0 {
			cell += " " + moneymind.M(net, cal.Currency).SignedString()
		}
		if day.Day.IsToday() {
			cell = md.Bold(cell)
		}
		week[col] = cell
		if col == 6 {
			rows = append(rows, week)
			week = make([]string, 7)
		}
	}
	if last := cal.Days[len(cal.Days)-1]; last.Day.Weekday() != 0 {
		rows = append(rows, week)
	}
	doc.Table(md.TableSet{
		Header: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Rows:   rows,
	})

	for _, day := range cal.Days {
		if len(day.Transactions) == 0 {
			continue
		}
		doc.H3(day.Day.Format("Monday, January 2"))
		lines := make([]string, 0, len(day.Transactions))
		for _, tx := range day.Transactions {
			lines = append(lines, fmt.Sprintf("%s %s", cur.signed(tx), Transaction(d, tx)))
		}
		doc.BulletList(lines...)
	}
	return doc.String()
}
