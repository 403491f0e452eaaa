package insights

import (
	"fmt"

	"github.com/etnz/moneymind"
	"github.com/etnz/moneymind/date"
	"github.com/etnz/moneymind/renderer"
	"google.golang.org/genai"
)

// report is a read only view of the ledger the model can ask for.
type report struct {
	name        string
	description string
	render      func() string
}

// reports are the views offered to the model.
type reports []report

// ledgerReports renders d for the month of on.
func ledgerReports(d *moneymind.UserData, on date.Date) reports {
	return reports{
		{"get_accounts", "Lists the user accounts and their balances.", func() string {
			return renderer.Accounts(d)
		}},
		{"get_budgets", "Lists the spending of each category against its budget.", func() string {
			return renderer.Budgets(d.Budgets(), d.Currency())
		}},
		{"get_goals", "Lists the savings goals and their progress.", func() string {
			return renderer.Goals(d.GoalsProgress(), d.Currency())
		}},
		{"get_month_transactions", "Lists the transactions of the current month.", func() string {
			return renderer.Transactions("Transactions", d, d.Between(date.Month(on)))
		}},
	}
}

// declarations describes the reports as parameterless functions returning
// markdown.
func (rs reports) declarations() []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(rs))
	for _, r := range rs {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        r.name,
			Description: r.description,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report.",
			},
		})
	}
	return decls
}

// answer renders the report named by call, or an error response the model
// can read.
func (rs reports) answer(call *genai.FunctionCall) *genai.FunctionResponse {
	resp := &genai.FunctionResponse{ID: call.ID, Name: call.Name}
	for _, r := range rs {
		if r.name == call.Name {
			resp.Response = map[string]any{"output": r.render()}
			return resp
		}
	}
	resp.Response = map[string]any{"error": fmt.Sprintf("no report named %s", call.Name)}
	return resp
}
