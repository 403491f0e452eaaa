package insights

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/moneymind"
	"github.com/etnz/moneymind/date"
	"github.com/etnz/moneymind/logger"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is set.
const DefaultModel = "gemini-2.5-flash"

// maxRounds bounds the report requests answered for a single question.
const maxRounds = 8

// Advisor is a chat with a model that can read the user data.
type Advisor struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	reports   reports
	chat      *genai.Chat
}

// NewAdvisor creates an advisor over d for the month of on.
func NewAdvisor(d *moneymind.UserData, on date.Date) *Advisor {
	rs := ledgerReports(d, on)
	return &Advisor{
		ModelName: DefaultModel,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: rs.declarations()},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a friendly personal finance coach.
			Use the Tools to read the user accounts, budgets, goals and transactions when you need details.
			Answer in short markdown, with concrete amounts. Never invent transactions.
			`}}},
		},
		reports: rs,
	}
}

// Start opens the chat.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, a.ModelName, a.Config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends parts to the model and renders the reports it requests until it
// responds with text.
func (a *Advisor) Ask(ctx context.Context, parts ...*genai.Part) (string, error) {
	if a.chat == nil {
		return "", errors.New("advisor not started")
	}
	log := logger.FromContext(ctx)
	for round := 0; round < maxRounds; round++ {
		resp, err := a.chat.Send(ctx, parts...)
		if err != nil {
			return "", err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			return "", errors.New("no response from the model")
		}
		parts = nil
		for _, p := range resp.Candidates[0].Content.Parts {
			if p.FunctionCall == nil {
				continue
			}
			log.Debug().Str("report", p.FunctionCall.Name).Int("round", round).Msg("model requested a report")
			parts = append(parts, &genai.Part{FunctionResponse: a.reports.answer(p.FunctionCall)})
		}
		if len(parts) == 0 {
			return resp.Text(), nil
		}
	}
	return "", fmt.Errorf("no answer after %d rounds of reports", maxRounds)
}

const prompt = "insights> "

// Run asks the first question then chats with the user until "bye" or the
// end of r.
func (a *Advisor) Run(ctx context.Context, w io.Writer, r io.Reader, first string) error {
	in := bufio.NewReader(r)
	input := first
	for {
		if strings.TrimSpace(input) == "bye" {
			return nil
		}
		if strings.TrimSpace(input) != "" {
			answer, err := a.Ask(ctx, &genai.Part{Text: input})
			if err != nil {
				return err
			}
			fmt.Fprintln(w, answer)
		}
		fmt.Fprint(w, prompt)
		var err error
		input, err = in.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
