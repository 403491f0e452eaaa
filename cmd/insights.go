package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneymind"
	"github.com/etnz/moneymind/insights"
	"github.com/etnz/moneymind/session"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type insightsCmd struct {
	date   string
	chat   bool
	model  string
	prompt bool
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "ask Gemini for advice on your spending" }
func (*insightsCmd) Usage() string {
	return `mm insights [-d <date>] [-chat] [-model <model>] [-prompt]

  Sends a summary of the month and of the budgets to a Gemini model and prints
  its suggestions. The model can read the accounts, budgets, goals and the
  transactions of the month.

  The Gemini client is configured from the environment (GEMINI_API_KEY).
  -chat keeps the conversation open until "bye".
  -prompt prints the summary without calling the model.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "A date in the month to analyze, defaults to today")
	f.BoolVar(&c.chat, "chat", false, "Keep chatting after the first answer")
	f.StringVar(&c.model, "model", insights.DefaultModel, "Gemini model")
	f.BoolVar(&c.prompt, "prompt", false, "Only print the prompt")
}

func (c *insightsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return view(ctx, func(_ *session.Session, d *moneymind.UserData) error {
		question := insights.Prompt(d, on)
		if c.prompt {
			fmt.Fprintln(stdout, question)
			return nil
		}

		client, err := genai.NewClient(ctx, nil)
		if err != nil {
			return fmt.Errorf("initializing Gemini's client: %w", err)
		}
		advisor := insights.NewAdvisor(d, on)
		advisor.ModelName = c.model
		if err := advisor.Start(ctx, client); err != nil {
			return fmt.Errorf("starting chat: %w", err)
		}
		if c.chat {
			return advisor.Run(ctx, stdout, stdin, question)
		}
		answer, err := advisor.Ask(ctx, &genai.Part{Text: question})
		if err != nil {
			return err
		}
		printMarkdown(answer)
		return nil
	})
}
