// Package agent implements the Gemini-backed assistant behind `wlt assist`.
// The advisor is seeded with the whole wallet content, small enough by nature
// to fit in a single system instruction.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const systemPrompt = `You are a personal finance advisor. The user's complete
wallet is included below as a markdown table: dated records with a category,
an amount, and a description. Income and expense amounts are both recorded
positive; the category tells them apart.

Answer questions about these records: totals, habits, categories, unusual
entries. Be concise. If the wallet does not contain what is asked about, say
so instead of guessing.`

// Advisor is the AI assistant that handles the chat session.
type Advisor struct {
	w    io.Writer
	r    *bufio.Reader
	chat *genai.Chat
}

// New creates a new Advisor writing its answers to w and reading user input
// from r (typically os.Stdout and os.Stdin).
func New(w io.Writer, r io.Reader) *Advisor {
	return &Advisor{w: w, r: bufio.NewReader(r)}
}

// Start creates the chat session, seeding it with the rendered wallet.
func (a *Advisor) Start(ctx context.Context, client *genai.Client, ledger string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{
			{Text: systemPrompt},
			{Text: ledger},
		}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return fmt.Errorf("cannot create chat session: %w", err)
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the advisor's answer.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the advisor")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the advisor. Initial prompts
// are consumed before reading from the user; "bye" or EOF ends the session.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, ledger string, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client, ledger); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to wlt assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
