package agent

import (
	"context"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Reports provides the ledger reports the bookkeeper can consult. The caller
// wires it to the application's data files so the agent package stays free
// of loading concerns.
type Reports interface {
	Balances() (string, error)
	Bookings() (string, error)
	Alerts() (string, error)
	Suggestions() (string, error)
}

// newFacilitator creates the facilitator in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a small tour operator. He is here primarily to understand
			the state of his cash holders, which bookings are paid, and what needs
			his attention today.

			Devise a plan of questions to ask each expert and come up with the best
			response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBookkeeper creates the expert in charge of reading the ledger reports.
func NewBookkeeper(r Reports) *Expert {
	lib := []Function{
		reportFunc("HolderBalances",
			"Per-holder cash positions: confirmed balance per currency, pending in/out, last activity.",
			r.Balances),
		reportFunc("BookingRows",
			"Per-booking reconciliation: revenue, received, remaining, expenses, net, payment status and flags.",
			r.Bookings),
		reportFunc("Alerts",
			"Anomalies needing attention: method mismatches, negative balances, stale pending movements, idle cash.",
			r.Alerts),
		reportFunc("LooseSuggestions",
			"Payments recorded without a booking, with the best matching booking and a confidence score.",
			r.Suggestions),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the tour operator's ledger.
		He can report holder balances, booking reconciliation rows, anomaly alerts and
		loose payment suggestions.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the bookkeeper of a small tour operator.
				You know how to use the Tools to extract information from the ledger:
				  - holder balances
				  - booking reconciliation rows
				  - alerts
				  - loose payment suggestions
				Other experts might ask you questions about the ledger; pardon their
				approximative language and figure out what they meant. Answer with the
				relevant figures, in markdown.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// reportFunc wraps a no-argument report into a callable Function.
func reportFunc(name, description string, report func() (string, error)) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			out, err := report()
			if err != nil {
				return &genai.FunctionResponse{
					ID:   id,
					Name: name,
					Response: map[string]any{
						"error": err.Error(),
					},
				}
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: name,
				Response: map[string]any{
					"output": out,
				},
			}
		},
	}
}
