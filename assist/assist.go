// Package assist turns free-form text like "lunch 250 taka" into a
// structured transaction suggestion using the Gemini API. The model only
// proposes fields; the caller reviews the suggestion and records the real
// transaction through the ledger.
package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// suggestionTypes are the transaction types the model may propose.
// Transfers stay out: moving money between own accounts is not something
// free-form entries describe.
var suggestionTypes = []string{"INCOME", "EXPENSE", "LOAN_GIVEN", "LOAN_RECEIVED"}

// Suggestion is the structured reading of a free-form entry. Amount is an
// exact decimal; Type is one of suggestionTypes. Note and PersonName may be
// empty.
type Suggestion struct {
	Amount     decimal.Decimal
	Type       string
	Category   string
	Note       string
	PersonName string
}

// Parser holds the Gemini client used to read free-form entries.
type Parser struct {
	client *genai.Client
}

// NewParser creates a Parser from an API key (read from GEMINI_API_KEY when
// empty).
func NewParser(ctx context.Context, apiKey string) (*Parser, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("cannot create gemini client: %w", err)
	}
	return &Parser{client: client}, nil
}

// config builds the generation config constraining the model to the
// suggestion schema, with the user's category heads inlined so the model
// picks from them.
func config(incomeHeads, expenseHeads []string) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: fmt.Sprintf(`
			You read one personal finance entry written in casual language and
			extract a single transaction from it.

			Pick the category from these lists, "Other" when nothing fits.
			Income categories: %s.
			Expense categories: %s.

			The amount is in Bangladeshi Taka. Money lent to someone is
			LOAN_GIVEN, money borrowed from someone is LOAN_RECEIVED; report
			the other party as personName. On plain income or expense a
			mentioned person goes into the note instead.
		`, strings.Join(incomeHeads, ", "), strings.Join(expenseHeads, ", "))}}},
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"amount":     {Type: genai.TypeNumber, Description: "The transaction amount, always positive."},
				"type":       {Type: genai.TypeString, Enum: suggestionTypes},
				"category":   {Type: genai.TypeString, Description: "One of the provided category names."},
				"note":       {Type: genai.TypeString, Description: "A short note, optional."},
				"personName": {Type: genai.TypeString, Description: "The other party, optional."},
			},
			Required: []string{"amount", "type", "category"},
		},
	}
}

// Parse asks the model to read one free-form entry.
func (p *Parser) Parse(ctx context.Context, text string, incomeHeads, expenseHeads []string) (Suggestion, error) {
	resp, err := p.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: text}}}},
		config(incomeHeads, expenseHeads))
	if err != nil {
		return Suggestion{}, fmt.Errorf("cannot ask the model: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Suggestion{}, fmt.Errorf("empty response from the model")
	}
	raw := resp.Candidates[0].Content.Parts[0].Text
	log.Debug().Str("raw", raw).Msg("assist model reply")
	return decodeReply(raw)
}

// decodeReply reads the model's JSON reply into a Suggestion. The reply is
// schema-constrained but still treated as untrusted input.
func decodeReply(raw string) (Suggestion, error) {
	var jobj any
	if err := json.Unmarshal([]byte(raw), &jobj); err != nil {
		return Suggestion{}, fmt.Errorf("model reply is not JSON: %w", err)
	}

	amount, err := number(jobj, "$.amount")
	if err != nil {
		return Suggestion{}, err
	}
	if !amount.IsPositive() {
		return Suggestion{}, fmt.Errorf("model suggested a non-positive amount %s", amount)
	}

	kind, err := str(jobj, "$.type")
	if err != nil {
		return Suggestion{}, err
	}
	if !slices.Contains(suggestionTypes, kind) {
		return Suggestion{}, fmt.Errorf("model suggested unknown type %q", kind)
	}
	category, err := str(jobj, "$.category")
	if err != nil {
		return Suggestion{}, err
	}

	s := Suggestion{Amount: amount, Type: kind, Category: category}
	// Optional fields: absence is fine.
	s.Note, _ = str(jobj, "$.note")
	s.PersonName, _ = str(jobj, "$.personName")
	return s, nil
}

// first unwraps jsonpath results that come back as a one-element list.
func first(jval any) any {
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		return jlist[0]
	}
	return jval
}

func str(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("model reply misses %q: %w", path, err)
	}
	s, ok := first(jval).(string)
	if !ok {
		return "", fmt.Errorf("model reply %q is not a string", path)
	}
	return s, nil
}

func number(jobj any, path string) (decimal.Decimal, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("model reply misses %q: %w", path, err)
	}
	switch v := first(jval).(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		// Sometimes the amount comes back quoted.
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("model reply %q is an invalid number %q: %w", path, v, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("model reply %q is not a number but %T", path, v)
	}
}
