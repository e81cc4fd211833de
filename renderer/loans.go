package renderer

import "github.com/takatracker/takatracker"

type loansData struct {
	Rows []loanRow
}

type loanRow struct {
	Person      string
	Given       string
	Received    string
	Outstanding string
}

// LoansMarkdown renders the loan book: per person, what was lent, what was
// borrowed, and the outstanding position.
func LoansMarkdown(book []takatracker.PersonLoan) string {
	var data loansData
	for _, p := range book {
		name := p.Person
		if name == "" {
			name = "(unnamed)"
		}
		data.Rows = append(data.Rows, loanRow{
			Person:      name,
			Given:       p.Given.String(),
			Received:    p.Received.String(),
			Outstanding: p.Outstanding().SignedString(),
		})
	}
	return renderTemplate("loans", "loans.md", nil, data)
}
