package quoteweb

import (
	"context"
	"errors"
	"io"

	"github.com/mmonclus-coder/quote-web/models"
	"github.com/mmonclus-coder/quote-web/pdf"
)

// ErrSaveFailed reports that the document was rendered but the record could
// not be persisted. The result still carries the rendered file so the caller
// can deliver it with a warning; the condition is never silent.
var ErrSaveFailed = errors.New("quote rendered but not recorded")

// Submission is the raw form input. Descriptions and Hours are parallel;
// a non-empty QuoteNo switches to edit mode and bypasses numbering.
type Submission struct {
	JobNumber    string
	Rep          string
	QuoteNo      string
	Descriptions []string
	Hours        []string
}

// Result describes a finished submission: the issued (or reused) quote
// number and the rendered document waiting on disk.
type Result struct {
	QuoteNo  string
	FilePath string
	Filename string
	Total    float64
}

// Renderer produces the finished document for a submission.
type Renderer interface {
	Render(w io.Writer, doc pdf.Document) error
}

// Workflow orchestrates a quote submission end to end: parse the form,
// obtain or reuse a quote number, render the document, persist the record.
type Workflow interface {
	Submit(ctx context.Context, sub Submission) (*Result, error)
	Lookup(ctx context.Context, quoteNo string) (*models.Quote, error)
}
