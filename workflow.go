package quoteweb

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mmonclus-coder/quote-web/counter"
	"github.com/mmonclus-coder/quote-web/models"
	"github.com/mmonclus-coder/quote-web/pdf"
	"github.com/mmonclus-coder/quote-web/quote"
)

// Due dates are calendar arithmetic, not wall-clock: 14 days after a
// submission near a DST transition is still 14 calendar days out.
const dueDateDays = 14

type quoteWorkflow struct {
	counter   counter.Service
	quotes    quote.Service
	renderer  Renderer
	unitPrice float64
	logger    *zap.Logger
	now       func() time.Time
}

func NewWorkflow(
	counterService counter.Service,
	quoteService quote.Service,
	renderer Renderer,
	unitPrice float64,
	logger *zap.Logger,
) Workflow {
	return &quoteWorkflow{
		counter:   counterService,
		quotes:    quoteService,
		renderer:  renderer,
		unitPrice: unitPrice,
		logger:    logger,
		now:       time.Now,
	}
}

func (w *quoteWorkflow) Submit(ctx context.Context, sub Submission) (*Result, error) {
	items := models.ParseLineItems(sub.Descriptions, sub.Hours)

	today := w.now()
	submittedOn := mmddyyyy(today)
	dueDate := mmddyyyy(today.AddDate(0, 0, dueDateDays))

	// Edit mode reuses the supplied number verbatim; issuance is bypassed.
	quoteNo := strings.TrimSpace(sub.QuoteNo)
	if quoteNo == "" {
		n, err := w.counter.Issue(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to obtain quote number: %w", err)
		}
		quoteNo = models.FormatQuoteNo(n)
	}

	record := &models.Quote{
		QuoteNo:     quoteNo,
		Rep:         sub.Rep,
		WorkOrder:   sub.JobNumber,
		DueDate:     dueDate,
		SubmittedOn: submittedOn,
		UnitPrice:   w.unitPrice,
		Items:       items,
	}
	record.Total = record.SumTotal()

	path, err := w.renderToTemp(pdf.Document{
		QuoteNo:     quoteNo,
		SubmittedOn: submittedOn,
		WorkOrder:   sub.JobNumber,
		DueDate:     dueDate,
		UnitPrice:   w.unitPrice,
		Items:       items,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		QuoteNo:  quoteNo,
		FilePath: path,
		Filename: fmt.Sprintf("Quote_%s.pdf", quoteNo),
		Total:    record.Total,
	}

	if err := w.quotes.Save(ctx, record); err != nil {
		w.logger.Error("Quote rendered but save failed",
			zap.Error(err), zap.String("quote_no", quoteNo))
		return result, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	w.logger.Info("Quote submitted",
		zap.String("quote_no", quoteNo),
		zap.Int("items", len(items)),
		zap.Float64("total", record.Total))
	return result, nil
}

func (w *quoteWorkflow) Lookup(ctx context.Context, quoteNo string) (*models.Quote, error) {
	return w.quotes.GetByQuoteNo(ctx, strings.TrimSpace(quoteNo))
}

// renderToTemp writes the document to a transient file. The file must be
// fully flushed and closed before it is handed back for delivery.
func (w *quoteWorkflow) renderToTemp(doc pdf.Document) (string, error) {
	f, err := os.CreateTemp("", "quote-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if err := w.renderer.Render(f, doc); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to render quote document: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to finalize quote document: %w", err)
	}
	return f.Name(), nil
}

func mmddyyyy(t time.Time) string {
	return t.Format("01/02/2006")
}
