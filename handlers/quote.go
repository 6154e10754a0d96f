package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	quoteweb "github.com/mmonclus-coder/quote-web"
	"github.com/mmonclus-coder/quote-web/models"
	"github.com/mmonclus-coder/quote-web/quote"
)

//go:embed templates/form.html
var templateFS embed.FS

var formTemplate = template.Must(template.ParseFS(templateFS, "templates/form.html"))

type QuoteHandler interface {
	ShowForm(c echo.Context) error
	Generate(c echo.Context) error
	GetQuote(c echo.Context) error
}

type quoteHandler struct {
	Workflow quoteweb.Workflow
	Reaper   *quoteweb.Reaper
	Logger   *zap.Logger
}

func NewQuoteHandler(workflow quoteweb.Workflow, reaper *quoteweb.Reaper, logger *zap.Logger) QuoteHandler {
	return &quoteHandler{
		Workflow: workflow,
		Reaper:   reaper,
		Logger:   logger,
	}
}

type formData struct {
	Quote *models.Quote
}

// ShowForm serves the submission form. With ?quote_no= it pre-populates the
// form from the stored record for the edit flow.
func (qh *quoteHandler) ShowForm(c echo.Context) error {
	data := formData{}

	if quoteNo := c.QueryParam("quote_no"); quoteNo != "" {
		record, err := qh.Workflow.Lookup(c.Request().Context(), quoteNo)
		if err != nil {
			if errors.Is(err, quote.ErrNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Quote not found"})
			}
			qh.Logger.Error("Failed to load quote for edit", zap.Error(err), zap.String("quote_no", quoteNo))
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load quote"})
		}
		data.Quote = record
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return formTemplate.Execute(c.Response(), data)
}

// Generate accepts the form post, runs the submission workflow, and streams
// the finished document back as an attachment.
func (qh *quoteHandler) Generate(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid form payload"})
	}

	sub := quoteweb.Submission{
		JobNumber:    c.FormValue("job_number"),
		Rep:          c.FormValue("rep"),
		QuoteNo:      c.FormValue("quote_no"),
		Descriptions: form["description[]"],
		Hours:        form["hours[]"],
	}

	result, err := qh.Workflow.Submit(c.Request().Context(), sub)
	if err != nil && !errors.Is(err, quoteweb.ErrSaveFailed) {
		qh.Logger.Error("Failed to generate quote", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate quote"})
	}
	if err != nil {
		// Degraded path: the document exists but the record was not saved.
		// Deliver it anyway, flagged so the user knows to retry the save.
		qh.Logger.Warn("Delivering unrecorded quote", zap.String("quote_no", result.QuoteNo))
		c.Response().Header().Set("X-Quote-Warning", "document generated but not recorded; please retry")
	}

	defer qh.Reaper.Schedule(result.FilePath)
	return c.Attachment(result.FilePath, result.Filename)
}

// GetQuote returns the stored record as JSON for the edit flow.
func (qh *quoteHandler) GetQuote(c echo.Context) error {
	quoteNo := c.Param("quote_no")

	record, err := qh.Workflow.Lookup(c.Request().Context(), quoteNo)
	if err != nil {
		if errors.Is(err, quote.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Quote not found"})
		}
		qh.Logger.Error("Failed to get quote", zap.Error(err), zap.String("quote_no", quoteNo))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get quote"})
	}

	return c.JSON(http.StatusOK, record)
}
