package quote

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"

	"github.com/mmonclus-coder/quote-web/models"
)

// memRepository is an in-memory stand-in for the pgx-backed repository. It
// deep-copies records on the way in and out, like a round trip through the
// database would.
type memRepository struct {
	records   map[string]models.Quote
	upsertErr error
	cached    []string
}

func newMemRepository() *memRepository {
	return &memRepository{records: make(map[string]models.Quote)}
}

func (m *memRepository) Upsert(ctx context.Context, tx pgx.Tx, q *models.Quote) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	stored := *q
	stored.Items = append([]models.LineItem(nil), q.Items...)
	m.records[q.QuoteNo] = stored
	return nil
}

func (m *memRepository) Cache(ctx context.Context, q *models.Quote) {
	m.cached = append(m.cached, q.QuoteNo)
}

func (m *memRepository) GetByQuoteNo(ctx context.Context, tx pgx.Tx, quoteNo string) (*models.Quote, error) {
	stored, ok := m.records[quoteNo]
	if !ok {
		return nil, ErrNotFound
	}
	out := stored
	out.Items = append([]models.LineItem(nil), stored.Items...)
	return &out, nil
}

type txManagerMock struct{}

func (m *txManagerMock) ExecuteTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

func TestServiceRoundTrip(t *testing.T) {
	svc := NewService(newMemRepository(), &txManagerMock{})

	record := &models.Quote{
		QuoteNo:     "S005",
		Rep:         "Manny",
		WorkOrder:   "WO-77",
		DueDate:     "09/14/2026",
		SubmittedOn: "08/31/2026",
		UnitPrice:   120,
		Items: []models.LineItem{
			{Description: "Repair pump", EstimatedHours: 3},
			{Description: "Inspection", EstimatedHours: 2.5},
		},
		Total: 660,
	}

	if err := svc.Save(context.Background(), record); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := svc.GetByQuoteNo(context.Background(), "S005")
	if err != nil {
		t.Fatalf("GetByQuoteNo: %v", err)
	}
	if diff := cmp.Diff(record, got); diff != "" {
		t.Errorf("round trip changed the record (-want +got):\n%s", diff)
	}
}

func TestServiceUpsertOverwrites(t *testing.T) {
	svc := NewService(newMemRepository(), &txManagerMock{})
	ctx := context.Background()

	first := &models.Quote{QuoteNo: "S005", Total: 100, Items: []models.LineItem{{Description: "Old work", EstimatedHours: 1}}}
	second := &models.Quote{QuoteNo: "S005", Total: 900, Items: []models.LineItem{{Description: "New work", EstimatedHours: 9}}}

	if err := svc.Save(ctx, first); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := svc.Save(ctx, second); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := svc.GetByQuoteNo(ctx, "S005")
	if err != nil {
		t.Fatalf("GetByQuoteNo: %v", err)
	}
	if diff := cmp.Diff(second, got); diff != "" {
		t.Errorf("second save must fully overwrite the first (-want +got):\n%s", diff)
	}
}

func TestServiceSaveRefreshesCacheAfterCommit(t *testing.T) {
	repo := newMemRepository()
	svc := NewService(repo, &txManagerMock{})

	record := &models.Quote{QuoteNo: "S012", Total: 240}
	if err := svc.Save(context.Background(), record); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if diff := cmp.Diff([]string{"S012"}, repo.cached); diff != "" {
		t.Errorf("cache refresh after commit (-want +got):\n%s", diff)
	}
}

func TestServiceSaveSkipsCacheOnFailure(t *testing.T) {
	repo := newMemRepository()
	repo.upsertErr = errors.New("deadlock detected")
	svc := NewService(repo, &txManagerMock{})

	if err := svc.Save(context.Background(), &models.Quote{QuoteNo: "S013"}); err == nil {
		t.Fatal("Save should surface the upsert error")
	}
	if len(repo.cached) != 0 {
		t.Errorf("a failed save must not touch the cache, cached %v", repo.cached)
	}
}

func TestServiceGetNotFound(t *testing.T) {
	svc := NewService(newMemRepository(), &txManagerMock{})

	if _, err := svc.GetByQuoteNo(context.Background(), "S999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
