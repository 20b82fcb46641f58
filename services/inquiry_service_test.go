package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dspstudio/backend/models"
	"github.com/dspstudio/backend/pkg"
)

type fakeInquiryRepo struct {
	inquiries map[string]*models.Inquiry
	nextID    int
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{inquiries: make(map[string]*models.Inquiry)}
}

func (r *fakeInquiryRepo) Create(ctx context.Context, inq *models.Inquiry) error {
	r.nextID++
	inq.ID = "inq-" + string(rune('0'+r.nextID))
	r.inquiries[inq.ID] = inq
	return nil
}

func (r *fakeInquiryRepo) GetByID(ctx context.Context, id string) (*models.Inquiry, error) {
	inq, ok := r.inquiries[id]
	if !ok {
		return nil, pkg.ErrNotFound
	}
	return inq, nil
}

func (r *fakeInquiryRepo) List(ctx context.Context) ([]*models.Inquiry, error) {
	out := make([]*models.Inquiry, 0, len(r.inquiries))
	for _, inq := range r.inquiries {
		out = append(out, inq)
	}
	return out, nil
}

func (r *fakeInquiryRepo) UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	inq, ok := r.inquiries[id]
	if !ok {
		return pkg.ErrNotFound
	}
	inq.Status = status
	return nil
}

func (r *fakeInquiryRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.inquiries[id]; !ok {
		return pkg.ErrNotFound
	}
	delete(r.inquiries, id)
	return nil
}

func (r *fakeInquiryRepo) Count(ctx context.Context) (int, error) {
	return len(r.inquiries), nil
}

func (r *fakeInquiryRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, inq := range r.inquiries {
		counts[string(inq.Status)]++
	}
	return counts, nil
}

func TestInquiryService_CreateStartsAsNew(t *testing.T) {
	repo := newFakeInquiryRepo()
	svc := NewInquiryService(repo, nil, noopActivity{}, nil)

	inq, err := svc.Create(context.Background(), &models.CreateInquiryRequest{
		Name:      "Ananya",
		Email:     "ananya@example.com",
		EventType: "wedding",
		Message:   "Wedding package details please",
	})
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusNew, inq.Status)
	assert.NotEmpty(t, inq.ID)
}

func TestInquiryService_UpdateStatusRejectsUnknown(t *testing.T) {
	repo := newFakeInquiryRepo()
	svc := NewInquiryService(repo, nil, noopActivity{}, nil)

	inq, err := svc.Create(context.Background(), &models.CreateInquiryRequest{
		Name: "Ananya", Email: "ananya@example.com", EventType: "wedding", Message: "hi",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), "user-1", inq.ID, "archived")
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	got, err := svc.UpdateStatus(context.Background(), "user-1", inq.ID, models.InquiryStatusBooked)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusBooked, got.Status)
}

func TestInquiryService_Delete(t *testing.T) {
	repo := newFakeInquiryRepo()
	svc := NewInquiryService(repo, nil, noopActivity{}, nil)

	inq, err := svc.Create(context.Background(), &models.CreateInquiryRequest{
		Name: "Priya", Email: "priya@example.com", EventType: "maternity", Message: "spam",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "user-1", inq.ID))
	_, err = svc.Get(context.Background(), inq.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "user-1", inq.ID), pkg.ErrNotFound)
}
