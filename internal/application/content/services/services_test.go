package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilmpay/ilmpay/internal/application/content/dto"
	"github.com/ilmpay/ilmpay/internal/domain/content"
	apperrors "github.com/ilmpay/ilmpay/internal/shared/errors"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

type testLogger struct{}

func (testLogger) Debug(msg string, args ...any)                   {}
func (testLogger) Info(msg string, args ...any)                    {}
func (testLogger) Warn(msg string, args ...any)                    {}
func (testLogger) Error(msg string, args ...any)                   {}
func (l testLogger) With(args ...any) logger.Interface             { return l }
func (l testLogger) Named(name string) logger.Interface            { return l }
func (testLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (testLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (testLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (testLogger) Errorw(msg string, keysAndValues ...interface{}) {}

// memBenefitRepo is an in-memory content.BenefitRepository.
type memBenefitRepo struct {
	rows   map[uint]*content.Benefit
	nextID uint
}

func newMemBenefitRepo() *memBenefitRepo {
	return &memBenefitRepo{rows: make(map[uint]*content.Benefit), nextID: 1}
}

func (r *memBenefitRepo) Create(ctx context.Context, b *content.Benefit) error {
	if err := b.SetID(r.nextID); err != nil {
		return err
	}
	r.rows[r.nextID] = b
	r.nextID++
	return nil
}

func (r *memBenefitRepo) Update(ctx context.Context, b *content.Benefit) error {
	r.rows[b.ID()] = b
	return nil
}

func (r *memBenefitRepo) GetByID(ctx context.Context, id uint) (*content.Benefit, error) {
	b, ok := r.rows[id]
	if !ok {
		return nil, content.ErrNotFound
	}
	return b, nil
}

func (r *memBenefitRepo) ListActive(ctx context.Context) ([]*content.Benefit, error) {
	var list []*content.Benefit
	for _, b := range r.rows {
		if b.IsActive() {
			list = append(list, b)
		}
	}
	return list, nil
}

func (r *memBenefitRepo) ListActiveByIDs(ctx context.Context, ids []uint) ([]*content.Benefit, error) {
	var list []*content.Benefit
	for _, id := range ids {
		if b, ok := r.rows[id]; ok && b.IsActive() {
			list = append(list, b)
		}
	}
	return list, nil
}

// memFAQRepo is an in-memory content.FAQRepository.
type memFAQRepo struct {
	rows   map[uint]*content.FAQ
	nextID uint
}

func newMemFAQRepo() *memFAQRepo {
	return &memFAQRepo{rows: make(map[uint]*content.FAQ), nextID: 1}
}

func (r *memFAQRepo) Create(ctx context.Context, f *content.FAQ) error {
	if err := f.SetID(r.nextID); err != nil {
		return err
	}
	r.rows[r.nextID] = f
	r.nextID++
	return nil
}

func (r *memFAQRepo) Update(ctx context.Context, f *content.FAQ) error {
	r.rows[f.ID()] = f
	return nil
}

func (r *memFAQRepo) GetByID(ctx context.Context, id uint) (*content.FAQ, error) {
	f, ok := r.rows[id]
	if !ok {
		return nil, content.ErrNotFound
	}
	return f, nil
}

func (r *memFAQRepo) ListActive(ctx context.Context) ([]*content.FAQ, error) {
	var list []*content.FAQ
	for _, f := range r.rows {
		if f.IsActive() {
			list = append(list, f)
		}
	}
	return list, nil
}

func (r *memFAQRepo) ListActiveByIDs(ctx context.Context, ids []uint) ([]*content.FAQ, error) {
	var list []*content.FAQ
	for _, id := range ids {
		if f, ok := r.rows[id]; ok && f.IsActive() {
			list = append(list, f)
		}
	}
	return list, nil
}

// memTestimonialRepo is an in-memory content.TestimonialRepository.
type memTestimonialRepo struct {
	rows   map[uint]*content.Testimonial
	nextID uint
}

func newMemTestimonialRepo() *memTestimonialRepo {
	return &memTestimonialRepo{rows: make(map[uint]*content.Testimonial), nextID: 1}
}

func (r *memTestimonialRepo) Create(ctx context.Context, t *content.Testimonial) error {
	if err := t.SetID(r.nextID); err != nil {
		return err
	}
	r.rows[r.nextID] = t
	r.nextID++
	return nil
}

func (r *memTestimonialRepo) Update(ctx context.Context, t *content.Testimonial) error {
	r.rows[t.ID()] = t
	return nil
}

func (r *memTestimonialRepo) GetByID(ctx context.Context, id uint) (*content.Testimonial, error) {
	t, ok := r.rows[id]
	if !ok {
		return nil, content.ErrNotFound
	}
	return t, nil
}

func (r *memTestimonialRepo) ListActive(ctx context.Context) ([]*content.Testimonial, error) {
	var list []*content.Testimonial
	for _, t := range r.rows {
		if t.IsActive() {
			list = append(list, t)
		}
	}
	return list, nil
}

func (r *memTestimonialRepo) ListActiveByIDs(ctx context.Context, ids []uint) ([]*content.Testimonial, error) {
	var list []*content.Testimonial
	for _, id := range ids {
		if t, ok := r.rows[id]; ok && t.IsActive() {
			list = append(list, t)
		}
	}
	return list, nil
}

func TestBenefitService_CRUDLifecycle(t *testing.T) {
	svc := NewBenefitService(newMemBenefitRepo(), testLogger{})
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateBenefitRequest{
		Title:        "Free lessons",
		Description:  "All content is free",
		DisplayOrder: 1,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, created.Active)

	updated, err := svc.Update(ctx, created.ID, dto.UpdateBenefitRequest{
		Title:        "Free lessons forever",
		Description:  created.Description,
		DisplayOrder: 2,
		Active:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Free lessons forever", updated.Title)

	require.NoError(t, svc.Delete(ctx, created.ID))

	// The soft-deleted row stays fetchable for admin views.
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	list, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBenefitService_NotFound(t *testing.T) {
	svc := NewBenefitService(newMemBenefitRepo(), testLogger{})

	_, err := svc.Get(context.Background(), 42)
	assert.True(t, apperrors.IsNotFoundError(err))

	err = svc.Delete(context.Background(), 42)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestBenefitService_Reorder(t *testing.T) {
	svc := NewBenefitService(newMemBenefitRepo(), testLogger{})
	ctx := context.Background()

	a, err := svc.Create(ctx, dto.CreateBenefitRequest{Title: "A", DisplayOrder: 0})
	require.NoError(t, err)
	b, err := svc.Create(ctx, dto.CreateBenefitRequest{Title: "B", DisplayOrder: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Reorder(ctx, dto.ReorderRequest{IDs: []uint{b.ID, a.ID}}))

	gotA, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	gotB, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, gotB.DisplayOrder)
	assert.Equal(t, 1, gotA.DisplayOrder)

	// Unknown IDs reject the whole reorder.
	err = svc.Reorder(ctx, dto.ReorderRequest{IDs: []uint{a.ID, 99}})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestFAQService_RendersSanitizedMarkdown(t *testing.T) {
	svc := NewFAQService(newMemFAQRepo(), testLogger{})
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateFAQRequest{
		Question: "Is it free?",
		Answer:   "**Yes.** Visit [our site](https://ilmpay.uz).\n\n<script>alert(1)</script>",
	})
	require.NoError(t, err)

	// Raw markdown is preserved for the admin editor.
	assert.Contains(t, created.Answer, "**Yes.**")
	// Rendered HTML keeps formatting but drops scripts.
	assert.Contains(t, created.AnswerHTML, "<strong>Yes.</strong>")
	assert.Contains(t, created.AnswerHTML, "href=")
	assert.NotContains(t, created.AnswerHTML, "<script>")
}

func TestTestimonialService_StripsHTMLFromComments(t *testing.T) {
	svc := NewTestimonialService(newMemTestimonialRepo(), testLogger{})
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateTestimonialRequest{
		Name:    "Aziza",
		Comment: `Great app! <img src=x onerror=alert(1)>`,
		Rating:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Great app! ", created.Comment)
	assert.Equal(t, 5, created.Rating)
}

func TestTestimonialService_RejectsInvalidRating(t *testing.T) {
	svc := NewTestimonialService(newMemTestimonialRepo(), testLogger{})

	_, err := svc.Create(context.Background(), dto.CreateTestimonialRequest{
		Name:    "Aziza",
		Comment: "Great app",
		Rating:  6,
	})
	assert.True(t, apperrors.IsValidationError(err))
}
