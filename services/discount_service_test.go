package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/repository"
)

func TestDiscountEvaluate(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiscountService(repository.NewDiscountRepository(db))
	now := time.Now()

	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	require.NoError(t, db.Create(&entity.Discount{
		Code: "TENOFF", DiscountType: "percent", Value: 10, Active: true,
	}).Error)
	require.NoError(t, db.Create(&entity.Discount{
		Code: "FIVER", DiscountType: "fixed", Value: 500, MinOrder: 1500, Active: true,
	}).Error)
	require.NoError(t, db.Create(&entity.Discount{
		Code: "GONE", DiscountType: "fixed", Value: 100, Active: true, EndAt: &past,
	}).Error)
	require.NoError(t, db.Create(&entity.Discount{
		Code: "SOON", DiscountType: "fixed", Value: 100, Active: true, StartAt: &future,
	}).Error)
	require.NoError(t, db.Create(&entity.Discount{
		Code: "CAPPED", DiscountType: "fixed", Value: 100, Active: true, MaxUses: 1, UsedCount: 1,
	}).Error)
	require.NoError(t, db.Create(&entity.Discount{
		Code: "OFF", DiscountType: "fixed", Value: 100, Active: false,
	}).Error)
	require.NoError(t, db.Create(&entity.Discount{
		Code: "BIGFIX", DiscountType: "fixed", Value: 3000, Active: true,
	}).Error)

	tests := []struct {
		name     string
		code     string
		subtotal int64
		want     int64
		wantErr  error
	}{
		{"percent", "TENOFF", 2000, 200, nil},
		{"percent lowercase code", "tenoff", 2000, 200, nil},
		{"fixed above minimum", "FIVER", 2000, 500, nil},
		{"fixed below minimum", "FIVER", 1000, 0, ErrDiscountMinOrder},
		{"fixed exceeds subtotal is clamped", "BIGFIX", 2000, 2000, nil},
		{"expired", "GONE", 2000, 0, ErrDiscountExpired},
		{"not started", "SOON", 2000, 0, ErrDiscountExpired},
		{"usage cap hit", "CAPPED", 2000, 0, ErrDiscountExhausted},
		{"inactive", "OFF", 2000, 0, ErrDiscountInactive},
		{"unknown", "NOPE", 2000, 0, ErrDiscountNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, amount, err := svc.Evaluate(tt.code, tt.subtotal, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, amount)
		})
	}
}

func TestDiscountCreatedInactiveStaysInactive(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiscountService(repository.NewDiscountRepository(db))

	off := false
	d, err := svc.Create(&DiscountIn{
		Code: "paused", DiscountType: "fixed", Value: 100, Active: &off,
	})
	require.NoError(t, err)
	assert.False(t, d.Active)

	// the false must survive the insert, not be swallowed by a column default
	var stored entity.Discount
	require.NoError(t, db.First(&stored, d.ID).Error)
	assert.False(t, stored.Active)

	_, _, err = svc.Evaluate("PAUSED", 2000, time.Now())
	assert.ErrorIs(t, err, ErrDiscountInactive)
}

func TestDiscountIncrementUsageGuard(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewDiscountRepository(db)

	d := entity.Discount{Code: "ONCE", DiscountType: "fixed", Value: 100, Active: true, MaxUses: 1}
	require.NoError(t, db.Create(&d).Error)

	affected, err := repo.IncrementUsage(db, d.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.IncrementUsage(db, d.ID)
	require.NoError(t, err)
	assert.Zero(t, affected)
}
