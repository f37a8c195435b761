package uow

import (
	"context"

	"cargo-consolidation/internal/domain/box"
	"cargo-consolidation/internal/domain/notification"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/infra/readstore"
	"cargo-consolidation/internal/usecase/shared"

	"github.com/google/uuid"
)

// commandReads answers the lookups commands need, against the pool or the
// current transaction.
type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	boxStore      *readstore.BoxReadStore
	bookingStore  *readstore.BookingReadStore
	templateStore *readstore.TemplateReadStore
}

func (r *commandReads) BoxTypeByID(ctx context.Context, id int64) (*box.BoxType, error) {
	if r.boxStore == nil {
		r.boxStore = readstore.NewBoxReadStore(r.dbtx)
	}
	v, err := r.boxStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return box.ReconstructBoxType(v.ID, v.Name, v.LengthCM, v.WidthCM, v.HeightCM, v.PricePerKg, v.PricePerBox), nil
}

func (r *commandReads) ReferenceCodeExists(ctx context.Context, code string) (bool, error) {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.dbtx)
	}
	return r.bookingStore.ReferenceCodeExists(ctx, code)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.dbtx)
	}
	v, err := r.bookingStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.BookingSnapshot{
		ID:                 v.ID,
		ReferenceCode:      v.ReferenceCode,
		BoxTypeName:        v.BoxTypeName,
		Quantity:           v.Quantity,
		CustomerName:       v.CustomerName,
		CustomerEmail:      v.CustomerEmail,
		CustomerWhatsApp:   v.CustomerWhatsApp,
		PickupAddress:      v.PickupAddress,
		PickupDate:         v.PickupDate,
		PickupSlot:         v.PickupSlot,
		Volume:             v.Volume,
		Cost:               v.Cost,
		Status:             v.Status,
		NotificationStatus: v.NotificationStatus,
	}, nil
}

func (r *commandReads) TemplateByName(ctx context.Context, name string) (*notification.Template, error) {
	if r.templateStore == nil {
		r.templateStore = readstore.NewTemplateReadStore(r.dbtx)
	}
	v, err := r.templateStore.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return notification.ReconstructTemplate(
		v.ID, v.Name, v.Description, v.Subject, v.Body,
		notification.Channel(v.Channel), v.IsActive, v.CreatedAt, v.UpdatedAt,
	), nil
}
