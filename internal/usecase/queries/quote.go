package queries

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"cargo-consolidation/internal/domain/quote"
	"cargo-consolidation/internal/pkg/errs"
)

var ErrBoxTypesNotFound = errs.New("BoxType(s) not found")

type QuoteQueries interface {
	Calculate(ctx context.Context, items []QuoteItem) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	boxes BoxReadStore
}

func NewQuoteQueries(boxes BoxReadStore) QuoteQueries {
	return &quoteQueriesImpl{boxes: boxes}
}

func (q *quoteQueriesImpl) Calculate(ctx context.Context, items []QuoteItem) (*QuoteView, error) {
	if len(items) == 0 {
		return nil, errs.Field("boxes", quote.ErrNoItems)
	}

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		if !slices.Contains(ids, it.BoxTypeID) {
			ids = append(ids, it.BoxTypeID)
		}
	}
	found, err := q.boxes.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*BoxTypeView, len(found))
	for _, b := range found {
		byID[b.ID] = b
	}

	var missing []string
	lines := make([]quote.Item, 0, len(items))
	for _, it := range items {
		b, ok := byID[it.BoxTypeID]
		if !ok {
			id := fmt.Sprint(it.BoxTypeID)
			if !slices.Contains(missing, id) {
				missing = append(missing, id)
			}
			continue
		}
		lines = append(lines, quote.Item{BoxVolume: b.Volume, PricePerBox: b.PricePerBox, Quantity: it.Quantity})
	}
	if len(missing) > 0 {
		return nil, errs.Field("boxes", fmt.Errorf("%w: %s", ErrBoxTypesNotFound, strings.Join(missing, ", ")))
	}

	res, err := quote.Calculate(lines)
	if err != nil {
		return nil, err
	}
	return &QuoteView{
		TotalVolume:     res.TotalVolume,
		TotalBoxes:      res.TotalBoxes,
		Subtotal:        res.Subtotal,
		Tier:            res.Tier,
		DiscountPercent: res.DiscountPercent,
		Discount:        res.Discount,
		TotalCost:       res.TotalCost,
	}, nil
}
