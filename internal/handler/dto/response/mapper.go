package response

import (
	"strings"
	"time"

	"cargo-consolidation/internal/pkg/errs"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Decimals render as strings with at least two decimal places, so money reads
// "1814.64" while small box volumes keep their precision ("0.009").
// time.Time copied into a string field renders as a calendar date. The copy
// is shallow so time.Time and pointer fields are assigned as they are.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return DecimalString(src.(decimal.Decimal)), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(time.DateOnly), nil
			},
		},
	},
}

func DecimalString(d decimal.Decimal) string {
	s := d.String()
	if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 >= 2 {
		return s
	}
	return d.StringFixed(2)
}

// mapInto copies src onto a new T.
func mapInto[T any](src any) (*T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copyOption); err != nil {
		return nil, errs.Wrap(err, "map response")
	}
	return &dst, nil
}

func mapList[T any, S any](src []S) ([]*T, error) {
	out := make([]*T, len(src))
	for i := range src {
		res, err := mapInto[T](src[i])
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}
