package commands

import (
	"context"

	"cargo-consolidation/internal/domain/box"
	reqdto "cargo-consolidation/internal/handler/dto/request"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/shared"
)

type BoxCommands interface {
	CreateBoxType(ctx context.Context, req reqdto.CreateBoxTypeRequest) (int64, error)
}

type boxUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewBoxUseCase(uow shared.UnitOfWork) BoxCommands {
	return &boxUseCaseImpl{uow: uow}
}

func (uc *boxUseCaseImpl) CreateBoxType(ctx context.Context, req reqdto.CreateBoxTypeRequest) (int64, error) {
	bt, err := box.NewBoxType(req.Name, req.LengthCM, req.WidthCM, req.HeightCM, req.PricePerKg, req.PricePerBox)
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, cerr := tx.Boxes().Create(ctx, tx.DB(), bt)
		if cerr != nil {
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return errs.Field("name", ErrDuplicateBoxType)
			}
			return cerr
		}
		id = created
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
