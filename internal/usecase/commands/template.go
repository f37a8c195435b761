package commands

import (
	"context"

	"cargo-consolidation/internal/domain/notification"
	reqdto "cargo-consolidation/internal/handler/dto/request"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/repository"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/pkg/patch"
	"cargo-consolidation/internal/usecase/shared"
)

type TemplateCommands interface {
	CreateTemplate(ctx context.Context, req reqdto.CreateTemplateRequest) (int64, error)
	UpdateTemplate(ctx context.Context, id int64, req reqdto.UpdateTemplateRequest) error
	DeleteTemplate(ctx context.Context, id int64) error
}

type templateUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTemplateUseCase(uow shared.UnitOfWork, clk clock.Clock) TemplateCommands {
	return &templateUseCaseImpl{uow: uow, clock: clk}
}

func (uc *templateUseCaseImpl) CreateTemplate(ctx context.Context, req reqdto.CreateTemplateRequest) (int64, error) {
	channel, err := notification.ParseChannel(req.Channel)
	if err != nil {
		return 0, err
	}
	tmpl, err := notification.NewTemplate(req.Name, req.Description, req.Subject, req.Body, channel,
		patch.Coalesce(req.IsActive, true), uc.clock.Now())
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Templates().Create(ctx, tx.DB(), tmpl)
		if err != nil {
			return mapTemplateWriteErr(err)
		}
		id = created
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (uc *templateUseCaseImpl) UpdateTemplate(ctx context.Context, id int64, req reqdto.UpdateTemplateRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tmpl, err := tx.Templates().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrTemplateNotFound)
			}
			return err
		}

		channel := tmpl.Channel()
		if req.Channel != nil {
			if channel, err = notification.ParseChannel(*req.Channel); err != nil {
				return err
			}
		}
		err = tmpl.Update(
			patch.CoalesceTrimmed(req.Name, tmpl.Name()),
			patch.Coalesce(req.Description, tmpl.Description()),
			patch.Coalesce(req.Subject, tmpl.Subject()),
			patch.Coalesce(req.Body, tmpl.Body()),
			channel,
			patch.Coalesce(req.IsActive, tmpl.IsActive()),
			uc.clock.Now(),
		)
		if err != nil {
			return err
		}
		return mapTemplateWriteErr(tx.Templates().Update(ctx, tx.DB(), tmpl))
	})
}

func (uc *templateUseCaseImpl) DeleteTemplate(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Templates().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrTemplateNotFound)
			}
			return err
		}
		return nil
	})
}

func mapTemplateWriteErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintOf(err) == repository.TemplateNameConstraint {
		return errs.Field("name", ErrDuplicateTemplateName)
	}
	return err
}
