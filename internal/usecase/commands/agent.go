package commands

import (
	"context"

	"cargo-consolidation/internal/domain/agent"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/shared"

	"github.com/google/uuid"
)

type ApplyAgentRequest struct {
	Name       string
	Email      string
	Phone      string
	Company    string
	Experience string
}

type ReviewApplicationRequest struct {
	Status     string
	AdminNotes string
}

type AgentCommands interface {
	Apply(ctx context.Context, req ApplyAgentRequest) (uuid.UUID, error)
	Review(ctx context.Context, id uuid.UUID, req ReviewApplicationRequest, reviewerID uuid.UUID) error
}

type agentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAgentUseCase(uow shared.UnitOfWork, clk clock.Clock) AgentCommands {
	return &agentUseCaseImpl{uow: uow, clock: clk}
}

func (uc *agentUseCaseImpl) Apply(ctx context.Context, req ApplyAgentRequest) (uuid.UUID, error) {
	app, err := agent.NewApplication(req.Name, req.Email, req.Phone, req.Company, req.Experience, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Agents().Create(ctx, tx.DB(), app)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return app.ID, nil
}

func (uc *agentUseCaseImpl) Review(ctx context.Context, id uuid.UUID, req ReviewApplicationRequest, reviewerID uuid.UUID) error {
	next, err := agent.ParseStatus(req.Status)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		app, err := tx.Agents().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrApplicationNotFound)
			}
			return err
		}
		if err := app.Review(next, reviewerID, req.AdminNotes, uc.clock.Now()); err != nil {
			if errs.Fields(err) != nil {
				return err
			}
			return errs.Mark(err, ErrInvalidTransition)
		}
		return tx.Agents().Save(ctx, tx.DB(), app)
	})
}
