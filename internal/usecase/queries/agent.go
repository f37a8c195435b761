package queries

import (
	"context"

	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAgentApplicationNotFound = errs.New("agent application not found")

type AgentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AgentApplicationView, error)
	List(ctx context.Context, status string, after *Keyset, limit int32) ([]*AgentApplicationView, error)
}

type AgentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AgentApplicationView, error)
	List(ctx context.Context, status string, cursor *Cursor, limit int) ([]*AgentApplicationView, *Cursor, error)
}

type agentQueriesImpl struct {
	store AgentReadStore
}

func NewAgentQueries(store AgentReadStore) AgentQueries {
	return &agentQueriesImpl{store: store}
}

func (q *agentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AgentApplicationView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAgentApplicationNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *agentQueriesImpl) List(ctx context.Context, status string, cursor *Cursor, limit int) ([]*AgentApplicationView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := DecodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, status, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := Page(rows, limit, func(a *AgentApplicationView) string {
		return EncodeAfterCursor(a.SubmittedAt, a.ID)
	})
	return rows, next, nil
}
