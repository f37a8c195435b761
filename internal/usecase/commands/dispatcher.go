package commands

import (
	"context"
	"log/slog"

	"cargo-consolidation/internal/domain/notification"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNoSender = errs.New("no sender configured for channel")

type DispatchRequest struct {
	Channel   notification.Channel
	Recipient string
	Template  string
	Vars      map[string]string
	BookingID *uuid.UUID
}

// NotificationDispatcher renders a stored template and delivers it. Every
// attempt is logged, and the delivery error is returned to the caller.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, req DispatchRequest) error
}

type dispatcherImpl struct {
	uow     shared.UnitOfWork
	senders ChannelSenders
	clock   clock.Clock
	logger  *slog.Logger
}

func NewNotificationDispatcher(uow shared.UnitOfWork, senders ChannelSenders, clk clock.Clock, logger *slog.Logger) NotificationDispatcher {
	return &dispatcherImpl{
		uow:     uow,
		senders: senders,
		clock:   clk,
		logger:  logger.With("component", "dispatcher"),
	}
}

func (d *dispatcherImpl) Dispatch(ctx context.Context, req DispatchRequest) error {
	msg := notification.Message{Channel: req.Channel, Recipient: req.Recipient}
	sendErr := d.renderAndSend(ctx, req, &msg)

	entry := notification.NewLogEntry(msg, req.Template, req.Vars, req.BookingID, sendErr, d.clock.Now())
	logErr := d.appendLog(ctx, entry)
	if logErr != nil {
		d.logger.ErrorContext(ctx, "failed to append notification log",
			"template", req.Template, "recipient", req.Recipient, "error", logErr)
	}

	if sendErr != nil {
		d.logger.WarnContext(ctx, "notification failed",
			"channel", req.Channel, "template", req.Template, "recipient", req.Recipient, "error", sendErr)
		return sendErr
	}
	d.logger.InfoContext(ctx, "notification sent",
		"channel", req.Channel, "template", req.Template, "recipient", req.Recipient)
	return nil
}

// appendLog survives cancellation of ctx so an attempt interrupted by
// shutdown is still audited.
func (d *dispatcherImpl) appendLog(ctx context.Context, entry notification.LogEntry) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), outcomeWriteTimeout)
	defer cancel()
	return d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().AppendLog(ctx, tx.DB(), entry)
	})
}

func (d *dispatcherImpl) renderAndSend(ctx context.Context, req DispatchRequest, msg *notification.Message) error {
	tmpl, err := d.uow.CommandReads().TemplateByName(ctx, req.Template)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrTemplateNotFound)
		}
		return err
	}
	if err := tmpl.CheckUsable(req.Channel); err != nil {
		return err
	}
	*msg = tmpl.Render(req.Recipient, req.Vars)

	sender := d.senders.For(req.Channel)
	if sender == nil {
		return errs.Wrap(ErrNoSender, string(req.Channel))
	}
	return sender.Send(ctx, *msg)
}
