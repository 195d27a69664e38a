package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"havenmart/internal/domain/catalog"
	"havenmart/internal/domain/ticket"
	"havenmart/internal/infra"
	"havenmart/internal/pkg/clock"
	"havenmart/internal/pkg/errs"
	"havenmart/internal/pkg/patch"
	"havenmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CooldownError carries the next allowed instant so the handler can
// surface it verbatim. errors.Is(err, errs.ErrEditCooldown) holds.
type CooldownError struct {
	NextAllowedAt time.Time
}

func (e *CooldownError) Error() string {
	return "ticket can be edited again at " + e.NextAllowedAt.UTC().Format(time.RFC3339)
}

func (e *CooldownError) Is(target error) bool {
	return target == errs.ErrEditCooldown
}

type CreateTicketParams struct {
	RequesterID uuid.UUID
	Category    string
	Product     string
	Subject     string
	Inquiry     string
	ImageRef    *string
}

type UpdateTicketParams struct {
	Subject  *string
	Inquiry  *string
	ImageRef *string
}

type TicketCommands interface {
	Create(ctx context.Context, params CreateTicketParams) (*queries.TicketView, error)
	Update(ctx context.Context, actorID, ticketID uuid.UUID, params UpdateTicketParams) (*queries.TicketView, error)
	Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, ticketID uuid.UUID) error
	Reply(ctx context.Context, ticketID uuid.UUID, message string) (*queries.TicketView, error)
}

type ticketCommandsImpl struct {
	ticketRepo  TicketRepository
	ticketReads queries.TicketReadStore
	userRepo    UserRepository
	publisher   EventPublisher
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewTicketCommands(
	ticketRepo TicketRepository,
	ticketReads queries.TicketReadStore,
	userRepo UserRepository,
	publisher EventPublisher,
	db *pgxpool.Pool,
	clock clock.Clock,
) TicketCommands {
	return &ticketCommandsImpl{
		ticketRepo:  ticketRepo,
		ticketReads: ticketReads,
		userRepo:    userRepo,
		publisher:   publisher,
		db:          db,
		clock:       clock,
	}
}

func (t *ticketCommandsImpl) Create(ctx context.Context, params CreateTicketParams) (*queries.TicketView, error) {
	category, err := catalog.NewCategory(params.Category)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	subject, err := ticket.NewSubject(params.Subject)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	inquiry, err := ticket.NewInquiry(params.Inquiry)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	// Name and email are snapshotted onto the ticket so requester renames
	// do not rewrite history.
	requester, err := t.userRepo.FindByID(ctx, params.RequesterID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := ticket.NewTicket(
		params.RequesterID,
		requester.Name,
		requester.Email,
		category,
		params.Product,
		subject,
		inquiry,
		params.ImageRef,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := t.ticketRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return t.readBack(ctx, id)
}

func (t *ticketCommandsImpl) Update(ctx context.Context, actorID, ticketID uuid.UUID, params UpdateTicketParams) (*queries.TicketView, error) {
	view, err := t.ticketReads.FindByID(ctx, ticketID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTicketNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if view.UserID != actorID {
		return nil, errs.ErrTicketForbidden
	}

	// updated_at equals created_at until the first accepted edit, so it
	// is always the cooldown baseline.
	decision := ticket.DecideEdit(t.clock.Now(), view.UpdatedAt)
	if !decision.Allowed {
		return nil, &CooldownError{NextAllowedAt: decision.NextAllowedAt}
	}

	subject, err := ticket.NewSubject(patch.Coalesce(params.Subject, view.Subject))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	inquiry, err := ticket.NewInquiry(patch.Coalesce(params.Inquiry, view.Inquiry))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	imageRef := view.ImageRef
	if params.ImageRef != nil {
		imageRef = params.ImageRef
	}

	if err := t.ticketRepo.Update(ctx, ticketID, subject.Value(), inquiry.Value(), imageRef, t.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return t.readBack(ctx, ticketID)
}

func (t *ticketCommandsImpl) Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, ticketID uuid.UUID) error {
	view, err := t.ticketReads.FindByID(ctx, ticketID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrTicketNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !isAdmin && view.UserID != actorID {
		return errs.ErrTicketForbidden
	}

	if err := t.ticketRepo.Delete(ctx, ticketID); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (t *ticketCommandsImpl) Reply(ctx context.Context, ticketID uuid.UUID, message string) (*queries.TicketView, error) {
	view, err := t.ticketReads.FindByID(ctx, ticketID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTicketNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if message == "" {
		return nil, errs.Mark(ticket.ErrEmptyReply, errs.ErrDomainValidation)
	}

	tx, err := t.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := t.ticketRepo.AppendReply(ctx, tx, ticketID, message); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// The first reply resolves the ticket. Status changes bypass
	// updated_at on purpose: only accepted edits refresh it.
	if err := t.ticketRepo.SetStatus(ctx, tx, ticketID, ticket.StatusResolved); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if pubErr := t.publisher.PublishTicketReplied(ctx, TicketRepliedEvent{
		TicketID:  ticketID,
		UserID:    view.UserID,
		Subject:   view.Subject,
		RepliedAt: t.clock.Now(),
	}); pubErr != nil {
		slog.Warn("failed to publish ticket.replied event", "ticket_id", ticketID, "error", pubErr.Error())
	}

	return t.readBack(ctx, ticketID)
}

func (t *ticketCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.TicketView, error) {
	view, err := t.ticketReads.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
