package service

import (
	"context"
	"fmt"
	"strings"

	clientdomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/client/domain"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/clock"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/currency"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/events"
	domain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/domain"
	"github.com/WotanCode88/Estimate-Invoice-Pro/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Clock      clock.Clock
	Repo       domain.Repository
	Clients    clientdomain.Service
	Currencies *currency.Service
	Outbox     *events.Outbox
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	clock      clock.Clock
	repo       domain.Repository
	clients    clientdomain.Service
	currencies *currency.Service
	outbox     *events.Outbox
}

func NewService(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("invoice.service"),
		genID:      p.GenID,
		clock:      p.Clock,
		repo:       p.Repo,
		clients:    p.Clients,
		currencies: p.Currencies,
		outbox:     p.Outbox,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	if req.Kind != domain.KindInvoice && req.Kind != domain.KindEstimate {
		return nil, domain.ErrInvalidKind
	}
	if len(req.Items) == 0 {
		return nil, domain.ErrNoLineItems
	}
	for _, in := range req.Items {
		if err := domain.ValidateLineItem(in); err != nil {
			return nil, err
		}
	}
	code := strings.ToUpper(strings.TrimSpace(req.Currency))
	if !s.currencies.Validate(ctx, code) {
		return nil, domain.ErrInvalidCurrency
	}

	var clientID *snowflake.ID
	if raw := strings.TrimSpace(req.ClientID); raw != "" {
		parsed, err := clientdomain.ParseID(raw)
		if err != nil {
			return nil, err
		}
		record, err := s.clients.GetRecord(ctx, parsed)
		if err != nil {
			return nil, err
		}
		if record == nil {
			return nil, clientdomain.ErrClientNotFound
		}
		clientID = &parsed
	}

	issuedAt := req.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = s.clock.Now()
	}

	inv := &domain.Invoice{
		ID:       s.genID.Generate(),
		Kind:     req.Kind,
		IssuedAt: issuedAt,
		DueAt:    req.DueAt,
		ClientID: clientID,
		Currency: code,
		Photo:    req.Photo,
		Notes:    optional(req.Notes),
	}
	for i, in := range req.Items {
		inv.Items = append(inv.Items, domain.LineItem{
			ID:       s.genID.Generate(),
			Position: i,
			Name:     strings.TrimSpace(in.Name),
			Details:  optional(in.Details),
			UnitType: optional(in.UnitType),
			Price:    in.Price,
			Quantity: in.Quantity,
			Discount: in.Discount,
			Tax:      in.Tax,
		})
	}
	inv.Total = domain.GrandTotal(inv.Items)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Numbers are one past the highest stored number, assigned inside the
		// transaction so concurrent creates cannot race to the same number.
		// A deleted document's number is never reissued while a later one
		// exists, so the unique index on number cannot be violated.
		last, err := s.repo.MaxNumber(ctx, tx)
		if err != nil {
			return err
		}
		inv.Number = last + 1

		if err := s.repo.Insert(ctx, tx, inv); err != nil {
			return err
		}
		return s.outbox.PublishTx(ctx, tx, events.Event{
			DocumentID: inv.ID,
			Type:       events.EventInvoiceCreated,
			Payload: events.DocumentPayload{
				DocumentID: inv.ID.String(),
				Number:     inv.Number,
				Kind:       string(inv.Kind),
			}.ToMap(),
			DedupeKey: fmt.Sprintf("created:%d", inv.Number),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("document created",
		zap.String("document_id", inv.ID.String()),
		zap.Int64("number", inv.Number),
		zap.String("kind", string(inv.Kind)),
	)
	resp := toResponse(inv)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	if req.Kind != "" && req.Kind != domain.KindInvoice && req.Kind != domain.KindEstimate {
		return domain.ListResponse{}, domain.ErrInvalidKind
	}

	offset, limit := req.Offset(), req.Limit()
	invoices, total, err := s.repo.List(ctx, s.db, domain.ListFilter{
		Kind:   req.Kind,
		Paid:   req.Paid,
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return domain.ListResponse{}, err
	}

	resp := domain.ListResponse{
		PageInfo: pagination.PageInfo{
			TotalSize:     total,
			NextPageToken: pagination.NextToken(offset, limit, len(invoices)),
		},
		Invoices: make([]domain.Response, 0, len(invoices)),
	}
	for i := range invoices {
		resp.Invoices = append(resp.Invoices, toResponse(&invoices[i]))
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Response, error) {
	inv, err := s.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(inv)
	return &resp, nil
}

func (s *Service) GetRecord(ctx context.Context, id string) (*domain.Invoice, error) {
	parsed, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	inv, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	return inv, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	inv, err := s.GetRecord(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Delete(ctx, tx, inv.ID); err != nil {
			return err
		}
		return s.outbox.PublishTx(ctx, tx, events.Event{
			DocumentID: inv.ID,
			Type:       events.EventInvoiceDeleted,
			Payload: events.DocumentPayload{
				DocumentID: inv.ID.String(),
				Number:     inv.Number,
				Kind:       string(inv.Kind),
			}.ToMap(),
			DedupeKey: fmt.Sprintf("deleted:%d", inv.Number),
		})
	})
	if err != nil {
		return err
	}

	s.log.Info("document deleted",
		zap.String("document_id", inv.ID.String()),
		zap.Int64("number", inv.Number),
	)
	return nil
}

func (s *Service) MarkPaid(ctx context.Context, id string, method domain.PaymentMethod) (*domain.Response, error) {
	if !method.Valid() {
		return nil, domain.ErrInvalidPayMethod
	}
	inv, err := s.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Paid {
		return nil, domain.ErrAlreadyPaid
	}

	paidAt := s.clock.Now()
	inv.Paid = true
	inv.PayMethod = &method
	inv.PaidAt = &paidAt

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.UpdatePaidStatus(ctx, tx, inv); err != nil {
			return err
		}
		return s.outbox.PublishTx(ctx, tx, events.Event{
			DocumentID: inv.ID,
			Type:       events.EventInvoicePaid,
			Payload: events.DocumentPayload{
				DocumentID: inv.ID.String(),
				Number:     inv.Number,
				Kind:       string(inv.Kind),
			}.ToMap(),
			DedupeKey: fmt.Sprintf("paid:%d", inv.Number),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("document marked paid",
		zap.String("document_id", inv.ID.String()),
		zap.Int64("number", inv.Number),
		zap.String("method", string(method)),
	)
	resp := toResponse(inv)
	return &resp, nil
}

func (s *Service) ConvertToInvoice(ctx context.Context, id string) (*domain.Response, error) {
	inv, err := s.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Kind != domain.KindEstimate {
		return nil, domain.ErrNotEstimate
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.UpdateKind(ctx, tx, inv.ID, domain.KindInvoice); err != nil {
			return err
		}
		return s.outbox.PublishTx(ctx, tx, events.Event{
			DocumentID: inv.ID,
			Type:       events.EventEstimateConverted,
			Payload: events.DocumentPayload{
				DocumentID: inv.ID.String(),
				Number:     inv.Number,
			}.ToMap(),
			DedupeKey: fmt.Sprintf("converted:%d", inv.Number),
		})
	})
	if err != nil {
		return nil, err
	}
	inv.Kind = domain.KindInvoice

	s.log.Info("estimate converted to invoice",
		zap.String("document_id", inv.ID.String()),
		zap.Int64("number", inv.Number),
	)
	resp := toResponse(inv)
	return &resp, nil
}

func toResponse(inv *domain.Invoice) domain.Response {
	resp := domain.Response{
		ID:       inv.ID.String(),
		Number:   inv.Number,
		Kind:     inv.Kind,
		IssuedAt: inv.IssuedAt,
		DueAt:    inv.DueAt,
		Currency: inv.Currency,
		HasPhoto: len(inv.Photo) > 0,
		Notes:    deref(inv.Notes),
		Paid:     inv.Paid,
		PaidAt:   inv.PaidAt,
		// The stored total is a cache; responses always recompute.
		Total:     domain.GrandTotal(inv.Items),
		Items:     make([]domain.LineItemInput, 0, len(inv.Items)),
		CreatedAt: inv.CreatedAt,
	}
	if inv.ClientID != nil {
		resp.ClientID = inv.ClientID.String()
	}
	if inv.PayMethod != nil {
		resp.PayMethod = string(*inv.PayMethod)
	}
	for _, item := range inv.Items {
		resp.Items = append(resp.Items, domain.LineItemInput{
			Name:     item.Name,
			Details:  deref(item.Details),
			UnitType: deref(item.UnitType),
			Price:    item.Price,
			Quantity: item.Quantity,
			Discount: item.Discount,
			Tax:      item.Tax,
		})
	}
	return resp
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
