package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	clientdomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/client/domain"
	clientrepo "github.com/WotanCode88/Estimate-Invoice-Pro/internal/client/repository"
	clientservice "github.com/WotanCode88/Estimate-Invoice-Pro/internal/client/service"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/clock"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/config"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/currency"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/events"
	domain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/domain"
	invoicerepo "github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/repository"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/migration"
)

func setupService(t *testing.T) (domain.Service, clientdomain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := migration.Run(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatal(err)
	}

	log := zap.NewNop()
	clients := clientservice.NewService(clientservice.Params{
		DB: db, Log: log, GenID: node, Repo: clientrepo.Provide(),
	})
	currencies := currency.NewService(currency.Params{
		Config: config.Config{},
		Log:    log,
	})
	svc := NewService(Params{
		DB:         db,
		Log:        log,
		GenID:      node,
		Clock:      clock.SystemClock{},
		Repo:       invoicerepo.Provide(),
		Clients:    clients,
		Currencies: currencies,
		Outbox:     events.NewOutbox(db, node),
	})
	return svc, clients, db
}

func validCreate(kind domain.Kind) domain.CreateRequest {
	return domain.CreateRequest{
		Kind:     kind,
		Currency: "USD",
		Items: []domain.LineItemInput{
			{Name: "Design", Price: 100, Quantity: 2, Discount: 10, Tax: 5},
		},
	}
}

func TestCreateAssignsSequentialNumbers(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		resp, err := svc.Create(ctx, validCreate(domain.KindInvoice))
		if err != nil {
			t.Fatalf("create %d: %v", want, err)
		}
		if resp.Number != want {
			t.Fatalf("number = %d, want %d", resp.Number, want)
		}
	}
}

func TestNumbersStayMonotonicAfterMiddleDelete(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := svc.Create(ctx, validCreate(domain.KindInvoice))
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, resp.ID)
	}

	// Deleting a non-latest document must not free its number; the next
	// create takes one past the highest surviving number.
	if err := svc.Delete(ctx, ids[1]); err != nil {
		t.Fatalf("delete: %v", err)
	}

	resp, err := svc.Create(ctx, validCreate(domain.KindInvoice))
	if err != nil {
		t.Fatalf("create after delete: %v", err)
	}
	if resp.Number != 4 {
		t.Fatalf("number = %d, want 4", resp.Number)
	}
}

func TestCreateComputesTotal(t *testing.T) {
	svc, _, _ := setupService(t)

	resp, err := svc.Create(context.Background(), validCreate(domain.KindInvoice))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.Total != 189 {
		t.Fatalf("total = %v, want 189", resp.Total)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	req := validCreate(domain.KindInvoice)
	req.Kind = "RECEIPT"
	if _, err := svc.Create(ctx, req); !errors.Is(err, domain.ErrInvalidKind) {
		t.Fatalf("bad kind err = %v", err)
	}

	req = validCreate(domain.KindInvoice)
	req.Items = nil
	if _, err := svc.Create(ctx, req); !errors.Is(err, domain.ErrNoLineItems) {
		t.Fatalf("no items err = %v", err)
	}

	req = validCreate(domain.KindInvoice)
	req.Items[0].Quantity = 0
	if _, err := svc.Create(ctx, req); !errors.Is(err, domain.ErrInvalidLineItem) {
		t.Fatalf("bad item err = %v", err)
	}

	req = validCreate(domain.KindInvoice)
	req.Currency = "NOPE"
	if _, err := svc.Create(ctx, req); !errors.Is(err, domain.ErrInvalidCurrency) {
		t.Fatalf("bad currency err = %v", err)
	}

	req = validCreate(domain.KindInvoice)
	req.ClientID = "999999999999999999"
	if _, err := svc.Create(ctx, req); !errors.Is(err, clientdomain.ErrClientNotFound) {
		t.Fatalf("missing client err = %v", err)
	}
}

func TestGetByIDRecomputesStaleTotal(t *testing.T) {
	svc, _, db := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate(domain.KindInvoice))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Corrupt the cached display total directly in storage.
	if err := db.Exec("UPDATE invoices SET total = 999").Error; err != nil {
		t.Fatal(err)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Total != 189 {
		t.Fatalf("total = %v, want recomputed 189", got.Total)
	}
}

func TestMarkPaidIsOneWay(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate(domain.KindInvoice))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.MarkPaid(ctx, created.ID, "Barter"); !errors.Is(err, domain.ErrInvalidPayMethod) {
		t.Fatalf("bad method err = %v", err)
	}

	paid, err := svc.MarkPaid(ctx, created.ID, domain.PayMethodBank)
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if !paid.Paid || paid.PayMethod != "Bank" || paid.PaidAt == nil {
		t.Fatalf("paid response = %+v", paid)
	}

	if _, err := svc.MarkPaid(ctx, created.ID, domain.PayMethodCash); !errors.Is(err, domain.ErrAlreadyPaid) {
		t.Fatalf("second mark paid err = %v, want ErrAlreadyPaid", err)
	}
}

func TestConvertEstimateIsIrreversible(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate(domain.KindEstimate))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	converted, err := svc.ConvertToInvoice(ctx, created.ID)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if converted.Kind != domain.KindInvoice {
		t.Fatalf("kind = %v after conversion", converted.Kind)
	}

	stored, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Kind != domain.KindInvoice {
		t.Fatalf("stored kind = %v, want INVOICE", stored.Kind)
	}

	if _, err := svc.ConvertToInvoice(ctx, created.ID); !errors.Is(err, domain.ErrNotEstimate) {
		t.Fatalf("second convert err = %v, want ErrNotEstimate", err)
	}
}

func TestConvertPlainInvoiceFails(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate(domain.KindInvoice))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.ConvertToInvoice(ctx, created.ID); !errors.Is(err, domain.ErrNotEstimate) {
		t.Fatalf("convert invoice err = %v, want ErrNotEstimate", err)
	}
}

func TestDeleteRemovesInvoice(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate(domain.KindInvoice))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, domain.ErrInvoiceNotFound) {
		t.Fatalf("get deleted err = %v, want ErrInvoiceNotFound", err)
	}
}

func TestCreateWithClientAndListFilters(t *testing.T) {
	svc, clients, _ := setupService(t)
	ctx := context.Background()

	client, err := clients.Create(ctx, clientdomain.CreateRequest{Name: "Globex"})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	req := validCreate(domain.KindInvoice)
	req.ClientID = client.ID
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if _, err := svc.Create(ctx, validCreate(domain.KindEstimate)); err != nil {
		t.Fatalf("create estimate: %v", err)
	}

	estimates, err := svc.List(ctx, domain.ListRequest{Kind: domain.KindEstimate})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(estimates.Invoices) != 1 || estimates.Invoices[0].Kind != domain.KindEstimate {
		t.Fatalf("estimate filter returned %+v", estimates.Invoices)
	}

	all, err := svc.List(ctx, domain.ListRequest{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if all.TotalSize != 2 {
		t.Fatalf("total size = %d, want 2", all.TotalSize)
	}
}
