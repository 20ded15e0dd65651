package currency

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/config"
)

func TestSymbolLookup(t *testing.T) {
	if got := Symbol("USD"); got != "$" {
		t.Fatalf("USD symbol = %q", got)
	}
	if got := Symbol("EUR"); got != "€" {
		t.Fatalf("EUR symbol = %q", got)
	}
	// Unresolved codes render without a symbol, never an error.
	if got := Symbol("ZZZ"); got != "" {
		t.Fatalf("unknown symbol = %q, want empty", got)
	}
}

func TestValidateBuiltinWithoutRemote(t *testing.T) {
	svc := NewService(Params{Config: config.Config{}, Log: zap.NewNop()})
	ctx := context.Background()

	if !svc.Validate(ctx, "USD") {
		t.Fatal("USD should validate")
	}
	if !svc.Validate(ctx, " usd ") {
		t.Fatal("validation should normalize case and whitespace")
	}
	if svc.Validate(ctx, "NOPE") {
		t.Fatal("unknown code should not validate without a remote list")
	}
	if svc.Validate(ctx, "") {
		t.Fatal("empty code should not validate")
	}
}

func TestListDegradesToBuiltin(t *testing.T) {
	svc := NewService(Params{Config: config.Config{}, Log: zap.NewNop()})

	list := svc.List(context.Background())
	if len(list) != len(Builtin()) {
		t.Fatalf("list = %d entries, want builtin %d", len(list), len(Builtin()))
	}
	if list[0].Code != "USD" {
		t.Fatalf("first entry = %+v, want USD", list[0])
	}
}
