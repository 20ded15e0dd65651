// Package session models one open document view: the Final/Customizing
// toggle, the paid and conversion guards, and the theming applied while
// customizing. It holds no storage handles; callers run the persistent
// transitions through the invoice service after the guards pass.
package session

import (
	"context"
	"errors"

	domain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/domain"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/document"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/layout"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/theme"
)

// Mode is the coarse view state.
type Mode string

const (
	// ModeFinal is the read-only summary view with paid/share/print actions.
	ModeFinal Mode = "final"
	// ModeCustomizing shows the full-scale page with theme controls; share
	// and print are unavailable until the user toggles back.
	ModeCustomizing Mode = "customizing"
)

var (
	ErrNotFinal     = errors.New("not_in_final_mode")
	ErrAlreadyPaid  = errors.New("already_paid")
	ErrNotEstimate  = errors.New("not_an_estimate")
	ErrInvalidState = errors.New("invalid_session_state")
)

// Resolver is the theme resolution dependency; failed resolutions must leave
// the current theme untouched.
type Resolver interface {
	Resolve(ctx context.Context, v theme.Variant) (theme.Theme, error)
}

// Session is one open document view.
type Session struct {
	doc      document.Document
	layout   *layout.Layout
	resolver Resolver

	mode    Mode
	paid    bool
	kind    domain.Kind
	variant theme.Variant
	theme   theme.Theme
}

// New opens a session in Final mode with the default variant applied.
func New(doc document.Document, l *layout.Layout, resolver Resolver) (*Session, error) {
	if l == nil || resolver == nil {
		return nil, ErrInvalidState
	}
	defaultTheme, err := resolver.Resolve(context.Background(), theme.DefaultVariant)
	if err != nil {
		return nil, err
	}
	s := &Session{
		doc:      doc,
		layout:   l,
		resolver: resolver,
		mode:     ModeFinal,
		paid:     doc.Paid,
		kind:     doc.Kind,
		variant:  theme.DefaultVariant,
		theme:    defaultTheme,
	}
	s.layout.ApplyTheme(defaultTheme)
	return s, nil
}

func (s *Session) Mode() Mode                  { return s.mode }
func (s *Session) Paid() bool                  { return s.paid }
func (s *Session) Kind() domain.Kind           { return s.kind }
func (s *Session) Variant() theme.Variant      { return s.variant }
func (s *Session) Theme() theme.Theme          { return s.theme }
func (s *Session) Layout() *layout.Layout      { return s.layout }
func (s *Session) Document() document.Document { return s.doc }

// Density returns the page density for the current mode: compact beside the
// summary chrome, full while customizing.
func (s *Session) Density() layout.Density {
	if s.mode == ModeCustomizing {
		return layout.Full
	}
	return layout.Compact
}

// ToggleCustomizing flips between Final and Customizing. The block tree is
// shared; only the density transform changes.
func (s *Session) ToggleCustomizing() {
	if s.mode == ModeFinal {
		s.mode = ModeCustomizing
		return
	}
	s.mode = ModeFinal
}

// CanShare reports whether share/print actions are available.
func (s *Session) CanShare() bool { return s.mode == ModeFinal }

// ApplyVariant resolves and applies a theme variant. On any resolution
// failure, including entitlement refusal, the current variant and theme stay
// exactly as they were.
func (s *Session) ApplyVariant(ctx context.Context, v theme.Variant) error {
	resolved, err := s.resolver.Resolve(ctx, v)
	if err != nil {
		return err
	}
	s.variant = v
	s.theme = resolved
	s.layout.ApplyTheme(resolved)
	return nil
}

// GuardMarkPaid validates the one-way Unpaid -> Paid transition. On nil the
// caller commits through the invoice service and then calls NotePaid.
func (s *Session) GuardMarkPaid(method domain.PaymentMethod) error {
	if s.mode != ModeFinal {
		return ErrNotFinal
	}
	if s.paid {
		return ErrAlreadyPaid
	}
	if !method.Valid() {
		return domain.ErrInvalidPayMethod
	}
	return nil
}

// NotePaid records a committed paid transition in the view state.
func (s *Session) NotePaid() { s.paid = true }

// GuardConvert validates the one-way Estimate -> Invoice transition, which
// is only offered from the Final view.
func (s *Session) GuardConvert() error {
	if s.mode != ModeFinal {
		return ErrNotFinal
	}
	if s.kind != domain.KindEstimate {
		return ErrNotEstimate
	}
	return nil
}

// NoteConverted records a committed conversion. There is no reverse
// operation anywhere in the core.
func (s *Session) NoteConverted() { s.kind = domain.KindInvoice }

// GuardExport validates share/print availability.
func (s *Session) GuardExport() error {
	if s.mode != ModeFinal {
		return ErrNotFinal
	}
	return nil
}
