// Package auth implements the sign-in state machine of the console: admin
// and field portals, registration, and the six-slot two-factor step.
//
// The two-factor step accepts any six numerals. No code is issued or checked.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sitekeeper/internal/client/models"
	"github.com/dmitrijs2005/sitekeeper/internal/client/services"
	"github.com/dmitrijs2005/sitekeeper/internal/common"
	"github.com/dmitrijs2005/sitekeeper/internal/logging"
)

// CodeLength is the number of two-factor slots.
const CodeLength = 6

type State int

const (
	LoggedOut State = iota
	AwaitingTwoFactor
	LoggedIn
)

func (s State) String() string {
	switch s {
	case LoggedOut:
		return "logged out"
	case AwaitingTwoFactor:
		return "awaiting two-factor"
	case LoggedIn:
		return "logged in"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// SessionSink receives the session produced by a successful sign-in, and nil
// on sign-out. *services.State implements it.
type SessionSink interface {
	SetSession(*models.Session)
}

// Flow is the sign-in state machine. It is not safe for concurrent use.
type Flow struct {
	dir  services.Directory
	sink SessionSink
	log  logging.Logger

	state       State
	adminPanel  bool
	registering bool

	pending *models.Account
	slots   [CodeLength]string
	focus   int

	err error
}

// NewFlow starts signed out on the admin portal's sign-in form.
func NewFlow(dir services.Directory, sink SessionSink, log logging.Logger) *Flow {
	return &Flow{
		dir:        dir,
		sink:       sink,
		log:        log,
		state:      LoggedOut,
		adminPanel: true,
	}
}

func (f *Flow) State() State { return f.state }

// AdminPanel reports whether the admin portal (rather than the field
// portal) is selected.
func (f *Flow) AdminPanel() bool { return f.adminPanel }

func (f *Flow) Registering() bool { return f.registering }

// Err is the last error shown on the current form, or nil.
func (f *Flow) Err() error { return f.err }

// Pending is the account awaiting two-factor confirmation.
func (f *Flow) Pending() (models.Account, bool) {
	if f.pending == nil {
		return models.Account{}, false
	}
	return *f.pending, true
}

// Slots returns the two-factor entry buffer.
func (f *Flow) Slots() [CodeLength]string { return f.slots }

// Focus is the slot that receives the next keystroke.
func (f *Flow) Focus() int { return f.focus }

// Submit handles the sign-in or registration form for the selected portal.
// The password is wiped before returning; it is never stored or compared.
func (f *Flow) Submit(ctx context.Context, form models.RegistrationForm) error {
	defer common.WipeByteArray(form.Password)

	if f.state != LoggedOut {
		return f.wrongState("submit")
	}
	f.err = nil

	form.Username = strings.TrimSpace(form.Username)
	if form.Username == "" {
		return f.fail(fmt.Errorf("username is required: %w", common.ErrInvalidValue))
	}

	if f.registering {
		return f.register(ctx, form)
	}
	if f.adminPanel {
		return f.adminLogin(ctx, form.Username)
	}
	return f.staffLogin(ctx, form.Username)
}

func (f *Flow) register(ctx context.Context, form models.RegistrationForm) error {
	role := models.RoleSiteSupervisor
	if f.adminPanel {
		role = models.RoleSuperAdmin
	}
	acc := models.NewAccount(form, role)

	if err := f.dir.Upsert(ctx, acc); err != nil {
		return f.fail(fmt.Errorf("register %s: %w", acc.Username, err))
	}
	f.log.Info(ctx, "account registered", "username", acc.Username, "role", acc.Role)

	if f.adminPanel {
		f.challenge(acc)
		return nil
	}
	f.finalize(ctx, acc)
	return nil
}

func (f *Flow) adminLogin(ctx context.Context, username string) error {
	acc, found, err := f.dir.FindByUsername(ctx, username)
	if err != nil {
		return f.fail(fmt.Errorf("look up %s: %w", username, err))
	}
	if !found || !acc.Role.IsAdmin() {
		f.log.Info(ctx, "admin sign-in refused", "username", username)
		return f.fail(common.ErrInvalidCredentials)
	}
	f.challenge(acc)
	return nil
}

func (f *Flow) staffLogin(ctx context.Context, username string) error {
	acc, found, err := f.dir.FindByUsername(ctx, username)
	if err != nil {
		return f.fail(fmt.Errorf("look up %s: %w", username, err))
	}
	if !found {
		acc = models.TransientStaffAccount(username)
	}
	f.finalize(ctx, acc)
	return nil
}

// EnterDigit types value into slot. An empty value clears the slot; anything
// other than a single numeral is refused with common.ErrInvalidDigit and
// changes nothing. A digit in any slot but the last moves focus forward.
func (f *Flow) EnterDigit(slot int, value string) error {
	if f.state != AwaitingTwoFactor {
		return f.wrongState("enter digit")
	}
	if slot < 0 || slot >= CodeLength {
		return fmt.Errorf("slot %d: %w", slot, common.ErrInvalidValue)
	}

	if value == "" {
		f.slots[slot] = ""
		f.focus = slot
		return nil
	}
	if !IsDigit(value) {
		return fmt.Errorf("slot %d %q: %w", slot, value, common.ErrInvalidDigit)
	}

	f.slots[slot] = value
	f.focus = slot
	if slot < CodeLength-1 {
		f.focus = slot + 1
	}
	return nil
}

// IsDigit reports whether value is a single numeral 0-9.
func IsDigit(value string) bool {
	return len(value) == 1 && value[0] >= '0' && value[0] <= '9'
}

// Backspace clears a filled slot, or moves focus back from an empty one.
func (f *Flow) Backspace(slot int) error {
	if f.state != AwaitingTwoFactor {
		return f.wrongState("backspace")
	}
	if slot < 0 || slot >= CodeLength {
		return fmt.Errorf("slot %d: %w", slot, common.ErrInvalidValue)
	}

	if f.slots[slot] != "" {
		f.slots[slot] = ""
		f.focus = slot
		return nil
	}
	if slot > 0 {
		f.focus = slot - 1
	}
	return nil
}

// Verify completes sign-in once every slot holds a numeral.
func (f *Flow) Verify(ctx context.Context) error {
	if f.state != AwaitingTwoFactor {
		return f.wrongState("verify")
	}
	for _, d := range f.slots {
		if d == "" {
			return f.fail(common.ErrIncompleteCode)
		}
	}
	f.finalize(ctx, *f.pending)
	return nil
}

// Back abandons the two-factor step and returns to the form.
func (f *Flow) Back() error {
	if f.state != AwaitingTwoFactor {
		return f.wrongState("back")
	}
	f.state = LoggedOut
	f.resetChallenge()
	f.err = nil
	return nil
}

// TogglePortal switches between the admin and field portals and always
// lands on the sign-in form.
func (f *Flow) TogglePortal() error {
	if f.state != LoggedOut {
		return f.wrongState("toggle portal")
	}
	f.adminPanel = !f.adminPanel
	f.registering = false
	f.err = nil
	return nil
}

// ToggleRegistering switches between the sign-in and registration forms.
func (f *Flow) ToggleRegistering() error {
	if f.state != LoggedOut {
		return f.wrongState("toggle registration")
	}
	f.registering = !f.registering
	f.err = nil
	return nil
}

func (f *Flow) SignOut(ctx context.Context) error {
	if f.state != LoggedIn {
		return f.wrongState("sign out")
	}
	f.sink.SetSession(nil)
	f.state = LoggedOut
	f.err = nil
	f.log.Info(ctx, "signed out")
	return nil
}

func (f *Flow) challenge(acc models.Account) {
	f.resetChallenge()
	f.pending = &acc
	f.state = AwaitingTwoFactor
}

func (f *Flow) finalize(ctx context.Context, acc models.Account) {
	f.sink.SetSession(models.NewSession(acc))
	f.resetChallenge()
	f.state = LoggedIn
	f.err = nil
	f.log.Info(ctx, "signed in", "username", acc.Username, "role", acc.Role)
}

func (f *Flow) resetChallenge() {
	f.pending = nil
	f.slots = [CodeLength]string{}
	f.focus = 0
}

func (f *Flow) fail(err error) error {
	f.err = err
	return err
}

func (f *Flow) wrongState(op string) error {
	return fmt.Errorf("%s while %s: %w", op, f.state, common.ErrInvalidTransition)
}
