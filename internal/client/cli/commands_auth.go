package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/sitekeeper/internal/client/auth"
	"github.com/dmitrijs2005/sitekeeper/internal/client/models"
	"github.com/dmitrijs2005/sitekeeper/internal/common"
)

func (a *App) cmdLogin(ctx context.Context, _ []string) error {
	if a.flow.Registering() {
		if err := a.flow.ToggleRegistering(); err != nil {
			return err
		}
	}

	username, err := a.prompt("Username")
	if err != nil {
		return err
	}
	password, err := getPassword(a.in, a.out)
	if err != nil {
		return err
	}

	return a.submit(ctx, models.RegistrationForm{Username: username, Password: password})
}

func (a *App) cmdRegister(ctx context.Context, _ []string) error {
	if !a.flow.Registering() {
		if err := a.flow.ToggleRegistering(); err != nil {
			return err
		}
	}

	form := models.RegistrationForm{}
	var err error
	if form.Username, err = a.prompt("Username"); err != nil {
		return err
	}
	if form.Password, err = getPassword(a.in, a.out); err != nil {
		return err
	}
	if a.flow.AdminPanel() {
		if form.OrgName, err = a.promptOptional("Organization"); err != nil {
			return err
		}
		if form.AdminName, err = a.promptOptional("Admin name"); err != nil {
			return err
		}
		if form.Email, err = a.promptOptional("Email"); err != nil {
			return err
		}
	}

	return a.submit(ctx, form)
}

// submit hands the form to the flow and follows it into the code step when
// the admin portal asks for one.
func (a *App) submit(ctx context.Context, form models.RegistrationForm) error {
	if err := a.flow.Submit(ctx, form); err != nil {
		return err
	}

	if a.flow.State() == auth.AwaitingTwoFactor {
		acc, _ := a.flow.Pending()
		a.println(a.styles().accent.Render("Verification required") +
			fmt.Sprintf(" for %s. A 6-digit code was sent to %s.", acc.Username, acc.Email))
		return a.cmdCode(ctx, nil)
	}

	a.welcome()
	return nil
}

func (a *App) welcome() {
	s := a.state.Session()
	if s == nil {
		return
	}
	name := s.Name
	if name == "" {
		name = s.ID
	}
	a.println(a.styles().ok.Render("Welcome, "+name) + fmt.Sprintf(" (%s, %s)", s.Role.Label(), s.Organization))
}

func (a *App) cmdPortal(_ context.Context, _ []string) error {
	if err := a.flow.TogglePortal(); err != nil {
		return err
	}
	if a.flow.AdminPanel() {
		a.println("Admin portal selected.")
	} else {
		a.println("Field staff portal selected.")
	}
	return nil
}

// cmdCode collects the whole code: on a terminal with the six-slot screen,
// otherwise as one line.
func (a *App) cmdCode(ctx context.Context, _ []string) error {
	if a.interactive {
		return a.enterCodeInteractive(ctx)
	}

	line, err := a.prompt("Enter 6-digit code")
	if err != nil {
		return err
	}
	digits := []rune(strings.TrimSpace(line))
	if len(digits) > auth.CodeLength {
		return fmt.Errorf("code has %d digits: %w", len(digits), common.ErrIncompleteCode)
	}
	for i, r := range digits {
		if !auth.IsDigit(string(r)) {
			return fmt.Errorf("position %d %q: %w", i+1, r, common.ErrInvalidDigit)
		}
	}
	for i := 0; i < auth.CodeLength; i++ {
		v := ""
		if i < len(digits) {
			v = string(digits[i])
		}
		if err := a.flow.EnterDigit(i, v); err != nil {
			return err
		}
	}
	return a.cmdVerify(ctx, nil)
}

func (a *App) cmdDigit(_ context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: digit <slot 1-6> <0-9>: %w", common.ErrInvalidValue)
	}
	slot, err := parseSlot(args[0])
	if err != nil {
		return err
	}
	v := ""
	if len(args) > 1 {
		v = args[1]
	}
	if err := a.flow.EnterDigit(slot, v); err != nil {
		return err
	}
	a.println(a.renderSlots())
	return nil
}

func (a *App) cmdBackspace(_ context.Context, args []string) error {
	slot := a.flow.Focus()
	if len(args) > 0 {
		var err error
		if slot, err = parseSlot(args[0]); err != nil {
			return err
		}
	}
	if err := a.flow.Backspace(slot); err != nil {
		return err
	}
	a.println(a.renderSlots())
	return nil
}

func (a *App) cmdVerify(ctx context.Context, _ []string) error {
	if err := a.flow.Verify(ctx); err != nil {
		return err
	}
	a.welcome()
	return nil
}

func (a *App) cmdBack(_ context.Context, _ []string) error {
	if err := a.flow.Back(); err != nil {
		return err
	}
	a.println("Back to sign-in.")
	return nil
}

func (a *App) cmdLogout(ctx context.Context, _ []string) error {
	if err := a.flow.SignOut(ctx); err != nil {
		return err
	}
	a.println("Signed out.")
	return nil
}

func (a *App) cmdWhoami(_ context.Context, _ []string) error {
	s := a.state.Session()
	if s == nil {
		return common.ErrInvalidTransition
	}
	st := a.styles()
	a.println(st.title.Render(s.Name))
	a.printf("  id:           %s\n", s.ID)
	a.printf("  role:         %s\n", s.Role.Label())
	a.printf("  email:        %s\n", s.Email)
	a.printf("  organization: %s\n", s.Organization)
	a.printf("  avatar:       %s\n", st.muted.Render(s.Avatar))
	return nil
}

func (a *App) cmdView(_ context.Context, args []string) error {
	if len(args) == 0 {
		a.printf("Active view: %s\n", a.styles().accent.Render(string(a.state.ActiveView())))
		s := a.state.Session()
		var allowed []string
		for _, v := range models.Permissions[s.Role].Views {
			allowed = append(allowed, string(v))
		}
		a.println(a.styles().muted.Render("Available: " + strings.Join(allowed, ", ")))
		return nil
	}

	v, err := models.ParseView(args[0])
	if err != nil {
		return err
	}
	if err := a.state.SetActiveView(v); err != nil {
		return err
	}
	a.printf("Active view: %s\n", a.styles().accent.Render(string(v)))
	return nil
}

// parseSlot converts a 1-based slot argument to an index.
func parseSlot(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > auth.CodeLength {
		return 0, fmt.Errorf("slot %q: %w", s, common.ErrInvalidValue)
	}
	return n - 1, nil
}

// renderSlots draws the code buffer on one line, e.g. [1][2][_][ ][ ][ ].
func (a *App) renderSlots() string {
	var b strings.Builder
	focus := a.flow.Focus()
	for i, d := range a.flow.Slots() {
		switch {
		case d != "":
			b.WriteString("[" + d + "]")
		case i == focus:
			b.WriteString(a.styles().accent.Render("[_]"))
		default:
			b.WriteString("[ ]")
		}
	}
	return b.String()
}
