package cli

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/dmitrijs2005/sitekeeper/internal/client/auth"
	"github.com/dmitrijs2005/sitekeeper/internal/client/models"
	"github.com/dmitrijs2005/sitekeeper/internal/common"
)

// command is one entry of the console's command table.
type command struct {
	name  string
	usage string
	help  string

	// states the flow must be in; empty means any.
	states []auth.State
	// actions of which the signed-in role needs at least one; empty means
	// no role check.
	actions []models.Action

	run func(ctx context.Context, args []string) error
}

var (
	signedOut = []auth.State{auth.LoggedOut}
	verifying = []auth.State{auth.AwaitingTwoFactor}
	signedIn  = []auth.State{auth.LoggedIn}
)

func (a *App) commands() []command {
	return []command{
		{name: "login", usage: "login", help: "sign in on the selected portal", states: signedOut, run: a.cmdLogin},
		{name: "register", usage: "register", help: "create an account on the selected portal", states: signedOut, run: a.cmdRegister},
		{name: "portal", usage: "portal", help: "switch between the admin and field portals", states: signedOut, run: a.cmdPortal},
		{name: "code", usage: "code", help: "enter the 6-digit verification code", states: verifying, run: a.cmdCode},
		{name: "digit", usage: "digit <slot 1-6> <0-9>", help: "type one digit into a code slot (empty clears it)", states: verifying, run: a.cmdDigit},
		{name: "backspace", usage: "backspace [slot 1-6]", help: "clear a code slot", states: verifying, run: a.cmdBackspace},
		{name: "verify", usage: "verify", help: "submit the verification code", states: verifying, run: a.cmdVerify},
		{name: "back", usage: "back", help: "return to the sign-in form", states: verifying, run: a.cmdBack},
		{name: "logout", usage: "logout", help: "sign out", states: signedIn, run: a.cmdLogout},
		{name: "whoami", usage: "whoami", help: "show the signed-in identity", states: signedIn, run: a.cmdWhoami},
		{name: "view", usage: "view [name]", help: "show or switch the active screen", states: signedIn, run: a.cmdView},

		{name: "projects", usage: "projects [query]", help: "list projects, filtered by name or client", states: signedIn,
			actions: []models.Action{models.ActionManageProjects}, run: a.cmdProjects},
		{name: "addproject", usage: "addproject", help: "create a project", states: signedIn,
			actions: []models.Action{models.ActionManageProjects}, run: a.cmdAddProject},
		{name: "project-status", usage: "project-status <id> <status>", help: "set a project's status", states: signedIn,
			actions: []models.Action{models.ActionManageProjects}, run: a.cmdProjectStatus},
		{name: "progress", usage: "progress <id> <0-100>", help: "set a project's progress", states: signedIn,
			actions: []models.Action{models.ActionManageProjects}, run: a.cmdProgress},

		{name: "staff", usage: "staff [role|ALL] [query]", help: "list field staff", states: signedIn,
			actions: []models.Action{models.ActionManageStaff}, run: a.cmdStaff},
		{name: "addstaff", usage: "addstaff", help: "add a field staff member", states: signedIn,
			actions: []models.Action{models.ActionManageStaff}, run: a.cmdAddStaff},

		{name: "inventory", usage: "inventory", help: "list stock", states: signedIn,
			actions: []models.Action{models.ActionAdjustInventory}, run: a.cmdInventory},
		{name: "adjust", usage: "adjust <id> <IN|OUT> <amount>", help: "record a stock movement", states: signedIn,
			actions: []models.Action{models.ActionAdjustInventory}, run: a.cmdAdjust},
		{name: "lowstock", usage: "lowstock", help: "list items below sufficient level", states: signedIn,
			actions: []models.Action{models.ActionAdjustInventory}, run: a.cmdLowStock},

		{name: "tasks", usage: "tasks [staff-id]", help: "list tasks, optionally for one staff member", states: signedIn,
			actions: []models.Action{models.ActionManageTasks, models.ActionViewAssignedTasks}, run: a.cmdTasks},
		{name: "addtask", usage: "addtask", help: "create a task", states: signedIn,
			actions: []models.Action{models.ActionManageTasks}, run: a.cmdAddTask},
		{name: "task-status", usage: "task-status <id> <status>", help: "set a task's status", states: signedIn,
			actions: []models.Action{models.ActionManageTasks, models.ActionUpdateTaskStatus}, run: a.cmdTaskStatus},

		{name: "audit", usage: "audit", help: "ask for a logistics audit of projects and stock", states: signedIn,
			actions: []models.Action{models.ActionRunAudit}, run: a.cmdAudit},
		{name: "intel", usage: "intel <project-id|location>", help: "site briefing with sources", states: signedIn,
			actions: []models.Action{models.ActionRunAudit}, run: a.cmdIntel},
		{name: "map", usage: "map <project-id|location>", help: "satellite map link for a site", states: signedIn,
			actions: []models.Action{models.ActionViewSiteMap}, run: a.cmdMap},
		{name: "startwork", usage: "startwork", help: "lock your position and start the shift", states: signedIn,
			actions: []models.Action{models.ActionStartWork}, run: a.cmdStartWork},
		{name: "reset", usage: "reset", help: "restore projects, staff, stock and tasks to defaults", states: signedIn,
			actions: []models.Action{models.ActionResetData}, run: a.cmdReset},

		{name: "theme", usage: "theme [light|dark]", help: "show, set or toggle the theme", run: a.cmdTheme},
		{name: "lang", usage: "lang [code]", help: "show, set or toggle the language", run: a.cmdLang},
	}
}

func (a *App) lookup(name string) (command, bool) {
	for _, c := range a.commands() {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// exec runs one command after checking the flow state and the role.
func (a *App) exec(ctx context.Context, name string, args []string) error {
	c, ok := a.lookup(name)
	if !ok {
		return fmt.Errorf("%s: %w", name, errUnknownCommand)
	}

	if len(c.states) > 0 && !slices.Contains(c.states, a.flow.State()) {
		return fmt.Errorf("%s while %s: %w", name, a.flow.State(), common.ErrInvalidTransition)
	}

	if len(c.actions) > 0 {
		var err error
		for _, act := range c.actions {
			if err = a.state.Authorize(act); err == nil {
				break
			}
		}
		if err != nil {
			return err
		}
	}

	return c.run(ctx, args)
}

// help lists the commands reachable in the current state.
func (a *App) help() string {
	var b strings.Builder
	b.WriteString("Commands:\n")

	cmds := a.commands()
	sort.SliceStable(cmds, func(i, j int) bool { return cmds[i].name < cmds[j].name })
	for _, c := range cmds {
		if len(c.states) > 0 && !slices.Contains(c.states, a.flow.State()) {
			continue
		}
		if len(c.actions) > 0 && !slices.ContainsFunc(c.actions, func(act models.Action) bool {
			return a.state.Authorize(act) == nil
		}) {
			continue
		}
		fmt.Fprintf(&b, "  %-32s %s\n", c.usage, c.help)
	}
	fmt.Fprintf(&b, "  %-32s %s\n", "help", "show this list")
	fmt.Fprintf(&b, "  %-32s %s", "exit", "leave the console")
	return b.String()
}
