package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/sitekeeper/internal/client/insight"
	"github.com/dmitrijs2005/sitekeeper/internal/client/maps"
	"github.com/dmitrijs2005/sitekeeper/internal/client/models"
	"github.com/dmitrijs2005/sitekeeper/internal/common"
)

func (a *App) cmdProjects(_ context.Context, args []string) error {
	projects := a.state.SearchProjects(strings.Join(args, " "))
	st := a.styles()

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.ID, p.Name, p.Client, st.level(string(p.Status)),
			fmt.Sprintf("%d%%", p.Progress), p.Deadline, p.Phase,
			strconv.FormatFloat(p.Budget, 'f', -1, 64),
		})
	}
	a.printTable([]string{"ID", "Name", "Client", "Status", "Progress", "Deadline", "Phase", "Budget"}, rows)
	return nil
}

func (a *App) cmdAddProject(ctx context.Context, _ []string) error {
	var d models.ProjectDraft
	var err error
	if d.Name, err = a.prompt("Project name"); err != nil {
		return err
	}
	if d.Name == "" {
		return fmt.Errorf("project name is empty: %w", common.ErrInvalidValue)
	}
	if d.Client, err = a.prompt("Client"); err != nil {
		return err
	}
	if d.Deadline, err = a.prompt("Deadline (YYYY-MM-DD)"); err != nil {
		return err
	}
	if d.Location, err = a.prompt("Location"); err != nil {
		return err
	}
	if d.Description, err = a.promptOptional("Description"); err != nil {
		return err
	}
	budget, err := a.promptOptional("Budget")
	if err != nil {
		return err
	}
	if budget != "" {
		if d.Budget, err = strconv.ParseFloat(budget, 64); err != nil {
			return fmt.Errorf("budget %q: %w", budget, common.ErrInvalidValue)
		}
	}

	p := a.state.AddProject(ctx, d)
	a.printf("Project %s created (%s, %s).\n", a.styles().accent.Render(p.ID), p.Status, p.Phase)
	return nil
}

func (a *App) cmdProjectStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: project-status <id> <status>: %w", common.ErrInvalidValue)
	}
	status, err := models.ParseProjectStatus(args[1])
	if err != nil {
		return err
	}
	p, err := a.state.UpdateProjectStatus(ctx, args[0], status)
	if err != nil {
		return err
	}
	a.printf("%s is now %s.\n", p.Name, a.styles().level(string(p.Status)))
	return nil
}

func (a *App) cmdProgress(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: progress <id> <0-100>: %w", common.ErrInvalidValue)
	}
	n, err := strconv.Atoi(strings.TrimSuffix(args[1], "%"))
	if err != nil {
		return fmt.Errorf("progress %q: %w", args[1], common.ErrInvalidValue)
	}
	p, err := a.state.UpdateProjectProgress(ctx, args[0], n)
	if err != nil {
		return err
	}
	a.printf("%s is at %d%%.\n", p.Name, p.Progress)
	return nil
}

func (a *App) cmdStaff(_ context.Context, args []string) error {
	role := models.RoleFilterAll
	if len(args) > 0 {
		role = args[0]
		args = args[1:]
	}
	members := a.state.FilterStaff(role, strings.Join(args, " "))

	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{
			m.ID, m.Name, m.Role.Label(), string(m.Status), strconv.Itoa(m.Workload), m.Email,
		})
	}
	a.printTable([]string{"ID", "Name", "Role", "Status", "Workload", "Email"}, rows)
	return nil
}

func (a *App) cmdAddStaff(ctx context.Context, _ []string) error {
	var d models.StaffDraft
	var err error
	if d.Name, err = a.prompt("Full name"); err != nil {
		return err
	}
	if d.Username, err = a.promptOptional("Username"); err != nil {
		return err
	}
	role, err := a.prompt("Role (SITE_SUPERVISOR, TECHNICIAN, WAREHOUSE_MANAGER, ELECTRICIAN)")
	if err != nil {
		return err
	}
	if d.Role, err = models.ParseRole(role); err != nil {
		return err
	}
	if d.Email, err = a.promptOptional("Email"); err != nil {
		return err
	}

	m, err := a.state.AddStaff(ctx, d)
	if err != nil {
		return err
	}
	a.printf("Staff member %s added as %s.\n", a.styles().accent.Render(m.ID), m.Role.Label())
	return nil
}

func (a *App) printInventory(items []models.InventoryItem) {
	st := a.styles()
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.ID, it.Name, string(it.Category), strconv.Itoa(it.Quantity),
			strconv.Itoa(it.ReorderPoint), it.Unit, st.level(string(it.Status)),
		})
	}
	a.printTable([]string{"ID", "Name", "Category", "Qty", "Reorder", "Unit", "Status"}, rows)
}

func (a *App) cmdInventory(_ context.Context, _ []string) error {
	a.printInventory(a.state.Inventory())
	return nil
}

func (a *App) cmdLowStock(_ context.Context, _ []string) error {
	a.printInventory(a.state.LowStock())
	return nil
}

func (a *App) cmdAdjust(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: adjust <id> <IN|OUT> <amount>: %w", common.ErrInvalidValue)
	}
	dir, err := models.ParseDirection(args[1])
	if err != nil {
		return err
	}
	amount, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("amount %q: %w", args[2], common.ErrInvalidValue)
	}

	it, err := a.state.AdjustStock(ctx, args[0], dir, amount)
	if err != nil {
		return err
	}
	a.printf("%s: %d %s (%s)\n", it.Name, it.Quantity, it.Unit, a.styles().level(string(it.Status)))
	return nil
}

func (a *App) cmdTasks(_ context.Context, args []string) error {
	tasks := a.state.Tasks()
	if len(args) > 0 {
		tasks = a.state.TasksFor(args[0])
	}

	st := a.styles()
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			t.ID, t.Title, t.ProjectName, strings.Join(t.AssignedTo, ","), t.Deadline, st.level(string(t.Status)),
		})
	}
	a.printTable([]string{"ID", "Title", "Project", "Assigned", "Deadline", "Status"}, rows)
	return nil
}

func (a *App) cmdAddTask(ctx context.Context, _ []string) error {
	var d models.TaskDraft
	var err error
	if d.Title, err = a.prompt("Task title"); err != nil {
		return err
	}
	if d.ProjectID, err = a.prompt("Project id"); err != nil {
		return err
	}
	assigned, err := a.promptOptional("Assign to (comma-separated staff ids)")
	if err != nil {
		return err
	}
	for _, id := range strings.Split(assigned, ",") {
		if id = strings.TrimSpace(id); id != "" {
			d.AssignedTo = append(d.AssignedTo, id)
		}
	}
	if d.Deadline, err = a.prompt("Deadline (YYYY-MM-DD)"); err != nil {
		return err
	}
	if d.Location, err = a.promptOptional("Location"); err != nil {
		return err
	}
	if d.Instructions, err = a.promptOptional("Instructions"); err != nil {
		return err
	}

	t, err := a.state.AddTask(ctx, d)
	if err != nil {
		return err
	}
	a.printf("Task %s created for %s.\n", a.styles().accent.Render(t.ID), t.ProjectName)
	return nil
}

func (a *App) cmdTaskStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: task-status <id> <status>: %w", common.ErrInvalidValue)
	}
	status, err := models.ParseTaskStatus(args[1])
	if err != nil {
		return err
	}
	t, err := a.state.UpdateTaskStatus(ctx, args[0], status)
	if err != nil {
		return err
	}
	a.printf("%s is now %s.\n", t.Title, a.styles().level(string(t.Status)))
	return nil
}

func (a *App) cmdAudit(ctx context.Context, _ []string) error {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	a.println(a.styles().muted.Render("Auditing projects and inventory..."))
	in, err := a.auditor.Audit(ctx)
	if err != nil {
		return err
	}
	a.printInsight("AI Operations Auditor", in)
	return nil
}

func (a *App) cmdIntel(ctx context.Context, args []string) error {
	location, err := a.siteLocation(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	a.println(a.styles().muted.Render("Gathering site intelligence for " + location + "..."))
	in, err := a.auditor.SiteIntelligence(ctx, location)
	if err != nil {
		return err
	}
	a.printInsight("Site intelligence: "+location, in)
	return nil
}

func (a *App) cmdMap(_ context.Context, args []string) error {
	location, err := a.siteLocation(args)
	if err != nil {
		return err
	}
	if a.config.MapsAPIKey == "" {
		a.println(a.styles().warn.Render("No maps API key configured; the link will not load."))
	}
	a.println(maps.EmbedURL(location, a.config.MapsAPIKey))
	return nil
}

func (a *App) cmdStartWork(ctx context.Context, _ []string) error {
	if a.shift.Started() {
		a.printf("Shift already started at %s.\n", a.shift.Position())
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	a.println(a.styles().muted.Render("Locking position..."))
	c, err := a.shift.StartWork(ctx)
	if err != nil {
		return err
	}
	a.println(a.styles().ok.Render("Shift started") + " at " + c.String())
	return nil
}

func (a *App) cmdReset(ctx context.Context, _ []string) error {
	answer, err := a.prompt("Restore projects, staff, inventory and tasks to defaults? Type 'yes' to confirm")
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		a.println("Reset cancelled.")
		return nil
	}
	if err := a.state.ResetCollections(ctx); err != nil {
		return err
	}
	a.println("All collections restored to defaults.")
	return nil
}

func (a *App) cmdTheme(ctx context.Context, args []string) error {
	t := a.state.Theme().Toggled()
	if len(args) > 0 {
		var err error
		if t, err = models.ParseTheme(args[0]); err != nil {
			return err
		}
	}
	a.state.SetTheme(ctx, t)
	a.printf("Theme: %s\n", a.styles().accent.Render(string(t)))
	return nil
}

func (a *App) cmdLang(ctx context.Context, args []string) error {
	l := a.state.Language().Toggled()
	if len(args) > 0 {
		var err error
		if l, err = models.ParseLanguage(args[0]); err != nil {
			return err
		}
	}
	a.state.SetLanguage(ctx, l)
	a.printf("Language: %s (%s)\n", a.styles().accent.Render(string(l)), l.Tag())
	return nil
}

// siteLocation resolves a project id to its location; anything else is
// taken as a free-text location.
func (a *App) siteLocation(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("a project id or location is required: %w", common.ErrInvalidValue)
	}
	if len(args) == 1 {
		for _, p := range a.state.Projects() {
			if p.ID == args[0] {
				return p.Location, nil
			}
		}
	}
	return strings.Join(args, " "), nil
}

func (a *App) printInsight(title string, in insight.Insight) {
	st := a.styles()
	a.println(st.title.Render(title))
	a.println(in.Text)
	if len(in.Links) == 0 {
		return
	}
	a.println(st.muted.Render("Sources:"))
	for _, l := range in.Links {
		a.printf("  - %s %s\n", l.Title, st.muted.Render(l.URI))
	}
}
