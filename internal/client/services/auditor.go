package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/sitekeeper/internal/client/insight"
	"github.com/dmitrijs2005/sitekeeper/internal/client/models"
	"github.com/dmitrijs2005/sitekeeper/internal/logging"
)

// Auditor asks the insight generator about the current collections.
type Auditor struct {
	gen   insight.Generator
	state *State
	log   logging.Logger

	loading bool
}

func NewAuditor(gen insight.Generator, state *State, log logging.Logger) *Auditor {
	return &Auditor{gen: gen, state: state, log: log}
}

// Loading reports whether a request is in flight.
func (a *Auditor) Loading() bool { return a.loading }

// Audit reviews projects and inventory for logistical risk and savings.
func (a *Auditor) Audit(ctx context.Context) (insight.Insight, error) {
	prompt, err := AuditPrompt(a.state.Projects(), a.state.Inventory())
	if err != nil {
		return insight.Insight{}, err
	}
	return a.run(ctx, "audit", prompt)
}

// SiteIntelligence briefs on the surroundings of location, citing sources.
func (a *Auditor) SiteIntelligence(ctx context.Context, location string) (insight.Insight, error) {
	return a.run(ctx, "site intelligence", SiteIntelligencePrompt(location), insight.WithSearchGrounding())
}

func (a *Auditor) run(ctx context.Context, what, prompt string, opts ...insight.Option) (insight.Insight, error) {
	a.loading = true
	defer func() { a.loading = false }()

	a.log.Debug(ctx, "requesting insight", "kind", what, "prompt_bytes", len(prompt))
	out, err := a.gen.Generate(ctx, prompt, opts...)
	if err != nil {
		a.log.Warn(ctx, "insight request failed", "kind", what, "error", err)
		return insight.Insight{}, fmt.Errorf("%s: %w", what, err)
	}
	return out, nil
}

// AuditPrompt embeds both collections as JSON.
func AuditPrompt(projects []models.Project, inventory []models.InventoryItem) (string, error) {
	p, err := json.Marshal(projects)
	if err != nil {
		return "", fmt.Errorf("encode projects: %w", err)
	}
	i, err := json.Marshal(inventory)
	if err != nil {
		return "", fmt.Errorf("encode inventory: %w", err)
	}
	return fmt.Sprintf(`Act as a senior auditor for %s. Analyze these project assets and statuses:
Projects: %s
Inventory: %s
Identify key logistical risks and cost-saving opportunities. 100 words max.`,
		models.DefaultOrganization, p, i), nil
}

func SiteIntelligencePrompt(location string) string {
	return fmt.Sprintf(`Give a short site briefing for street-lighting installation work at %q:
nearby power infrastructure, access roads and local hazards. Cite your sources.`, location)
}
