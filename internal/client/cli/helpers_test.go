package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/sitekeeper/internal/client/auth"
	"github.com/dmitrijs2005/sitekeeper/internal/client/config"
	"github.com/dmitrijs2005/sitekeeper/internal/client/geo"
	"github.com/dmitrijs2005/sitekeeper/internal/client/insight"
	"github.com/dmitrijs2005/sitekeeper/internal/client/services"
	"github.com/dmitrijs2005/sitekeeper/internal/client/storage"
	"github.com/dmitrijs2005/sitekeeper/internal/client/store"
	"github.com/dmitrijs2005/sitekeeper/internal/logging"
)

type fakeGenerator struct {
	out      insight.Insight
	err      error
	prompts  []string
	optCount int
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, opts ...insight.Option) (insight.Insight, error) {
	f.prompts = append(f.prompts, prompt)
	f.optCount = len(opts)
	return f.out, f.err
}

type testApp struct {
	*App
	out *bytes.Buffer
	gen *fakeGenerator
}

// newTestApp builds an App over an in-memory database. Each line of input
// answers one prompt.
func newTestApp(t *testing.T, loc geo.Locator, input ...string) *testApp {
	t.Helper()

	oldTerm := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = oldTerm })

	ctx := context.Background()
	db, err := storage.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := store.New(db, logging.Nop())
	st, err := services.NewState(ctx, s, logging.Nop(), services.WithDarkBackground(func() bool { return false }))
	require.NoError(t, err)

	cfg := &config.Config{RequestTimeout: time.Second, MapsAPIKey: "maps-key"}
	gen := &fakeGenerator{out: insight.Insight{Text: "All good."}}
	out := &bytes.Buffer{}

	a := newApp(cfg, logging.Nop(), st, services.NewDirectory(s), gen, loc, strings.NewReader(strings.Join(input, "\n")+"\n"), out)
	return &testApp{App: a, out: out, gen: gen}
}

// signInAdmin registers and verifies an admin account.
func signInAdmin(t *testing.T, loc geo.Locator, more ...string) *testApp {
	t.Helper()
	input := append([]string{"alice", "secret", "Acme Lighting", "Alice A", "", "123456"}, more...)
	a := newTestApp(t, loc, input...)
	require.NoError(t, a.exec(context.Background(), "register", nil))
	require.Equal(t, auth.LoggedIn, a.flow.State())
	a.out.Reset()
	return a
}

// signInStaff uses the field portal with a name not in the directory.
func signInStaff(t *testing.T, loc geo.Locator, more ...string) *testApp {
	t.Helper()
	input := append([]string{"rahul", "pw"}, more...)
	a := newTestApp(t, loc, input...)
	require.NoError(t, a.exec(context.Background(), "portal", nil))
	require.NoError(t, a.exec(context.Background(), "login", nil))
	require.Equal(t, auth.LoggedIn, a.flow.State())
	a.out.Reset()
	return a
}
