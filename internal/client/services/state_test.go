package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/sitekeeper/internal/client/models"
	"github.com/dmitrijs2005/sitekeeper/internal/client/store"
	"github.com/dmitrijs2005/sitekeeper/internal/common"
	"github.com/dmitrijs2005/sitekeeper/internal/logging"
)

func TestNewState_FreshStoreUsesDefaultsAndSeeds(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	st, err := NewState(ctx, s, logging.Nop(), WithDarkBackground(func() bool { return true }))
	require.NoError(t, err)

	assert.Equal(t, models.ThemeDark, st.Theme())
	assert.Equal(t, models.LanguageEN, st.Language())
	assert.Equal(t, models.ViewDashboard, st.ActiveView())
	assert.Nil(t, st.Session())
	assert.Equal(t, models.DefaultProjects(), st.Projects())
	assert.Equal(t, models.DefaultStaff(), st.Staff())
	assert.Equal(t, models.DefaultInventory(), st.Inventory())
	assert.Equal(t, models.DefaultTasks(), st.Tasks())

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{store.KeyInventory, store.KeyProjects, store.KeyStaff, store.KeyTasks}, keys,
		"collections are seeded, preferences are not")
}

func TestNewState_LightBackground(t *testing.T) {
	st := newTestState(t, newTestStore(t))
	assert.Equal(t, models.ThemeLight, st.Theme())
}

func TestNewState_ReadsStoredValues(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, store.KeyTheme, models.ThemeDark))
	require.NoError(t, s.Write(ctx, store.KeyLanguage, models.LanguageHI))
	require.NoError(t, s.Write(ctx, store.KeyProjects, []models.Project{}))
	require.NoError(t, s.Write(ctx, store.KeyInventory, []models.InventoryItem{{ID: "X1", Quantity: 1}}))

	st := newTestState(t, s)
	assert.Equal(t, models.ThemeDark, st.Theme())
	assert.Equal(t, models.LanguageHI, st.Language())
	assert.Empty(t, st.Projects(), "an empty stored list is not replaced by fixtures")
	assert.Equal(t, []models.InventoryItem{{ID: "X1", Quantity: 1}}, st.Inventory())
	assert.Equal(t, models.DefaultStaff(), st.Staff())
}

func TestNewState_InvalidPreferencesFallBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Write(ctx, store.KeyTheme, "SEPIA"))
	require.NoError(t, s.Write(ctx, store.KeyLanguage, "fr"))

	st := newTestState(t, s)
	assert.Equal(t, models.ThemeLight, st.Theme())
	assert.Equal(t, models.LanguageEN, st.Language())
}

func TestNewState_ReadError(t *testing.T) {
	fs := &flakyStore{RecordStore: newTestStore(t), ReadErr: errDisk}

	_, err := NewState(context.Background(), fs, logging.Nop(), WithDarkBackground(lightBackground))
	require.ErrorIs(t, err, errDisk)
}

func TestState_PreferencesWriteThrough(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	st := newTestState(t, s)

	st.SetLanguage(ctx, models.LanguageHI)
	st.SetTheme(ctx, models.ThemeDark)

	var lang, theme string
	found, err := s.Read(ctx, store.KeyLanguage, &lang)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "HI", lang)
	found, err = s.Read(ctx, store.KeyTheme, &theme)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "DARK", theme)

	reloaded := newTestState(t, s)
	assert.Equal(t, models.LanguageHI, reloaded.Language())
	assert.Equal(t, models.ThemeDark, reloaded.Theme())
}

func TestState_WriteFailureIsLoggedAndMemoryKept(t *testing.T) {
	fs := &flakyStore{RecordStore: newTestStore(t)}
	log := &captureLogger{}
	ctx := context.Background()

	st, err := NewState(ctx, fs, log, WithDarkBackground(lightBackground))
	require.NoError(t, err)

	fs.WriteErr = errDisk
	st.SetTheme(ctx, models.ThemeDark)
	assert.Equal(t, models.ThemeDark, st.Theme())

	p := st.AddProject(ctx, models.ProjectDraft{Name: "Ring Road"})
	assert.Equal(t, p, st.Projects()[0])

	assert.Equal(t, []string{"preference not persisted", "collection not persisted"}, log.Warns)
}

func TestState_SessionAndViews(t *testing.T) {
	st := newTestState(t, newTestStore(t))

	require.ErrorIs(t, st.SetActiveView(models.ViewDashboard), common.ErrForbidden)
	require.ErrorIs(t, st.Authorize(models.ActionStartWork), common.ErrForbidden)

	st.SetSession(models.NewSession(models.TransientStaffAccount("bob")))
	require.NoError(t, st.SetActiveView(models.ViewSettings))
	assert.Equal(t, models.ViewSettings, st.ActiveView())
	require.ErrorIs(t, st.SetActiveView(models.ViewInventory), common.ErrForbidden)
	assert.Equal(t, models.ViewSettings, st.ActiveView())
	require.NoError(t, st.Authorize(models.ActionStartWork))
	require.ErrorIs(t, st.Authorize(models.ActionRunAudit), common.ErrForbidden)

	st.SetSession(models.NewSession(models.Account{Username: "alice", Role: models.RoleSuperAdmin}))
	assert.Equal(t, models.ViewDashboard, st.ActiveView(), "new session lands on the dashboard")
	require.NoError(t, st.SetActiveView(models.ViewInventory))
	require.NoError(t, st.Authorize(models.ActionRunAudit))
}

func TestState_SessionIsCopied(t *testing.T) {
	st := newTestState(t, newTestStore(t))
	sess := models.NewSession(models.Account{Username: "alice", Role: models.RoleSuperAdmin})
	st.SetSession(sess)

	sess.Role = models.RoleTechnician
	got := st.Session()
	assert.Equal(t, models.RoleSuperAdmin, got.Role)

	got.Name = "changed"
	assert.NotEqual(t, "changed", st.Session().Name)
}

func TestState_SignOutLeavesStorageUntouched(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	st := newTestState(t, s)

	st.SetTheme(ctx, models.ThemeDark)
	st.SetLanguage(ctx, models.LanguageHI)
	st.SetSession(models.NewSession(models.Account{Username: "alice", Role: models.RoleSuperAdmin}))

	snapshot := func() map[string]string {
		keys, err := s.Keys(ctx)
		require.NoError(t, err)
		out := map[string]string{}
		for _, k := range keys {
			raw, err := s.Raw(ctx, k)
			require.NoError(t, err)
			out[k] = string(raw)
		}
		return out
	}

	before := snapshot()
	st.SetSession(nil)
	after := snapshot()

	assert.Nil(t, st.Session())
	assert.Equal(t, before, after)
	assert.Len(t, after, 6)
	assert.Equal(t, models.ThemeDark, st.Theme())
	assert.Equal(t, models.LanguageHI, st.Language())
}
