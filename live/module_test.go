package live_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/0xalexb/hjarta-conf/config"
	"github.com/0xalexb/hjarta-conf/live"
)

func TestNewModule_ProvidesHolderAndStore(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.yaml", "service:\n  name: billing\n")

	var (
		holder *live.Holder
		store  *config.Store
	)

	app := fxtest.New(t,
		fx.Supply(discardLogger()),
		live.NewModule(live.ModuleConfig{
			Files:   []string{path},
			Watch:   true,
			Options: []config.Option{config.WithDelimiter("/")},
		}),
		fx.Populate(&holder, &store),
	)

	app.RequireStart()
	t.Cleanup(app.RequireStop)

	require.NotNil(t, holder)
	require.NotNil(t, store)
	assert.Equal(t, "billing", store.Get("service/name", nil))
}

func TestNewModule_MissingFileFailsStartup(t *testing.T) {
	t.Parallel()

	app := fx.New(
		fx.NopLogger,
		fx.Supply(discardLogger()),
		live.NewModule(live.ModuleConfig{Files: []string{filepath.Join(t.TempDir(), "missing.yaml")}}),
		fx.Invoke(func(*live.Holder) {}),
	)

	require.ErrorIs(t, app.Err(), config.ErrSourceNotFound)
}
