package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/autoplay/internal/ai"
	"github.com/udisondev/autoplay/internal/autoplay"
	"github.com/udisondev/autoplay/internal/config"
	"github.com/udisondev/autoplay/internal/data"
	"github.com/udisondev/autoplay/internal/game"
	"github.com/udisondev/autoplay/internal/game/itemhandler"
	"github.com/udisondev/autoplay/internal/gameserver/admin"
	"github.com/udisondev/autoplay/internal/gameserver/admin/commands"
	"github.com/udisondev/autoplay/internal/model"
	"github.com/udisondev/autoplay/internal/variables"
	"github.com/udisondev/autoplay/internal/world"
)

func init() {
	data.MustLoadForTests()
	itemhandler.Init()
}

type daemon struct {
	world    *world.World
	vars     *variables.Registry
	manager  *autoplay.Manager
	ticks    *ai.TickManager
	sessions *sessionHost
	cmds     *admin.Handler
}

func newDaemon(t *testing.T, players, monsters int) *daemon {
	t.Helper()
	w := world.New()
	engine := game.NewEngine(w, rand.New(rand.NewPCG(1, 1)), nil)
	vars := variables.NewRegistry(nil)
	mgr := autoplay.NewManager(autoplay.Deps{
		Players:  engine,
		Spatial:  engine,
		Actions:  engine,
		Notifier: engine,
		Settings: vars,
		Clock:    engine,
		Rand:     rand.New(rand.NewPCG(2, 2)),
	}, autoplay.DefaultTuning())
	ticks := ai.NewTickManager(0)

	d := &daemon{
		world:    w,
		vars:     vars,
		manager:  mgr,
		ticks:    ticks,
		sessions: &sessionHost{world: w, vars: vars, manager: mgr, ticks: ticks},
		cmds:     admin.NewHandler(),
	}
	commands.RegisterAll(d.cmds, commands.Deps{Players: w, Scheduler: ticks, Vars: vars, AutoPlay: mgr})

	cfg := config.DefaultAutoplayd().Demo
	cfg.Enabled, cfg.Players, cfg.Monsters = true, players, monsters
	require.NoError(t, seedDemo(context.Background(), cfg, w, d.sessions, rand.New(rand.NewPCG(3, 3))))
	return d
}

func TestSeedDemo(t *testing.T) {
	d := newDaemon(t, 3, 20)

	assert.Equal(t, 23, d.world.ObjectCount())
	assert.Equal(t, 3, d.ticks.Count())
	assert.Equal(t, 3, d.vars.Count())

	p, ok := d.world.FindPlayerByName("Kathryne")
	require.True(t, ok)
	assert.Equal(t, data.JobHighWizard, p.Job())
	assert.True(t, p.AutoPlay())
	assert.Positive(t, p.SkillLevel(data.SkillMGEnergyCoat))
	assert.Equal(t, int64(1), d.vars.Get(p.CharacterID(), autoplay.BuffToggle("energy_coat")))
	assert.Equal(t, int64(20), d.vars.Get(p.CharacterID(), autoplay.SettingRestHP))
	assert.Equal(t, int32(200), p.Inventory().CountOf(data.ItemWhitePotion))

	gm, ok := d.world.FindPlayerByName("Seyren")
	require.True(t, ok)
	assert.Equal(t, int32(100), gm.AccessLevel())
}

func TestSeedDemo_TicksRun(t *testing.T) {
	d := newDaemon(t, 2, 30)

	ran := d.ticks.RunDue(context.Background(), time.Now())
	assert.Equal(t, 2, ran)
	assert.Equal(t, 2, d.manager.SessionCount())
}

func TestSessionHost_LogoutAll(t *testing.T) {
	d := newDaemon(t, 2, 0)

	d.sessions.LogoutAll(context.Background())

	assert.Zero(t, d.ticks.Count())
	assert.Zero(t, d.vars.Count())
	assert.Zero(t, d.manager.SessionCount())
	_, ok := d.world.GetPlayer(1)
	assert.False(t, ok)
}

func TestSessionHost_LoginRejectsBadLocation(t *testing.T) {
	d := newDaemon(t, 0, 0)
	p, err := model.NewPlayer(d.world.IDs().NextPlayerID(), 99, "Lost", data.JobKnight, model.NewLocation(42, 1, 1), 1, 100, 10)
	require.NoError(t, err)

	assert.Error(t, d.sessions.Login(context.Background(), p))
	assert.Zero(t, d.manager.SessionCount())
}

func TestRunConsole(t *testing.T) {
	d := newDaemon(t, 2, 0)
	kath, ok := d.world.FindPlayerByName("Kathryne")
	require.True(t, ok)

	input := strings.Join([]string{
		"Seyren: //apset ap_rest_hp 35 Kathryne",
		"Kathryne: /autoplay off",
		"Nobody: /autoplay",
		"garbage",
		"Seyren: hello",
	}, "\n")
	slog.SetDefault(slog.New(slog.DiscardHandler))
	runConsole(context.Background(), strings.NewReader(input), d.world, d.cmds)

	assert.Equal(t, int64(35), d.vars.Get(kath.CharacterID(), autoplay.SettingRestHP))
	assert.False(t, kath.AutoPlay())
	assert.Empty(t, kath.LastAdminMessage(), "replies are consumed")
}

func TestOpenStorage(t *testing.T) {
	cfg := config.DefaultAutoplayd()

	cfg.Storage.Driver = config.StorageMemory
	s, err := openStorage(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, s.vars)
	assert.Nil(t, s.configs)
	s.Close()

	cfg.Storage.Driver = config.StorageSQLite
	cfg.Storage.SQLitePath = ":memory:"
	s, err = openStorage(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotNil(t, s.vars)
	assert.NotNil(t, s.configs)
	s.Close()

	cfg.Storage.Driver = "redis"
	_, err = openStorage(context.Background(), cfg)
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
}
