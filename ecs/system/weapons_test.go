package system

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func TestShootCooldownAndAmmo(t *testing.T) {
	h := newHarness(t)
	p := h.player(t, 120)
	systems := []ecs.System[*Context]{NewPlayerControlSystem(), NewPlayerMovementSystem(), NewProjectileSystem(), NewCooldownSystem()}

	var shotFrames []int
	for frame := 0; frame < 900; frame++ {
		events := h.run(1, Input{Shoot: true}, systems...)
		if countEvents(events, EventShoot) > 0 {
			shotFrames = append(shotFrames, frame)
		}
	}
	if len(shotFrames) != 20 {
		t.Fatalf("expected 20 shots, got %d", len(shotFrames))
	}
	for i := 1; i < len(shotFrames); i++ {
		if gap := shotFrames[i] - shotFrames[i-1]; gap != 40 {
			t.Fatalf("shots %d and %d are %d frames apart", i-1, i, gap)
		}
	}
	if got := h.unit(t, p).Ammo; got != 0 {
		t.Fatalf("ammo = %d, want 0", got)
	}
}

func TestShootWithoutAmmoIsNoop(t *testing.T) {
	h := newHarness(t)
	p := h.player(t, 120)
	u := h.unit(t, p)
	u.Ammo = 0

	if Shoot(h.w, h.ctx, p) {
		t.Fatalf("Shoot reported success with no ammo")
	}
	if u.Cooldown != 0 {
		t.Fatalf("cooldown changed to %d", u.Cooldown)
	}
	if n := len(h.w.Query(component.ProjectileComponent.Kind())); n != 0 {
		t.Fatalf("spawned %d projectiles", n)
	}
}

func TestShootTakesPriorityAndThrowLatches(t *testing.T) {
	h := newHarness(t)
	p := h.player(t, 120)
	control := []ecs.System[*Context]{NewPlayerControlSystem()}

	events := h.run(1, Input{Shoot: true, Explosive: true}, control...)
	if countEvents(events, EventShoot) != 1 || countEvents(events, EventThrow) != 0 {
		t.Fatalf("fire and throw held together: %v", events)
	}

	events = h.run(3, Input{Explosive: true}, control...)
	if n := countEvents(events, EventThrow); n != 1 {
		t.Fatalf("held throw key threw %d times", n)
	}
	h.run(1, Input{}, control...)
	events = h.run(1, Input{Explosive: true}, control...)
	if n := countEvents(events, EventThrow); n != 1 {
		t.Fatalf("second press threw %d times", n)
	}
	if got := h.unit(t, p).Explosives; got != 18 {
		t.Fatalf("explosives = %d, want 18", got)
	}
}

func TestProjectileHits(t *testing.T) {
	h := newHarness(t)
	player := h.player(t, 100)
	enemy := h.hostile(t, 400)
	h.unit(t, enemy).Health = 20
	from := common.RectFromCenter(360, 530, 45, 60)

	shot, err := h.f.Projectile(h.w, player, from, 1)
	if err != nil {
		t.Fatalf("Projectile: %v", err)
	}
	events := h.run(1, Input{}, NewProjectileSystem())
	u := h.unit(t, enemy)
	if u.Health != 0 || u.Alive {
		t.Fatalf("hostile health=%d alive=%v after lethal hit", u.Health, u.Alive)
	}
	if h.w.IsAlive(shot) {
		t.Fatalf("projectile survived its hit")
	}
	if countEvents(events, EventDeath) != 1 {
		t.Fatalf("expected a death event, got %v", events)
	}
	anim, _ := ecs.Get(h.w, enemy, component.AnimationComponent.Kind())
	if anim.State != component.AnimDeath {
		t.Fatalf("animation = %s, want Death", anim.State)
	}

	second, err := h.f.Projectile(h.w, player, from, 1)
	if err != nil {
		t.Fatalf("Projectile: %v", err)
	}
	h.run(1, Input{}, NewProjectileSystem())
	if !h.w.IsAlive(second) {
		t.Fatalf("projectile stopped on a dead hostile")
	}
	if got := h.transform(t, second).X; got != 392 {
		t.Fatalf("projectile x = %v, want 392", got)
	}
}

func TestProjectileDamagesPlayerButNotOwner(t *testing.T) {
	h := newHarness(t)
	player := h.player(t, 400)
	enemy := h.hostile(t, 700)

	h.f.Projectile(h.w, enemy, common.RectFromCenter(360, 530, 45, 60), 1)
	own, _ := h.f.Projectile(h.w, enemy, common.RectFromCenter(680, 530, 45, 60), 1)
	h.run(1, Input{}, NewProjectileSystem())

	if got := h.unit(t, player).Health; got != 95 {
		t.Fatalf("player health = %d, want 95", got)
	}
	if got := h.unit(t, enemy).Health; got != 100 {
		t.Fatalf("owner took damage from its own shot: %d", got)
	}
	if !h.w.IsAlive(own) {
		t.Fatalf("projectile removed by its owner")
	}
}

func TestProjectileRemovedByTileAndScreen(t *testing.T) {
	cases := []struct {
		name   string
		x      float64
		camera float64
	}{
		{"tile", 1170, 800},
		{"off_screen", 780, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			h.ctx.CameraX = c.camera
			shot, _ := h.f.Projectile(h.w, 0, common.RectFromCenter(c.x, 500, 45, 60), 1)
			h.run(1, Input{}, NewProjectileSystem())
			if h.w.IsAlive(shot) {
				t.Fatalf("projectile at x=%v survived", h.transform(t, shot).X)
			}
		})
	}
}

func TestExplosiveSettles(t *testing.T) {
	h := newHarness(t)
	e, err := h.f.Explosive(h.w, 0, common.RectFromCenter(300, 300, 45, 60), 1)
	if err != nil {
		t.Fatalf("Explosive: %v", err)
	}
	tr := h.transform(t, e)
	tr.X, tr.Y = 300, 540
	body, _ := ecs.Get(h.w, e, component.BodyComponent.Kind())
	body.VelY = 10

	h.run(1, Input{}, NewExplosiveSystem())
	ex, _ := ecs.Get(h.w, e, component.ExplosiveComponent.Kind())
	if !ex.Settled || ex.Speed != 0 {
		t.Fatalf("explosive did not settle: %+v", ex)
	}
	if tr.Y+14 != floorY {
		t.Fatalf("explosive bottom = %v, want %v", tr.Y+14, floorY)
	}
	x := tr.X
	h.run(3, Input{}, NewExplosiveSystem())
	if tr.X != x || tr.Y+14 != floorY {
		t.Fatalf("settled explosive moved to (%v, %v)", tr.X, tr.Y)
	}
}

func TestExplosiveTimer(t *testing.T) {
	cases := []struct {
		name      string
		blast     bool
		wantBlast int
	}{
		{"blast_disabled", false, 0},
		{"blast_enabled", true, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			h.ctx.Config.Blast.Enabled = c.blast
			e, _ := h.f.Explosive(h.w, 0, common.RectFromCenter(300, 300, 45, 60), 1)
			ex, _ := ecs.Get(h.w, e, component.ExplosiveComponent.Kind())
			ex.Timer = 1

			events := h.run(1, Input{}, NewExplosiveSystem())
			if h.w.IsAlive(e) {
				t.Fatalf("explosive survived its timer")
			}
			if n := len(h.w.Query(component.ExplosionComponent.Kind())); n != c.wantBlast {
				t.Fatalf("explosions = %d, want %d", n, c.wantBlast)
			}
			if n := countEvents(events, EventDetonate); n != c.wantBlast {
				t.Fatalf("detonate events = %d, want %d", n, c.wantBlast)
			}
		})
	}
}

func TestExplosiveContactDamage(t *testing.T) {
	h := newHarness(t)
	enemy := h.hostile(t, 400)
	e, _ := h.f.Explosive(h.w, 0, common.RectFromCenter(380, 540, 45, 60), 1)

	h.run(1, Input{}, NewExplosiveSystem())
	if got := h.unit(t, enemy).Health; got != 50 {
		t.Fatalf("hostile health = %d, want 50", got)
	}
	if h.w.IsAlive(e) {
		t.Fatalf("explosive survived contact")
	}
}

func TestExplosiveHitsItsThrower(t *testing.T) {
	h := newHarness(t)
	p := h.player(t, 300)
	if !Throw(h.w, h.ctx, p) {
		t.Fatalf("Throw failed")
	}
	e, ok := ecs.First(h.w, component.ExplosiveComponent.Kind())
	if !ok {
		t.Fatalf("no explosive spawned")
	}
	// as if it bounced back into the thrower
	tr := h.transform(t, e)
	tr.X, tr.Y = 290, 530

	h.run(1, Input{}, NewExplosiveSystem())
	if got := h.unit(t, p).Health; got != 95 {
		t.Fatalf("thrower health = %d, want 95", got)
	}
	if h.w.IsAlive(e) {
		t.Fatalf("explosive survived hitting its thrower")
	}
}

func TestDetonateRadius(t *testing.T) {
	h := newHarness(t)
	h.ctx.Config.Blast.Enabled = true
	near := h.hostile(t, 300)
	far := h.hostile(t, 600)

	detonate(h.w, h.ctx, 0, 310, 530)
	if got := h.unit(t, near).Health; got != 50 {
		t.Fatalf("near hostile health = %d, want 50", got)
	}
	if got := h.unit(t, far).Health; got != 100 {
		t.Fatalf("far hostile health = %d, want 100", got)
	}
}

func TestExplosionPlaysOut(t *testing.T) {
	h := newHarness(t)
	e, err := h.f.Explosion(h.w, 100, 100)
	if err != nil {
		t.Fatalf("Explosion: %v", err)
	}
	h.run(15, Input{}, NewExplosionSystem())
	if !h.w.IsAlive(e) {
		t.Fatalf("explosion removed early")
	}
	h.run(1, Input{}, NewExplosionSystem())
	if h.w.IsAlive(e) {
		t.Fatalf("explosion outlived its frames")
	}
}

func TestAISeesPlayerAndAttacks(t *testing.T) {
	h := newHarness(t)
	h.player(t, 600)
	enemy := h.hostile(t, 400)
	x := h.transform(t, enemy).X

	events := h.run(1, Input{}, NewAISystem())
	ai, _ := ecs.Get(h.w, enemy, component.AIComponent.Kind())
	if ai.State != component.AIAttack {
		t.Fatalf("state = %s, want attack", ai.State)
	}
	if got := h.transform(t, enemy).X; got != x {
		t.Fatalf("attacking hostile moved from %v to %v", x, got)
	}
	if countEvents(events, EventShoot) != 1 || h.unit(t, enemy).Ammo != 19 {
		t.Fatalf("hostile did not fire")
	}
	anim, _ := ecs.Get(h.w, enemy, component.AnimationComponent.Kind())
	if anim.State != component.AnimAttack {
		t.Fatalf("animation = %s, want Attack", anim.State)
	}
}

func TestAIPatrol(t *testing.T) {
	cases := []struct {
		name       string
		x          float64
		frames     int
		wantDX     float64
		wantFacing float64
		wantCount  int
	}{
		{"single_step", 700, 1, 3, 1, 1},
		{"turns_after_limit", 700, 41, 123, -1, -41},
		{"wall_flip", 1175, 1, 0, -1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			h.player(t, 100)
			enemy := h.hostile(t, c.x)
			x := h.transform(t, enemy).X

			h.run(c.frames, Input{}, NewAISystem())
			u := h.unit(t, enemy)
			ai, _ := ecs.Get(h.w, enemy, component.AIComponent.Kind())
			if got := h.transform(t, enemy).X - x; got != c.wantDX {
				t.Fatalf("moved %v, want %v", got, c.wantDX)
			}
			if u.Facing != c.wantFacing {
				t.Fatalf("facing = %v, want %v", u.Facing, c.wantFacing)
			}
			if ai.MoveCount != c.wantCount {
				t.Fatalf("move count = %d, want %d", ai.MoveCount, c.wantCount)
			}
		})
	}
}

func TestAIIdle(t *testing.T) {
	h := newHarness(t)
	h.ctx.Rand = rand.New(rand.NewPCG(1, 2))
	h.player(t, 100)
	enemy := h.hostile(t, 700)
	ai, _ := ecs.Get(h.w, enemy, component.AIComponent.Kind())
	ai.IdleChance = 1
	x := h.transform(t, enemy).X

	h.run(1, Input{}, NewAISystem())
	if ai.State != component.AIIdle || !ai.Idling || ai.IdleTimer != ai.IdleFrames-1 {
		t.Fatalf("hostile did not start idling: %+v", ai)
	}

	ai.IdleChance = 0
	idle := 1
	for i := 0; i < ai.IdleFrames+10; i++ {
		h.run(1, Input{}, NewAISystem())
		if ai.State != component.AIIdle {
			break
		}
		if got := h.transform(t, enemy).X; got != x {
			t.Fatalf("idle hostile moved to %v", got)
		}
		idle++
	}
	if idle != ai.IdleFrames {
		t.Fatalf("idled for %d frames, want %d", idle, ai.IdleFrames)
	}
	if ai.State != component.AIPatrol || ai.Idling {
		t.Fatalf("hostile did not resume patrol: %+v", ai)
	}
}
