package systems

import (
	"github.com/automoto/dragonboat-race/components"
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/yohamta/donburi"
)

// InvokeEffect applies an effect to a boat. It returns false when the effect
// was suppressed (damage while invulnerable).
func InvokeEffect(boat *donburi.Entry, effect components.Effect) bool {
	health := components.Health.Get(boat)
	active := components.ActiveEffects.Get(boat)
	data := components.Boat.Get(boat)

	switch effect.Kind {
	case cfg.EffectHeal:
		health.Current += effect.Amount
		health.Clamp()

	case cfg.EffectDamage:
		if active.Invulnerable() {
			return false
		}
		health.Current -= effect.Amount * active.DamageScale()
		health.Clamp()
		if health.Current <= 0 {
			data.Eliminated = true
		}

	case cfg.EffectInvulnerable, cfg.EffectSpeedUp, cfg.EffectLessDamage:
		active.Install(effect.Kind, effect.Amount, effect.Duration)

	case cfg.EffectLessTime:
		data.TimeCredit += effect.Amount
	}

	return true
}

// tickEffects counts down the boat's timed modifiers and reverts the stats
// of the ones that expired.
func tickEffects(boat *donburi.Entry, dt float64) {
	active := components.ActiveEffects.Get(boat)
	for _, kind := range active.Tick(dt) {
		if kind != cfg.EffectSpeedUp {
			continue
		}
		// Expired boost: speed drops back under the unboosted cap.
		tr := components.Transform.Get(boat)
		stats := components.Boat.Get(boat).Stats
		if tr.Velocity.Y > stats.MaxSpeed*active.SpeedMultiplier() {
			tr.Velocity.Y = stats.MaxSpeed * active.SpeedMultiplier()
		}
	}
}
