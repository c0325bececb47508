package components

import (
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/yohamta/donburi"
)

// Effect is the behavior an obstacle invokes on a boat it collides with.
// Amount means heal/damage points, speed multiplier, damage scale or time
// credit seconds depending on Kind.
type Effect struct {
	Kind     cfg.EffectKind
	Amount   float64
	Duration float64 // seconds, timed kinds only
}

// EffectFromDef converts a catalogue entry into an Effect.
func EffectFromDef(def cfg.EffectDef) Effect {
	return Effect{Kind: def.Kind, Amount: def.Amount, Duration: def.Duration}
}

// TimedEffect is an installed modifier counting down to expiry.
type TimedEffect struct {
	Magnitude float64
	Remaining float64 // seconds
}

// ActiveEffectsData holds at most one timed modifier per kind.
type ActiveEffectsData struct {
	Timed map[cfg.EffectKind]*TimedEffect
}

// Install adds a timed modifier, replacing any active one of the same kind.
// Reapplication refreshes duration and magnitude; it never stacks.
func (a *ActiveEffectsData) Install(kind cfg.EffectKind, magnitude, duration float64) {
	if a.Timed == nil {
		a.Timed = make(map[cfg.EffectKind]*TimedEffect)
	}
	a.Timed[kind] = &TimedEffect{Magnitude: magnitude, Remaining: duration}
}

// Active returns the modifier of the given kind, if any.
func (a *ActiveEffectsData) Active(kind cfg.EffectKind) (*TimedEffect, bool) {
	te, ok := a.Timed[kind]
	return te, ok
}

// Tick counts every modifier down by dt and drops the expired ones.
// It returns the kinds that expired this tick.
func (a *ActiveEffectsData) Tick(dt float64) []cfg.EffectKind {
	var expired []cfg.EffectKind
	for kind, te := range a.Timed {
		te.Remaining -= dt
		if te.Remaining <= 0 {
			expired = append(expired, kind)
		}
	}
	for _, kind := range expired {
		delete(a.Timed, kind)
	}
	return expired
}

// Invulnerable reports whether damage is currently ignored.
func (a *ActiveEffectsData) Invulnerable() bool {
	_, ok := a.Timed[cfg.EffectInvulnerable]
	return ok
}

// SpeedMultiplier returns the factor applied to the boat's max speed.
func (a *ActiveEffectsData) SpeedMultiplier() float64 {
	if te, ok := a.Timed[cfg.EffectSpeedUp]; ok {
		return te.Magnitude
	}
	return 1
}

// DamageScale returns the factor applied to incoming damage.
func (a *ActiveEffectsData) DamageScale() float64 {
	if te, ok := a.Timed[cfg.EffectLessDamage]; ok {
		return te.Magnitude
	}
	return 1
}

var ActiveEffects = donburi.NewComponentType[ActiveEffectsData]()
