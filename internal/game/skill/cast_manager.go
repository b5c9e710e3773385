package skill

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/autoplay/internal/data"
	"github.com/udisondev/autoplay/internal/model"
)

var (
	ErrNotLearned    = errors.New("skill not learned")
	ErrPassive       = errors.New("cannot cast passive skill")
	ErrDead          = errors.New("cannot cast while dead")
	ErrBusy          = errors.New("caster is busy")
	ErrNotEnoughSP   = errors.New("not enough SP")
	ErrNoReagent     = errors.New("missing reagent")
	ErrInvalidTarget = errors.New("invalid target")
	ErrOutOfRange    = errors.New("target out of range")
)

// TargetResolver finds hostile cast targets.
type TargetResolver interface {
	GetMonster(objectID uint32) (*model.Monster, bool)
}

// CastManager handles skill casting: validation, SP and reagent consumption,
// caster status and action locks.
//
// Cast resolves instantly; CastTime becomes the caster's cast lock and
// CastTime+AfterCast the global delay.
type CastManager struct {
	targets TargetResolver
	now     func() time.Time
}

// NewCastManager creates a CastManager. now == nil uses time.Now.
func NewCastManager(targets TargetResolver, now func() time.Time) *CastManager {
	if now == nil {
		now = time.Now
	}
	return &CastManager{targets: targets, now: now}
}

// Cast casts skillID at level on an object: the caster itself for self and
// area-around-caster skills, a live hostile for single-target skills.
func (cm *CastManager) Cast(caster *model.Player, skillID, level int32, targetID uint32) error {
	tmpl, err := cm.validate(caster, skillID, level)
	if err != nil {
		return err
	}

	var mob *model.Monster
	switch tmpl.TargetType {
	case data.TargetSelf, data.TargetAura:
		if targetID != 0 && targetID != caster.ObjectID() {
			return fmt.Errorf("%w: skill %d targets the caster", ErrInvalidTarget, skillID)
		}
	case data.TargetGround:
		return fmt.Errorf("%w: skill %d needs a ground cell", ErrInvalidTarget, skillID)
	default:
		m, ok := cm.targets.GetMonster(targetID)
		if !ok || m.IsDead() {
			return fmt.Errorf("%w: object %d", ErrInvalidTarget, targetID)
		}
		if !inRange(caster.Location(), m.Location(), tmpl.Range) {
			return fmt.Errorf("%w: skill %d object %d", ErrOutOfRange, skillID, targetID)
		}
		mob = m
	}

	cm.apply(caster, tmpl)
	if mob != nil {
		mob.SetTarget(caster.ObjectID())
	}

	slog.Debug("skill cast",
		"caster", caster.Name(),
		"skill", tmpl.Name,
		"skillID", skillID,
		"level", level,
		"target", targetID)
	return nil
}

// CastAt casts a ground skill at loc.
func (cm *CastManager) CastAt(caster *model.Player, skillID, level int32, loc model.Location) error {
	tmpl, err := cm.validate(caster, skillID, level)
	if err != nil {
		return err
	}
	if tmpl.TargetType != data.TargetGround {
		return fmt.Errorf("%w: skill %d is not a ground skill", ErrInvalidTarget, skillID)
	}
	if !inRange(caster.Location(), loc, tmpl.Range) {
		return fmt.Errorf("%w: skill %d cell (%d, %d)", ErrOutOfRange, skillID, loc.X, loc.Y)
	}

	cm.apply(caster, tmpl)

	slog.Debug("ground skill cast",
		"caster", caster.Name(),
		"skill", tmpl.Name,
		"skillID", skillID,
		"level", level,
		"x", loc.X,
		"y", loc.Y)
	return nil
}

func (cm *CastManager) validate(caster *model.Player, skillID, level int32) (*data.SkillTemplate, error) {
	learned := caster.SkillLevel(skillID)
	if learned == 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotLearned, skillID)
	}
	if level <= 0 || level > learned {
		return nil, fmt.Errorf("%w: %d level %d (learned %d)", ErrNotLearned, skillID, level, learned)
	}

	tmpl := data.GetSkillTemplate(skillID, level)
	if tmpl == nil {
		return nil, fmt.Errorf("skill template not found: %d L%d", skillID, level)
	}
	if tmpl.IsPassive() {
		return nil, fmt.Errorf("%w: %d", ErrPassive, skillID)
	}
	if caster.IsDead() {
		return nil, ErrDead
	}

	now := cm.now()
	if caster.CastLockUntil().After(now) || caster.CanActAt().After(now) {
		return nil, ErrBusy
	}
	if caster.CurrentSP() < tmpl.SPCost {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrNotEnoughSP, tmpl.SPCost, caster.CurrentSP())
	}
	if tmpl.ItemConsume > 0 && caster.Inventory().FindByItemID(tmpl.ItemConsume) < 0 {
		return nil, fmt.Errorf("%w: item %d", ErrNoReagent, tmpl.ItemConsume)
	}
	return tmpl, nil
}

// apply consumes resources and sets locks. Validation must have passed.
func (cm *CastManager) apply(caster *model.Player, tmpl *data.SkillTemplate) {
	now := cm.now()

	caster.ConsumeSP(tmpl.SPCost)
	if tmpl.ItemConsume > 0 {
		if slot := caster.Inventory().FindByItemID(tmpl.ItemConsume); slot >= 0 {
			_, _ = caster.Inventory().Consume(slot)
		}
	}

	if tmpl.IsBuff() {
		var expires time.Time
		if tmpl.Duration > 0 {
			expires = now.Add(tmpl.Duration)
		}
		caster.AddStatus(tmpl.Status, expires)
	}

	if tmpl.CastTime > 0 {
		caster.SetCastLockUntil(now.Add(tmpl.CastTime))
	}
	if d := tmpl.CastTime + tmpl.AfterCast; d > 0 {
		caster.SetCanActAt(now.Add(d))
	}
}

// inRange checks Chebyshev distance; range 0 means melee (1 cell).
func inRange(from, to model.Location, rng int32) bool {
	return from.InSquare(to, max(rng, 1))
}
