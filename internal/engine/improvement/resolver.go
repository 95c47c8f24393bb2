// Package improvement resolves the end-of-session development check of a skill.
//
// A Resolver is a forward-only state machine over one skill:
//
//	Initial ──manual──────────────────────────────> Done
//	Initial ──StartRoll──> RollCheck ──RollCheck──> CheckResult
//	CheckResult ──failure: ConfirmFailure──> Done (no gain)
//	CheckResult ──failure: Cancel──> Canceled
//	CheckResult ──success: Continue──> RollIncrement ──RollIncrement──> Done
//
// Nothing is written to the skill until the machine is Done; a fresh Resolver has no
// memory of earlier attempts beyond the flags stored on the skill.
package improvement

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-api/internal/errors"
)

// State of a resolver
type State string

const (
	StateInitial       State = "initial"
	StateRollCheck     State = "roll_check"
	StateCheckResult   State = "check_result"
	StateRollIncrement State = "roll_increment"
	StateDone          State = "done"
	StateCanceled      State = "canceled"
)

// RollKind labels the dice a resolver threw
type RollKind string

const (
	RollKindCheck     RollKind = "check"
	RollKindIncrement RollKind = "increment"
)

// Roll is one throw made by a resolver
type Roll struct {
	Kind   RollKind
	Dice   []int
	Result int
}

// Config holds the dependencies for a resolver
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Resolver runs one improvement attempt
type Resolver struct {
	roller dice.Roller
	skill  coc.Skill
	state  State

	check     int
	success   bool
	increment int
	rolls     []Roll
}

// NewResolver starts an attempt for skill in the Initial state
func NewResolver(cfg *Config, skill coc.Skill) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Resolver{roller: cfg.Roller, skill: skill, state: StateInitial}, nil
}

// State returns the current state
func (r *Resolver) State() State { return r.state }

// CheckRoll returns the percentile result once the check has been rolled
func (r *Resolver) CheckRoll() int { return r.check }

// Succeeded reports whether the check roll beat the skill
func (r *Resolver) Succeeded() bool { return r.success }

// Increment returns the amount the skill gains once Done
func (r *Resolver) Increment() int { return r.increment }

// Rolls returns every throw made so far
func (r *Resolver) Rolls() []Roll {
	return append([]Roll(nil), r.rolls...)
}

func (r *Resolver) expect(state State, action string) error {
	if r.state != state {
		return errors.FailedPreconditionf("cannot %s while %s", action, r.state).
			WithMeta("skill_id", r.skill.ID)
	}
	return nil
}

// EnterManual applies a typed increment directly. Negative amounts count as zero.
func (r *Resolver) EnterManual(amount int) error {
	if err := r.expect(StateInitial, "enter a manual increment"); err != nil {
		return err
	}

	r.increment = max(0, amount)
	r.success = r.increment > 0
	r.state = StateDone
	return nil
}

// StartRoll chooses the dice path
func (r *Resolver) StartRoll() error {
	if err := r.expect(StateInitial, "start rolling"); err != nil {
		return err
	}

	r.state = StateRollCheck
	return nil
}

// RollCheck throws the percentile dice against the skill's current value
func (r *Resolver) RollCheck() (int, bool, error) {
	if err := r.expect(StateRollCheck, "roll the check"); err != nil {
		return 0, false, err
	}

	faces, err := r.roller.RollN(2, 10)
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to roll percentile dice")
	}
	if len(faces) != 2 {
		return 0, false, errors.Internalf("expected 2 percentile dice, got %d", len(faces))
	}

	r.check = Percentile(faces[0], faces[1])
	r.success = Succeeds(r.skill.Value, r.check)
	r.rolls = append(r.rolls, Roll{Kind: RollKindCheck, Dice: faces, Result: r.check})
	r.state = StateCheckResult
	return r.check, r.success, nil
}

// Continue moves a successful check on to the increment roll
func (r *Resolver) Continue() error {
	if err := r.expect(StateCheckResult, "continue"); err != nil {
		return err
	}
	if !r.success {
		return errors.FailedPrecondition("check failed, nothing to roll").WithMeta("skill_id", r.skill.ID)
	}

	r.state = StateRollIncrement
	return nil
}

// ConfirmFailure records a failed check with no gain
func (r *Resolver) ConfirmFailure() error {
	if err := r.expect(StateCheckResult, "confirm the failure"); err != nil {
		return err
	}
	if r.success {
		return errors.FailedPrecondition("check succeeded, roll the increment").WithMeta("skill_id", r.skill.ID)
	}

	r.increment = 0
	r.state = StateDone
	return nil
}

// Cancel abandons the attempt without touching the skill
func (r *Resolver) Cancel() error {
	if r.state == StateDone || r.state == StateCanceled {
		return errors.FailedPreconditionf("cannot cancel while %s", r.state).WithMeta("skill_id", r.skill.ID)
	}

	r.state = StateCanceled
	return nil
}

// RollIncrement throws the d10 for the gain; a face of 0 reads as 10
func (r *Resolver) RollIncrement() (int, error) {
	if err := r.expect(StateRollIncrement, "roll the increment"); err != nil {
		return 0, err
	}

	face, err := r.roller.Roll(10)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll increment die")
	}

	r.increment = TenSided(face)
	r.rolls = append(r.rolls, Roll{Kind: RollKindIncrement, Dice: []int{face}, Result: r.increment})
	r.state = StateDone
	return r.increment, nil
}

// Apply returns the skill with the outcome written in. It fails unless the
// attempt is Done.
func (r *Resolver) Apply() (coc.Skill, error) {
	if err := r.expect(StateDone, "apply the result"); err != nil {
		return r.skill, err
	}

	out := r.skill
	out.Value += r.increment
	out.ImprovementChecked = true
	out.ImprovementSuccess = r.increment > 0
	out.ImprovementAmount = r.increment
	return out, nil
}

// Percentile combines a tens die and a units die (faces 0-9, 10 read as 0).
// Double zero is 100.
func Percentile(tens, units int) int {
	v := (tens%10)*10 + units%10
	if v == 0 {
		return 100
	}
	return v
}

// TenSided reads a d10 face where 0 counts as 10
func TenSided(face int) int {
	face %= 10
	if face == 0 {
		return 10
	}
	return face
}

// Succeeds applies the development rule: above 95 only 96-100 improves, otherwise the
// roll must beat the current value
func Succeeds(value, roll int) bool {
	if value > 95 {
		return roll >= 96 && roll <= 100
	}
	return roll > value
}
