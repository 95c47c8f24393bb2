package investigator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/coc-api/internal/engine/improvement"
	"github.com/KirkDiggler/coc-api/internal/engine/rules"
	"github.com/KirkDiggler/coc-api/internal/errors"
	rolllog "github.com/KirkDiggler/coc-api/internal/repositories/roll_log"
)

func (o *orchestrator) MarkForImprovement(
	ctx context.Context,
	input *MarkForImprovementInput,
) (*MarkForImprovementOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := o.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if ch.SkillIndex(input.SkillID) < 0 {
		return nil, skillNotFound(input.ID, input.SkillID)
	}

	skills, applied := improvement.MarkForImprovement(ch.Skills, input.SkillID, input.Marked)
	if !applied {
		return &MarkForImprovementOutput{Character: ch, Applied: false}, nil
	}

	next := ch.Clone()
	next.Skills = skills

	stored, err := o.save(ctx, next)
	if err != nil {
		return nil, err
	}

	return &MarkForImprovementOutput{Character: stored, Applied: true}, nil
}

func (o *orchestrator) ImproveSkill(
	ctx context.Context,
	input *ImproveSkillInput,
) (*ImproveSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	mode := input.Mode
	if mode == "" {
		mode = ImprovementModeRoll
	}
	if mode != ImprovementModeRoll && mode != ImprovementModeManual {
		return nil, errors.InvalidArgumentf("unknown improvement mode %q", input.Mode)
	}

	ch, err := o.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	idx := ch.SkillIndex(input.SkillID)
	if idx < 0 {
		return nil, skillNotFound(input.ID, input.SkillID)
	}
	skill := ch.Skills[idx]
	if !skill.MarkedForImprovement {
		return nil, errors.FailedPreconditionf("skill %s is not marked for improvement", skill.ID).
			WithMeta("investigator_id", ch.ID).
			WithMeta("skill_id", skill.ID)
	}

	resolver, err := improvement.NewResolver(&improvement.Config{Roller: o.roller}, skill)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create improvement resolver")
	}

	if mode == ImprovementModeManual {
		err = resolver.EnterManual(input.Amount)
	} else {
		err = o.runRolls(resolver, input.CancelOnFailure)
	}
	if err != nil {
		return nil, err
	}

	out := &ImproveSkillOutput{
		Character: ch,
		Skill:     skill,
		State:     resolver.State(),
		CheckRoll: resolver.CheckRoll(),
		Succeeded: resolver.Succeeded(),
		Increment: resolver.Increment(),
		Rolls:     resolver.Rolls(),
	}

	o.logRolls(ctx, ch.ID, improvementEntries(skill.Name, resolver.Rolls()))

	if resolver.State() == improvement.StateCanceled {
		slog.DebugContext(ctx, "improvement canceled",
			"investigator_id", ch.ID,
			"skill_id", skill.ID,
			"check_roll", out.CheckRoll)
		return out, nil
	}

	improved, err := resolver.Apply()
	if err != nil {
		return nil, err
	}

	next := ch.Clone()
	next.Skills[idx] = improved

	stored, err := o.save(ctx, rules.Recompute(next))
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "skill improvement resolved",
		"investigator_id", stored.ID,
		"skill_id", improved.ID,
		"mode", mode,
		"increment", improved.ImprovementAmount)

	out.Character = stored
	out.Skill = stored.Skills[idx]
	return out, nil
}

// runRolls drives a resolver down the dice path to Done or Canceled
func (o *orchestrator) runRolls(r *improvement.Resolver, cancelOnFailure bool) error {
	if err := r.StartRoll(); err != nil {
		return err
	}

	_, ok, err := r.RollCheck()
	if err != nil {
		return errors.Wrap(err, "failed to roll improvement check")
	}

	if !ok {
		if cancelOnFailure {
			return r.Cancel()
		}
		return r.ConfirmFailure()
	}

	if err := r.Continue(); err != nil {
		return err
	}
	if _, err := r.RollIncrement(); err != nil {
		return errors.Wrap(err, "failed to roll improvement increment")
	}
	return nil
}

func improvementEntries(skillName string, rolls []improvement.Roll) []rolllog.Entry {
	entries := make([]rolllog.Entry, 0, len(rolls))
	for _, r := range rolls {
		e := rolllog.Entry{
			Context: rolllog.ContextImprovement,
			Dice:    r.Dice,
			Total:   r.Result,
		}
		switch r.Kind {
		case improvement.RollKindCheck:
			e.Label = fmt.Sprintf("%s check", skillName)
			e.Notation = "1d100"
		case improvement.RollKindIncrement:
			e.Label = fmt.Sprintf("%s increment", skillName)
			e.Notation = "1d10"
		}
		entries = append(entries, e)
	}
	return entries
}

func (o *orchestrator) ClearImprovements(
	ctx context.Context,
	input *ClearImprovementsInput,
) (*ClearImprovementsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := o.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	next := ch.Clone()
	next.Skills = improvement.ClearImprovementFlags(ch.Skills)

	stored, err := o.save(ctx, next)
	if err != nil {
		return nil, err
	}

	return &ClearImprovementsOutput{Character: stored}, nil
}

func (o *orchestrator) GetRollLog(
	ctx context.Context,
	input *GetRollLogInput,
) (*GetRollLogOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("investigator ID is required")
	}

	out, err := o.rollLog.Get(ctx, rolllog.GetInput{InvestigatorID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get roll log")
	}

	return &GetRollLogOutput{Log: out.Log}, nil
}

func (o *orchestrator) ClearRollLog(
	ctx context.Context,
	input *ClearRollLogInput,
) (*ClearRollLogOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("investigator ID is required")
	}

	out, err := o.rollLog.Clear(ctx, rolllog.ClearInput{InvestigatorID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to clear roll log")
	}

	return &ClearRollLogOutput{EntriesDeleted: out.EntriesDeleted}, nil
}
