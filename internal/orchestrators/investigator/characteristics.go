package investigator

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/coc-api/internal/engine/rules"
	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-api/internal/errors"
	rolllog "github.com/KirkDiggler/coc-api/internal/repositories/roll_log"
)

// LuckLabel names the luck roll among the characteristic rolls
const LuckLabel = "Luck"

// characteristicRoll describes how one value is rolled: count d6, plus bonus, times 5
type characteristicRoll struct {
	label    string
	notation string
	count    int
	bonus    int
}

var (
	threeD6      = characteristicRoll{count: 3, notation: "3d6*5"}
	twoD6PlusSix = characteristicRoll{count: 2, bonus: 6, notation: "(2d6+6)*5"}
)

// creationRolls lists the rolls in sheet order, luck last
var creationRolls = []characteristicRoll{
	threeD6.named(string(coc.STR)),
	threeD6.named(string(coc.CON)),
	twoD6PlusSix.named(string(coc.SIZ)),
	threeD6.named(string(coc.DEX)),
	threeD6.named(string(coc.APP)),
	twoD6PlusSix.named(string(coc.INT)),
	threeD6.named(string(coc.POW)),
	twoD6PlusSix.named(string(coc.EDU)),
	threeD6.named(LuckLabel),
}

func (r characteristicRoll) named(label string) characteristicRoll {
	r.label = label
	return r
}

func (o *orchestrator) UpdateCharacteristics(
	ctx context.Context,
	input *UpdateCharacteristicsInput,
) (*UpdateCharacteristicsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := o.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	update := rules.CharacteristicUpdate{
		Values: make(map[coc.Characteristic]int, len(input.Values)),
		Age:    input.Age,
	}
	for name, raw := range input.Values {
		stat, ok := coc.ParseCharacteristic(string(name))
		if !ok {
			return nil, errors.InvalidArgumentf("unknown characteristic %q", name)
		}
		current := ch.Characteristics.Get(stat).Value
		update.Values[stat] = rules.ParseCharacteristic(raw, current)
	}

	stored, err := o.save(ctx, rules.ApplyCharacteristics(ch, update))
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "characteristics updated",
		"investigator_id", stored.ID,
		"count", len(update.Values))

	return &UpdateCharacteristicsOutput{Character: stored}, nil
}

func (o *orchestrator) RollCharacteristics(
	ctx context.Context,
	input *RollCharacteristicsInput,
) (*RollCharacteristicsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := o.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	rolled := make([]RolledValue, 0, len(creationRolls))
	update := rules.CharacteristicUpdate{Values: make(map[coc.Characteristic]int, len(coc.AllCharacteristics))}
	luck := ch.Luck.Current

	for _, r := range creationRolls {
		faces, err := o.roller.RollN(r.count, 6)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", r.label)
		}

		sum := r.bonus
		for _, f := range faces {
			sum += f
		}
		value := sum * 5

		rolled = append(rolled, RolledValue{
			Name:     r.label,
			Notation: r.notation,
			Dice:     faces,
			Value:    value,
		})

		if stat, ok := coc.ParseCharacteristic(r.label); ok {
			update.Values[stat] = value
		} else {
			luck = value
		}
	}

	next := rules.ApplyCharacteristics(ch, update)
	next.Luck.Current = min(luck, next.Luck.Max)
	next = rules.Refill(next)

	stored, err := o.save(ctx, next)
	if err != nil {
		return nil, err
	}

	o.logRolls(ctx, stored.ID, rolledEntries(rolled))

	slog.InfoContext(ctx, "characteristics rolled", "investigator_id", stored.ID)

	return &RollCharacteristicsOutput{Character: stored, Rolls: rolled}, nil
}

func rolledEntries(rolled []RolledValue) []rolllog.Entry {
	entries := make([]rolllog.Entry, 0, len(rolled))
	for _, r := range rolled {
		entries = append(entries, rolllog.Entry{
			Context:  rolllog.ContextCharacteristics,
			Label:    r.Name,
			Notation: r.Notation,
			Dice:     r.Dice,
			Total:    r.Value,
		})
	}
	return entries
}

// logRolls records rolls for an investigator. Failures are logged and otherwise ignored.
func (o *orchestrator) logRolls(ctx context.Context, id string, entries []rolllog.Entry) {
	if len(entries) == 0 {
		return
	}

	if _, err := o.rollLog.Append(ctx, rolllog.AppendInput{InvestigatorID: id, Entries: entries}); err != nil {
		slog.WarnContext(ctx, "failed to append to roll log",
			"investigator_id", id,
			"count", len(entries),
			"error", err.Error())
	}
}
