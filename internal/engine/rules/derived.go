package rules

// combatBuckets are the STR+SIZ upper bounds shared by damage bonus and build
var combatBuckets = []struct {
	upTo        int
	damageBonus string
	build       int
}{
	{64, "-2", -2},
	{84, "-1", -1},
	{124, "0", 0},
	{164, "+1D4", 1},
	{204, "+1D6", 2},
}

// top bucket for anything above the last bound
const (
	topDamageBonus = "+2D6"
	topBuild       = 3
)

// bucket returns the index of the STR+SIZ bucket, len(combatBuckets) for the top one
func bucket(str, siz int) int {
	sum := str + siz
	for i, b := range combatBuckets {
		if sum <= b.upTo {
			return i
		}
	}
	return len(combatBuckets)
}

// DamageBonus returns the damage bonus dice expression for STR and SIZ
func DamageBonus(str, siz int) string {
	i := bucket(str, siz)
	if i == len(combatBuckets) {
		return topDamageBonus
	}
	return combatBuckets[i].damageBonus
}

// Build returns the build value for STR and SIZ
func Build(str, siz int) int {
	i := bucket(str, siz)
	if i == len(combatBuckets) {
		return topBuild
	}
	return combatBuckets[i].build
}

// ageThresholds each cost one point of movement once reached
var ageThresholds = []int{40, 50, 60, 70, 80}

// Movement returns the MOV rate
func Movement(dex, str, siz, age int) int {
	mov := 8
	switch {
	case dex < siz && str < siz:
		mov = 7
	case dex > siz && str > siz:
		mov = 9
	}

	for _, threshold := range ageThresholds {
		if age >= threshold {
			mov--
		}
	}

	if mov < 1 {
		return 1
	}
	return mov
}

// HitPoints returns maximum hit points
func HitPoints(con, siz int) int {
	return floorDiv(con+siz, 10)
}

// MagicPoints returns maximum magic points
func MagicPoints(pow int) int {
	return floorDiv(pow, 5) * 3
}

// Dodge returns the base Dodge skill
func Dodge(dex int) int {
	return floorDiv(dex, 2)
}

// SanityCeiling is the most sanity an investigator can hold given Cthulhu Mythos knowledge
func SanityCeiling(mythos int) int {
	ceiling := 99 - mythos
	if ceiling < 0 {
		return 0
	}
	return ceiling
}
