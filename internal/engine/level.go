package engine

// Barakah leveling curve. The cost to cross from level L to L+1 is
// (L+1) * 50 points, so each additional level costs 50 points more than
// the one before it: super-linear, not exponential.
const (
	// LevelFloor is the lowest level a profile can have. Zero points is
	// still level 1.
	LevelFloor = 1

	// LevelCap is the highest reachable level. Points keep accumulating
	// past the cap but the level stays put.
	LevelCap = 10

	levelCostStep = 50
)

// levelTitles maps each level 1..LevelCap to its display title.
var levelTitles = [LevelCap]string{
	"Seeker",
	"Student",
	"Devoted",
	"Consistent",
	"Steadfast",
	"Dedicated",
	"Radiant",
	"Guided",
	"Luminous",
	"Sage of Barakah",
}

// LevelUpCost returns the points needed to go from level to level+1.
func LevelUpCost(level int) int {
	if level < LevelFloor {
		level = LevelFloor
	}
	return (level + 1) * levelCostStep
}

// PointsForLevel returns the cumulative Barakah point threshold required
// to be at the given level. Level 1 (and below) requires 0 points;
// level 2 requires 100, level 3 requires 250, and so on.
func PointsForLevel(level int) int {
	if level <= LevelFloor {
		return 0
	}
	if level > LevelCap {
		level = LevelCap
	}
	total := 0
	for i := LevelFloor; i < level; i++ {
		total += LevelUpCost(i)
	}
	return total
}

// LevelForPoints returns the highest level (capped at LevelCap) whose
// cumulative threshold does not exceed points. Never below LevelFloor.
func LevelForPoints(points int) int {
	level := LevelFloor
	for level < LevelCap && points >= PointsForLevel(level+1) {
		level++
	}
	return level
}

// LevelProgress describes position within the current level.
type LevelProgress struct {
	// Current is points earned since crossing into the current level.
	Current int `json:"current"`
	// Required is the cost of the next level-up; 0 at the cap.
	Required int `json:"required"`
	// Percentage is Current/Required * 100, clamped to [0, 100].
	// Reports 100 at the cap.
	Percentage int `json:"percentage"`
}

// ProgressForPoints computes progress within the level implied by points.
func ProgressForPoints(points int) LevelProgress {
	if points < 0 {
		points = 0
	}
	level := LevelForPoints(points)
	current := points - PointsForLevel(level)
	if level >= LevelCap {
		return LevelProgress{Current: current, Required: 0, Percentage: 100}
	}
	required := LevelUpCost(level)
	pct := current * 100 / required
	if pct > 100 {
		pct = 100
	}
	return LevelProgress{Current: current, Required: required, Percentage: pct}
}

// LevelTitle returns the display title for a level. Out-of-range levels
// clamp to the nearest table entry, so anything past the cap reports the
// highest title.
func LevelTitle(level int) string {
	if level < LevelFloor {
		level = LevelFloor
	}
	if level > LevelCap {
		level = LevelCap
	}
	return levelTitles[level-1]
}
