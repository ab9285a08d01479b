package defs

// Enemy type ids the wave formula refers to.
const (
	EnemyBasic  = "basic"
	EnemyFast   = "fast"
	EnemyStrong = "strong"
)

// WaveGroup - сколько врагов одного типа выходит в волне.
type WaveGroup struct {
	EnemyID string
	Count   int
}

// WaveConfig computes the per-type spawn counts for wave n (n >= 1):
//
//	basic  = 5 + floor(n*1.5)
//	fast   = 2 + floor((n-2)*1.2)   only for n >= 3
//	strong = 1 + floor((n-4)/2)     only for n >= 5
//
// Groups come back in a fixed order: basic, fast, strong.
func WaveConfig(n int) []WaveGroup {
	groups := []WaveGroup{{EnemyID: EnemyBasic, Count: 5 + (n*3)/2}}
	if n >= 3 {
		// (n-2)*1.2 == (n-2)*6/5, integer math keeps floor exact
		groups = append(groups, WaveGroup{EnemyID: EnemyFast, Count: 2 + ((n-2)*6)/5})
	}
	if n >= 5 {
		groups = append(groups, WaveGroup{EnemyID: EnemyStrong, Count: 1 + (n-4)/2})
	}
	return groups
}

// WaveCounts is WaveConfig as a map, convenient for lookups.
func WaveCounts(n int) map[string]int {
	counts := make(map[string]int, 3)
	for _, g := range WaveConfig(n) {
		counts[g.EnemyID] = g.Count
	}
	return counts
}

// TotalEnemies sums all groups of wave n.
func TotalEnemies(n int) int {
	total := 0
	for _, g := range WaveConfig(n) {
		total += g.Count
	}
	return total
}
