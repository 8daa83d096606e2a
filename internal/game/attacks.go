package game

import (
	"fmt"
	"math"
)

// AttackKind is the tagged variant of a boss attack pattern.
type AttackKind int

const (
	AttackAimed    AttackKind = iota // single aimed shot
	AttackSpread                     // fan toward the player
	AttackSpiral                     // rotating ring segment
	AttackRing                       // full expanding ring
	AttackBarrage                    // tight aimed cluster
	AttackSweep                      // oscillating downward fan
	AttackWall                       // straight-down heavy wall
	AttackSpray                      // fixed downward spray
	AttackLanes                      // three parallel sweeping lanes
	AttackSwarm                      // homing missiles
	AttackDoomsday                   // ring plus aimed beam
)

var attackKindNames = [...]string{
	"aimed", "spread", "spiral", "ring", "barrage", "sweep",
	"wall", "spray", "lanes", "swarm", "doomsday",
}

func (k AttackKind) String() string {
	if k < 0 || int(k) >= len(attackKindNames) {
		return "unknown"
	}
	return attackKindNames[k]
}

// AttackPattern describes one boss attack.
type AttackPattern struct {
	ID           string
	Kind         AttackKind
	Interval     float64 // seconds between bursts at fire rate 1
	Count        int
	EnragedCount int
	Speed        float64
	Damage       float64
	Spacing      float64 // radians between spread bullets
	Homing       bool
}

// ProjectileSpawn is one boss bullet the host should create.
type ProjectileSpawn struct {
	Pos    Vec2    `json:"pos"`
	Dir    Vec2    `json:"dir"`
	Speed  float64 `json:"speed"`
	Damage float64 `json:"damage"`
	Homing bool    `json:"homing,omitempty"`
}

// AttackPatternRegistry holds every attack pattern keyed by id.
var AttackPatternRegistry = map[string]AttackPattern{
	"steady_beam":     {ID: "steady_beam", Kind: AttackAimed, Interval: 0.8, Count: 1, EnragedCount: 1, Speed: 250, Damage: 20},
	"focused_beams":   {ID: "focused_beams", Kind: AttackAimed, Interval: 0.8, Count: 1, EnragedCount: 1, Speed: 250, Damage: 20},
	"spread":          {ID: "spread", Kind: AttackSpread, Interval: 1.0, Count: 7, EnragedCount: 11, Speed: 200, Damage: 12, Spacing: 0.18},
	"spiral":          {ID: "spiral", Kind: AttackSpiral, Interval: 0.25, Count: 8, EnragedCount: 8, Speed: 150, Damage: 10},
	"ring":            {ID: "ring", Kind: AttackRing, Interval: 2.0, Count: 16, EnragedCount: 16, Speed: 120, Damage: 8},
	"barrage":         {ID: "barrage", Kind: AttackBarrage, Interval: 0.5, Count: 5, EnragedCount: 5, Speed: 280, Damage: 15},
	"laser_sweep":     {ID: "laser_sweep", Kind: AttackSweep, Interval: 0.35, Count: 5, EnragedCount: 5, Speed: 320, Damage: 18, Spacing: 0.15},
	"mega_beam":       {ID: "mega_beam", Kind: AttackWall, Interval: 1.5, Count: 5, EnragedCount: 5, Speed: 100, Damage: 25},
	"desperate_spray": {ID: "desperate_spray", Kind: AttackSpray, Interval: 0.5, Count: 5, EnragedCount: 9, Speed: 200, Damage: 15},
	"turret_barrage":  {ID: "turret_barrage", Kind: AttackSpray, Interval: 0.5, Count: 5, EnragedCount: 9, Speed: 200, Damage: 15},
	"beam_sweep":      {ID: "beam_sweep", Kind: AttackLanes, Interval: 0.3, Count: 3, EnragedCount: 3, Speed: 300, Damage: 15},
	"purifying_beams": {ID: "purifying_beams", Kind: AttackLanes, Interval: 0.3, Count: 3, EnragedCount: 3, Speed: 300, Damage: 15},
	"drone_swarm":     {ID: "drone_swarm", Kind: AttackSwarm, Interval: 1.2, Count: 3, EnragedCount: 5, Speed: 180, Damage: 20, Homing: true},
	"missile_swarm":   {ID: "missile_swarm", Kind: AttackSwarm, Interval: 1.2, Count: 3, EnragedCount: 5, Speed: 180, Damage: 20, Homing: true},
	"doomsday":        {ID: "doomsday", Kind: AttackDoomsday, Interval: 3.0, Count: 24, EnragedCount: 24, Speed: 80, Damage: 15},
}

// defaultAttack fires when a pattern id is unknown.
var defaultAttack = AttackPattern{ID: "default", Kind: AttackAimed, Interval: 0.6, Count: 1, EnragedCount: 1, Speed: 220, Damage: 18}

// GetAttackPattern retrieves an attack pattern by id.
func GetAttackPattern(id string) (*AttackPattern, error) {
	p, ok := AttackPatternRegistry[id]
	if !ok {
		return nil, fmt.Errorf("attack pattern not found: %s", id)
	}
	return &p, nil
}

// PatternFor resolves the attack pattern for a boss stage and phase.
func PatternFor(stage, phase int) AttackPattern {
	p, err := GetAttackPattern(PatternIDFor(stage, phase))
	if err != nil {
		return defaultAttack
	}
	return *p
}

func aimAt(origin, target Vec2) Vec2 {
	dir := target.Sub(origin).Normalize()
	if dir == (Vec2{}) {
		return Vec2{0, 1}
	}
	return dir
}

// down builds a downward-leaning unit vector tilted by angle radians.
func down(angle float64) Vec2 { return Vec2{math.Sin(angle), math.Cos(angle)} }

// Burst lays out the projectiles of one firing. t is the boss's battle clock
// and drives the rotating and sweeping patterns.
func (p AttackPattern) Burst(origin, target Vec2, phase int, enraged bool, t float64) []ProjectileSpawn {
	count := p.Count
	if enraged && p.EnragedCount > 0 {
		count = p.EnragedCount
	}
	shot := func(pos, dir Vec2) ProjectileSpawn {
		return ProjectileSpawn{Pos: pos, Dir: dir, Speed: p.Speed, Damage: p.Damage, Homing: p.Homing}
	}
	var out []ProjectileSpawn
	switch p.Kind {
	case AttackAimed:
		dir := aimAt(origin, target)
		out = append(out, shot(origin.Add(dir.Scale(ProjectileMuzzle)), dir))
	case AttackSpread:
		base := aimAt(origin, target)
		baseAngle := math.Atan2(base.Y, base.X)
		for i := 0; i < count; i++ {
			offset := (float64(i) - float64(count-1)/2) * p.Spacing
			dir := FromAngle(baseAngle + offset)
			out = append(out, shot(origin.Add(dir.Scale(ProjectileMuzzle)), dir))
		}
	case AttackSpiral:
		base := t * 2.5
		for i := 0; i < count; i++ {
			out = append(out, shot(origin, FromAngle(base+float64(i)*2*math.Pi/float64(count))))
		}
	case AttackRing:
		n := count + 4*phase
		for i := 0; i < n; i++ {
			out = append(out, shot(origin, FromAngle(float64(i)/float64(n)*2*math.Pi)))
		}
	case AttackBarrage:
		dir := aimAt(origin, target)
		mid := float64(count-1) / 2
		for i := 0; i < count; i++ {
			k := float64(i) - mid
			bullet := Vec2{dir.X + k*0.08, dir.Y}.Normalize()
			out = append(out, shot(origin.Add(Vec2{k * 15, 30}), bullet))
		}
	case AttackSweep:
		sweep := math.Sin(t*2) * 0.8
		half := count / 2
		for i := -half; i <= half; i++ {
			out = append(out, shot(origin.Add(Vec2{float64(i) * 30, 30}), down(sweep+float64(i)*p.Spacing)))
		}
	case AttackWall:
		mid := float64(count-1) / 2
		for i := 0; i < count; i++ {
			out = append(out, shot(origin.Add(Vec2{(float64(i) - mid) * 50, ProjectileMuzzle}), Vec2{0, 1}))
		}
	case AttackSpray:
		for i := 0; i < count; i++ {
			dir := down(-0.6 + float64(i)*1.2/float64(count))
			out = append(out, shot(origin.Add(dir.Scale(ProjectileMuzzle)), dir))
		}
	case AttackLanes:
		dir := Vec2{math.Sin(t*3) * 0.6, 1}.Normalize()
		for _, offset := range []float64{-30, 0, 30} {
			out = append(out, shot(origin.Add(Vec2{offset, 30}), dir))
		}
	case AttackSwarm:
		dir := aimAt(origin, target)
		mid := float64(count-1) / 2
		for i := 0; i < count; i++ {
			out = append(out, shot(origin.Add(Vec2{(float64(i) - mid) * 20, 20}), dir))
		}
	case AttackDoomsday:
		for i := 0; i < count; i++ {
			out = append(out, shot(origin, FromAngle(float64(i)/float64(count)*2*math.Pi)))
		}
		dir := aimAt(origin, target)
		for i := 0; i < 7; i++ {
			out = append(out, ProjectileSpawn{
				Pos:    origin.Add(dir.Scale(30 + float64(i)*10)),
				Dir:    dir,
				Speed:  400,
				Damage: 30,
			})
		}
	}
	return out
}
