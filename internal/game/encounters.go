package game

import (
	"fmt"
	"sync"
)

// BossStageCount is the number of tabulated boss stages.
const BossStageCount = 13

// BossDefinition is the static description of a stage boss.
type BossDefinition struct {
	Stage           int
	Name            string
	Title           string
	ShipClass       string
	MaxHealth       float64
	TotalPhases     int
	Score           int64
	SecondaryReward int
	Stationary      bool
	EnrageThreshold float64
	IntroLine       string
	DefeatLine      string
}

// Validate checks that a definition can drive a boss encounter.
func (d *BossDefinition) Validate() error {
	if d == nil {
		return fmt.Errorf("boss definition is nil")
	}
	if d.Stage < 1 {
		return fmt.Errorf("boss %q has invalid stage %d", d.Name, d.Stage)
	}
	if d.Name == "" {
		return fmt.Errorf("boss for stage %d missing name", d.Stage)
	}
	if !(d.MaxHealth > 0) {
		return fmt.Errorf("boss %s: max health must be positive", d.Name)
	}
	if d.TotalPhases < 1 || d.TotalPhases > 5 {
		return fmt.Errorf("boss %s: phases must be within 1..5, got %d", d.Name, d.TotalPhases)
	}
	if d.EnrageThreshold < 0 || d.EnrageThreshold > 1 {
		return fmt.Errorf("boss %s: enrage threshold out of range: %.2f", d.Name, d.EnrageThreshold)
	}
	return nil
}

var (
	bossMu       sync.RWMutex
	bossRegistry = map[int]BossDefinition{
		1: {
			Stage: 1, Name: "Slave Transport Overseer", Title: "Convoy Master Krador", ShipClass: "Bestower",
			MaxHealth: 500, TotalPhases: 2, Score: 5000, SecondaryReward: 50,
			EnrageThreshold: DefaultEnrageAt,
			IntroLine:       "You dare attack an Imperial transport? Foolish rebel!",
			DefeatLine:      "The slaves... they're escaping...",
		},
		2: {
			Stage: 2, Name: "Patrol Commander", Title: "Commander Sarevok", ShipClass: "Navy Omen",
			MaxHealth: 800, TotalPhases: 2, Score: 7500,
			EnrageThreshold: DefaultEnrageAt,
			IntroLine:       "Another rebel scum. I've crushed dozens like you.",
			DefeatLine:      "Impossible... a frigate...",
		},
		3: {
			Stage: 3, Name: "Station Defense Battery", Title: "Holding Facility Defense Grid", ShipClass: "Orbital Platform",
			MaxHealth: 1200, TotalPhases: 3, Score: 10000, SecondaryReward: 100, Stationary: true,
			EnrageThreshold: DefaultEnrageAt,
			IntroLine:       "Defense grid online. Eliminate hostile.",
			DefeatLine:      "Core breach... structural failure...",
		},
		4: {
			Stage: 4, Name: "Holder's Escort Fleet", Title: "Lord Holder Arzad's Guard", ShipClass: "Mixed",
			MaxHealth: 1500, TotalPhases: 3, Score: 15000, SecondaryReward: 75,
			EnrageThreshold: DefaultEnrageAt,
			IntroLine:       "You attack a Holder's estate? You will burn for this heresy!",
			DefeatLine:      "My slaves... my property... all lost...",
		},
		5: {
			Stage: 5, Name: "Imperial Customs Commandant", Title: "Commandant Torash", ShipClass: "Prophecy",
			MaxHealth: 2000, TotalPhases: 3, Score: 20000, SecondaryReward: 150,
			EnrageThreshold: DefaultEnrageAt,
			IntroLine:       "No cargo passes without Imperial inspection. Surrender.",
			DefeatLine:      "The customs... will... be avenged...",
		},
		6: {
			Stage: 6, Name: "Inquisitor Vessel", Title: "Inquisitor Malkov", ShipClass: "Prophecy Variant",
			MaxHealth: 2500, TotalPhases: 3, Score: 25000,
			EnrageThreshold: DefaultEnrageAt,
			IntroLine:       "Heretics! The Scriptures demand your purification!",
			DefeatLine:      "God... will not... forget this blasphemy...",
		},
		7: {
			Stage: 7, Name: "Navy Harbinger Strike Group", Title: "Strike Commander Venak", ShipClass: "Harbinger",
			MaxHealth: 3000, TotalPhases: 3, Score: 30000,
			EnrageThreshold: DefaultEnrageAt,
			IntroLine:       "Strike group, weapons free. Eliminate rebel contact.",
			DefeatLine:      "All ships... lost... how...",
		},
		8: {
			Stage: 8, Name: "Stargate Defense Grid", Title: "Gate Control: Sahtogas", ShipClass: "Infrastructure",
			MaxHealth: 4000, TotalPhases: 4, Score: 35000, Stationary: true,
			EnrageThreshold: DefaultEnrageAt,
			IntroLine:       "Unauthorized vessel. Activating defense protocols.",
			DefeatLine:      "Gate control... offline... rebels... have breached...",
		},
		9: {
			Stage: 9, Name: "Amarr Battlestation Core", Title: "Holding Facility Theta-7", ShipClass: "Station",
			MaxHealth: 6000, TotalPhases: 5, Score: 50000, SecondaryReward: 500, Stationary: true,
			EnrageThreshold: DefaultEnrageAt,
			IntroLine:       "Station defense grid activated. All personnel to combat stations.",
			DefeatLine:      "Reactor critical... containment failing... the slaves are free...",
		},
		10: {
			Stage: 10, Name: "Imperial Navy Armageddon", Title: "Admiral Karsoth's Hammer", ShipClass: "Armageddon",
			MaxHealth: 8000, TotalPhases: 3, Score: 75000, SecondaryReward: 200,
			EnrageThreshold: DefaultEnrageAt,
			IntroLine:       "You face the might of the Imperial Navy. Prepare for oblivion.",
			DefeatLine:      "The Armageddon... falls... this cannot be...",
		},
		11: {
			Stage: 11, Name: "Amarr Carrier", Title: "Carrier Divine Providence", ShipClass: "Archon",
			MaxHealth: 10000, TotalPhases: 4, Score: 100000, SecondaryReward: 300,
			EnrageThreshold: DefaultEnrageAt,
			IntroLine:       "Launch all fighters. Annihilate the rebel frigate.",
			DefeatLine:      "Flight deck... compromised... she's going down...",
		},
		12: {
			Stage: 12, Name: "Lord Admiral's Apocalypse", Title: "Lord Admiral Vanir", ShipClass: "Apocalypse Navy Issue",
			MaxHealth: 12000, TotalPhases: 4, Score: 150000,
			EnrageThreshold: DefaultEnrageAt,
			IntroLine:       "I have served the Empire for two hundred years. You will not take this day.",
			DefeatLine:      "My Emperor... I have... failed...",
		},
		13: {
			Stage: 13, Name: "Avatar-class Titan", Title: "Imperial Titan Empress's Wrath", ShipClass: "Avatar",
			MaxHealth: 25000, TotalPhases: 5, Score: 500000, SecondaryReward: 1000,
			EnrageThreshold: 0.15,
			IntroLine:       "A frigate? Against a Titan? Your courage is matched only by your foolishness.",
			DefeatLine:      "The Empress's Wrath... destroyed by... a single pilot... The Empire... will remember this day...",
		},
	}
)

// GetBoss retrieves the boss definition for a stage.
func GetBoss(stage int) (*BossDefinition, error) {
	bossMu.RLock()
	defer bossMu.RUnlock()
	def, ok := bossRegistry[stage]
	if !ok {
		return nil, fmt.Errorf("boss not found: stage %d", stage)
	}
	return &def, nil
}

// BossForStage returns the definition for stage, falling back to the nearest
// tabulated stage when stage lies outside the table.
func BossForStage(stage int) BossDefinition {
	if stage < 1 {
		stage = 1
	}
	if stage > BossStageCount {
		stage = BossStageCount
	}
	def, err := GetBoss(stage)
	if err != nil {
		def, _ = GetBoss(1)
	}
	return *def
}

// SetBoss replaces a stage's definition after validating it. Tuning files use
// this to rebalance bosses at startup and on reload.
func SetBoss(def BossDefinition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	bossMu.Lock()
	bossRegistry[def.Stage] = def
	bossMu.Unlock()
	return nil
}

// PhaseThreshold returns the health fraction at which phase begins for a
// boss with total phases. Phase 1 always starts at full health.
func PhaseThreshold(phase, total int) float64 {
	if phase == 1 {
		return 1.0
	}
	switch total {
	case 2:
		if phase == 2 {
			return 0.4
		}
	case 3:
		switch phase {
		case 2:
			return 0.6
		case 3:
			return 0.3
		}
	case 4:
		switch phase {
		case 2:
			return 0.7
		case 3:
			return 0.4
		case 4:
			return 0.15
		}
	case 5:
		switch phase {
		case 2:
			return 0.75
		case 3:
			return 0.5
		case 4:
			return 0.25
		case 5:
			return 0.05
		}
	}
	return 0
}

type phaseKey struct {
	stage int
	phase int
}

// phasePatterns maps (stage, phase) to an attack pattern id.
var phasePatterns = map[phaseKey]string{
	{1, 1}: "steady_beam", {1, 2}: "spread",
	{2, 1}: "focused_beams", {2, 2}: "barrage",
	{3, 1}: "turret_barrage", {3, 2}: "ring", {3, 3}: "spiral",
	{4, 1}: "spread", {4, 2}: "laser_sweep", {4, 3}: "barrage",
	{5, 1}: "beam_sweep", {5, 2}: "spiral", {5, 3}: "ring",
	{6, 1}: "laser_sweep", {6, 2}: "barrage", {6, 3}: "spread",
	{7, 1}: "spread", {7, 2}: "mega_beam", {7, 3}: "laser_sweep",
	{8, 1}: "turret_barrage", {8, 2}: "ring", {8, 3}: "spiral", {8, 4}: "mega_beam",
	{9, 1}: "turret_barrage", {9, 2}: "ring", {9, 3}: "spiral", {9, 4}: "missile_swarm", {9, 5}: "mega_beam",
	{10, 1}: "laser_sweep", {10, 2}: "mega_beam", {10, 3}: "desperate_spray",
	{11, 1}: "drone_swarm", {11, 2}: "spread", {11, 3}: "ring", {11, 4}: "missile_swarm",
	{12, 1}: "laser_sweep", {12, 2}: "mega_beam", {12, 3}: "barrage", {12, 4}: "desperate_spray",
	{13, 1}: "spread", {13, 2}: "ring", {13, 3}: "spiral", {13, 4}: "mega_beam", {13, 5}: "doomsday",
}

// phaseFallback is used when a (stage, phase) pair is not tabulated.
var phaseFallback = map[int]string{
	1: "steady_beam",
	2: "spread",
	3: "laser_sweep",
	4: "ring",
	5: "doomsday",
}

// PatternIDFor returns the attack pattern id for a boss stage and phase.
func PatternIDFor(stage, phase int) string {
	if id, ok := phasePatterns[phaseKey{stage, phase}]; ok {
		return id
	}
	if id, ok := phaseFallback[phase]; ok {
		return id
	}
	return "steady_beam"
}
