package game

import (
	"fmt"
)

// Act is a campaign tier, numbered from 1.
type Act int

const (
	Act1 Act = iota + 1
	Act2
	Act3
)

// actInfo is the display data for an act.
type actInfo struct {
	Name        string
	Catchphrase string
	Description string
}

var actRegistry = map[Act]actInfo{
	Act1: {"THE CALL", "In Rust We Trust!", "Prove yourself worthy in a rust-bucket Rifter. Early raids on slave convoys."},
	Act2: {"THE STORM", "No more rust - just steel!", "The invasion begins in earnest. You've earned an assault frigate."},
	Act3: {"LIBERATION", "For Freedom! For the Republic!", "The final push. Strike at the heart of the Empire."},
}

func (a Act) Name() string        { return actRegistry[a].Name }
func (a Act) Catchphrase() string { return actRegistry[a].Catchphrase }
func (a Act) Description() string { return actRegistry[a].Description }

// Next returns the following act, or false at the end of the campaign.
func (a Act) Next() (Act, bool) {
	if _, ok := actRegistry[a+1]; ok {
		return a + 1, true
	}
	return a, false
}

// Missions returns the act's mission table.
func (a Act) Missions() []MissionDefinition {
	return MissionRegistry[a]
}

// MissionDefinition is static campaign data.
type MissionDefinition struct {
	ID               string
	Name             string
	Description      string
	PrimaryObjective string
	BonusObjective   string
	Bonus            BonusSpec
	BossStage        int
	EnemyWaves       int
	SoulsTarget      int
}

// MissionRegistry holds the campaign missions keyed by act.
var MissionRegistry = map[Act][]MissionDefinition{
	Act1: {
		{
			ID: "m1_convoy_raid", Name: "FIRST BLOOD",
			Description:      "Intercept a slave transport in the Arzad corridor.",
			PrimaryObjective: "Destroy the slave transport",
			BonusObjective:   "Liberate 10+ slaves",
			Bonus:            BonusSpec{Kind: BonusSouls, Threshold: 10},
			BossStage:        1, EnemyWaves: 3, SoulsTarget: 10,
		},
		{
			ID: "m2_patrol_ambush", Name: "HUNTER HUNTED",
			Description:      "Amarr patrols hunt our scouts. Turn the tables.",
			PrimaryObjective: "Destroy all patrol ships",
			BonusObjective:   "No damage taken",
			Bonus:            BonusSpec{Kind: BonusNoDamage},
			BossStage:        2, EnemyWaves: 4, SoulsTarget: 5,
		},
		{
			ID: "m3_station_raid", Name: "STATION RAID",
			Description:      "Disable orbital station defenses for extraction teams.",
			PrimaryObjective: "Destroy defense turrets",
			BonusObjective:   "Liberate 30+ slaves",
			Bonus:            BonusSpec{Kind: BonusSouls, Threshold: 30},
			BossStage:        3, EnemyWaves: 5, SoulsTarget: 30,
		},
		{
			ID: "m4_holder_escape", Name: "THE HOLDER'S FLIGHT",
			Description:      "A slave lord flees with his 'property.' End his escape.",
			PrimaryObjective: "Destroy the Holder's escort",
			BonusObjective:   "Complete in under 3 minutes",
			Bonus:            BonusSpec{Kind: BonusTimeLimit, Threshold: 180},
			BossStage:        4, EnemyWaves: 4, SoulsTarget: 20,
		},
	},
	Act2: {
		{
			ID: "m5_customs_strike", Name: "CUSTOMS CLEARANCE",
			Description:      "Imperial Customs bleeds our supply lines. Remove them.",
			PrimaryObjective: "Destroy the Customs station",
			BonusObjective:   "Destroy all cargo pods",
			Bonus:            BonusSpec{Kind: BonusAllEnemies},
			BossStage:        5, EnemyWaves: 5, SoulsTarget: 15,
		},
		{
			ID: "m6_inquisition", Name: "DIVINE JUDGMENT",
			Description:      "The Inquisition sends a vessel to 'cleanse' liberated systems.",
			PrimaryObjective: "Destroy the Inquisitor vessel",
			BonusObjective:   "No allied losses",
			Bonus:            BonusSpec{Kind: BonusNoDamage},
			BossStage:        6, EnemyWaves: 6, SoulsTarget: 25,
		},
		{
			ID: "m7_navy_battle", Name: "BREAKING THE LINE",
			Description:      "A Navy Harbinger strike group threatens our liberation fleet.",
			PrimaryObjective: "Destroy the strike lead",
			BonusObjective:   "Destroy all escorts first",
			Bonus:            BonusSpec{Kind: BonusAllEnemies},
			BossStage:        7, EnemyWaves: 6, SoulsTarget: 20,
		},
		{
			ID: "m8_stargate", Name: "GATE CRASHERS",
			Description:      "The stargate to Arzad Prime is heavily fortified.",
			PrimaryObjective: "Disable the gate defenses",
			BonusObjective:   "Under 4 minutes",
			Bonus:            BonusSpec{Kind: BonusTimeLimit, Threshold: 240},
			BossStage:        8, EnemyWaves: 7, SoulsTarget: 30,
		},
		{
			ID: "m9_battlestation", Name: "PURITY'S LIGHT",
			Description:      "An Amarr battlestation guards the slave processing hub.",
			PrimaryObjective: "Destroy the battlestation core",
			BonusObjective:   "Liberate 50+ slaves",
			Bonus:            BonusSpec{Kind: BonusSouls, Threshold: 50},
			BossStage:        9, EnemyWaves: 8, SoulsTarget: 50,
		},
	},
	Act3: {
		{
			ID: "m10_abaddon", Name: "GOLDEN FLEET",
			Description:      "The Amarr Navy deploys Abaddon battleships to stop our advance.",
			PrimaryObjective: "Destroy the Abaddon flagship",
			BonusObjective:   "No damage taken in phase 1",
			Bonus:            BonusSpec{Kind: BonusNoDamage},
			BossStage:        10, EnemyWaves: 8, SoulsTarget: 40,
		},
		{
			ID: "m11_titan_escort", Name: "TITAN'S SHADOW",
			Description:      "The Avatar titan's escort fleet blocks the approach.",
			PrimaryObjective: "Clear the escort fleet",
			BonusObjective:   "Destroy all in one chain",
			Bonus:            BonusSpec{Kind: BonusCombo, Threshold: 30},
			BossStage:        11, EnemyWaves: 9, SoulsTarget: 50,
		},
		{
			ID: "m12_champion", Name: "IMPERIAL CHAMPION",
			Description:      "The Empress's personal champion challenges you.",
			PrimaryObjective: "Defeat the champion",
			BonusObjective:   "Perfect no-damage victory",
			Bonus:            BonusSpec{Kind: BonusNoDamage},
			BossStage:        12, EnemyWaves: 7, SoulsTarget: 30,
		},
		{
			ID: "m13_avatar", Name: "AVATAR",
			Description:      "The Avatar titan. The symbol of Amarr oppression. End it.",
			PrimaryObjective: "Destroy the Avatar",
			BonusObjective:   "Complete the liberation",
			Bonus:            BonusSpec{Kind: BonusSouls, Threshold: 100},
			BossStage:        13, EnemyWaves: 10, SoulsTarget: 100,
		},
	},
}

// GetMission retrieves a mission by act and 0-based index.
func GetMission(act Act, index int) (*MissionDefinition, error) {
	missions, ok := MissionRegistry[act]
	if !ok {
		return nil, fmt.Errorf("act not found: %d", act)
	}
	if index < 0 || index >= len(missions) {
		return nil, fmt.Errorf("mission not found: act %d index %d", act, index)
	}
	m := missions[index]
	return &m, nil
}

// MissionAt returns the mission at (act, index), clamping out-of-range
// coordinates to the nearest defined entry.
func MissionAt(act Act, index int) MissionDefinition {
	if act < Act1 {
		act = Act1
	}
	if act > Act3 {
		act = Act3
	}
	missions := MissionRegistry[act]
	if index < 0 {
		index = 0
	}
	if index >= len(missions) {
		index = len(missions) - 1
	}
	return missions[index]
}

// FindMission locates a mission by id.
func FindMission(id string) (Act, int, error) {
	for act := Act1; act <= Act3; act++ {
		for i, m := range MissionRegistry[act] {
			if m.ID == id {
				return act, i, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("mission not found: %s", id)
}

// MissionNumber returns the 1-based campaign-wide position of (act, index).
func MissionNumber(act Act, index int) int {
	n := 0
	for a := Act1; a < act; a++ {
		n += len(MissionRegistry[a])
	}
	return n + index + 1
}

// TotalMissions counts missions across every act.
func TotalMissions() int {
	n := 0
	for act := Act1; act <= Act3; act++ {
		n += len(MissionRegistry[act])
	}
	return n
}

// Validate checks a mission's references.
func (m *MissionDefinition) Validate() error {
	if m == nil {
		return fmt.Errorf("mission is nil")
	}
	if m.ID == "" {
		return fmt.Errorf("mission ID cannot be empty")
	}
	if m.Name == "" {
		return fmt.Errorf("mission %s missing display name", m.ID)
	}
	if m.EnemyWaves < 1 {
		return fmt.Errorf("mission %s needs at least one wave", m.ID)
	}
	if _, err := GetBoss(m.BossStage); err != nil {
		return fmt.Errorf("mission %s: %w", m.ID, err)
	}
	return nil
}

// ValidateTables checks every static table once at boot.
func ValidateTables() error {
	seen := map[string]bool{}
	for act := Act1; act <= Act3; act++ {
		missions := MissionRegistry[act]
		if len(missions) == 0 {
			return fmt.Errorf("act %d has no missions", act)
		}
		for i := range missions {
			m := missions[i]
			if err := m.Validate(); err != nil {
				return err
			}
			if seen[m.ID] {
				return fmt.Errorf("duplicate mission id: %s", m.ID)
			}
			seen[m.ID] = true
		}
	}
	for stage := 1; stage <= BossStageCount; stage++ {
		def, err := GetBoss(stage)
		if err != nil {
			return err
		}
		if err := def.Validate(); err != nil {
			return err
		}
	}
	return nil
}
