package save

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"EncounterEngine/internal/dag"
	"EncounterEngine/internal/game"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	progressProperty = "progress"
	campaignProperty = "campaign"
	defaultProfile   = "pilot"
)

// Progress is the persistent record of one pilot.
type Progress struct {
	HighestStage       int   `yaml:"highestStage"`
	HighestMission     int   `yaml:"highestMission"`
	BestScore          int64 `yaml:"bestScore"`
	BestScoreStage     int   `yaml:"bestScoreStage"`
	BestCombo          int   `yaml:"bestCombo"`
	LifetimeSouls      int   `yaml:"lifetimeSouls"`
	CampaignsCompleted int   `yaml:"campaignsCompleted"`
}

// Observe folds a tick's events into the record. It reports whether any of
// them is a milestone worth writing to disk.
func (p *Progress) Observe(events []game.Event, snap game.Snapshot) bool {
	dirty := false
	for _, ev := range events {
		switch payload := ev.Payload.(type) {
		case game.BossDefeated:
			p.LifetimeSouls += payload.SecondaryReward
			dirty = true
		case game.MissionCompleted:
			if payload.Stage > p.HighestStage {
				p.HighestStage = payload.Stage
			}
			if act, idx, err := game.FindMission(payload.MissionID); err == nil {
				if n := game.MissionNumber(act, idx); n > p.HighestMission {
					p.HighestMission = n
				}
			}
			dirty = true
		case game.CampaignCompleted:
			p.CampaignsCompleted++
			dirty = true
		case game.ShipUnlocked:
			dirty = true
		}
	}
	if !dirty {
		return false
	}
	if snap.Score > p.BestScore {
		p.BestScore = snap.Score
		if snap.Boss != nil {
			p.BestScoreStage = snap.Boss.Stage
		} else {
			p.BestScoreStage = p.HighestStage
		}
	}
	if snap.MaxCombo > p.BestCombo {
		p.BestCombo = snap.MaxCombo
	}
	return true
}

// Store persists pilot records through gdata. A Store without a manager runs
// in memory only and never fails.
type Store struct {
	manager *gdata.Manager
	mu      sync.Mutex
}

// Open creates a store under the platform data directory for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open save data %q: %w", appName, err)
	}
	return NewStore(m), nil
}

// NewStore wraps an existing manager. m may be nil.
func NewStore(m *gdata.Manager) *Store {
	return &Store{manager: m}
}

// Persistent reports whether writes reach disk.
func (s *Store) Persistent() bool {
	return s != nil && s.manager != nil
}

// ProfileKey maps a client supplied name onto a safe object name.
func ProfileKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
		if b.Len() >= 32 {
			break
		}
	}
	if b.Len() == 0 {
		return defaultProfile
	}
	return b.String()
}

// LoadProgress returns the saved record, or a zero record when none exists.
func (s *Store) LoadProgress(profile string) (Progress, error) {
	var p Progress
	data, err := s.load(profile, progressProperty)
	if err != nil || data == nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Progress{}, fmt.Errorf("decode progress for %s: %w", profile, err)
	}
	return p, nil
}

// SaveProgress writes the record.
func (s *Store) SaveProgress(profile string, p Progress) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress for %s: %w", profile, err)
	}
	return s.save(profile, progressProperty, data)
}

// LoadCampaign returns the saved unlock graph state, or nil when none exists.
func (s *Store) LoadCampaign(profile string) (*dag.State, error) {
	data, err := s.load(profile, campaignProperty)
	if err != nil || data == nil {
		return nil, err
	}
	state, err := dag.LoadSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("decode campaign for %s: %w", profile, err)
	}
	return state, nil
}

// SaveCampaign writes the unlock graph state. Attempts in flight are dropped.
func (s *Store) SaveCampaign(profile string, state *dag.State) error {
	if state == nil {
		return nil
	}
	data, err := state.Snapshot()
	if err != nil {
		return fmt.Errorf("encode campaign for %s: %w", profile, err)
	}
	return s.save(profile, campaignProperty, data)
}

func (s *Store) load(profile, prop string) ([]byte, error) {
	if !s.Persistent() {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	obj := ProfileKey(profile)
	if !s.manager.ObjectPropExists(obj, prop) {
		return nil, nil
	}
	data, err := s.manager.LoadObjectProp(obj, prop)
	if err != nil {
		return nil, fmt.Errorf("load %s/%s: %w", obj, prop, err)
	}
	return data, nil
}

func (s *Store) save(profile, prop string, data []byte) error {
	if !s.Persistent() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	obj := ProfileKey(profile)
	if err := s.manager.SaveObjectProp(obj, prop, data); err != nil {
		return fmt.Errorf("save %s/%s: %w", obj, prop, err)
	}
	log.Printf("[save] wrote %s/%s (%d bytes)", obj, prop, len(data))
	return nil
}
