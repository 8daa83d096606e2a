package server

import (
	"encoding/json"

	"EncounterEngine/internal/game"
	"EncounterEngine/internal/save"
)

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// outboundMessage is every server to client frame: events, state pushes and
// errors share the same envelope.
type outboundMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type startMissionDTO struct {
	MissionID string `json:"missionId"`
}

type damageDTO struct {
	Target string        `json:"target"` // "enemy" or "boss"
	ID     game.EntityID `json:"id"`
	Amount float64       `json:"amount"`
}

type reduceHeatDTO struct {
	Amount float64 `json:"amount"`
}

type killDTO struct {
	EntityClass string        `json:"entity_class"`
	ID          game.EntityID `json:"id"`
	BaseScore   int64         `json:"base_score"`
	X           float64       `json:"x"`
	Y           float64       `json:"y"`
}

type playerDTO struct {
	X float64 `json:"x"`
}

type escapedDTO struct {
	ID game.EntityID `json:"id"`
}

type waveClearedDTO struct {
	Wave int `json:"wave"`
}

type errorDTO struct {
	Request string `json:"request"`
	Message string `json:"message"`
}

// profileDTO mirrors the persistent record for the client.
type profileDTO struct {
	Name               string `json:"name"`
	Persistent         bool   `json:"persistent"`
	HighestStage       int    `json:"highestStage"`
	HighestMission     int    `json:"highestMission"`
	BestScore          int64  `json:"bestScore"`
	BestScoreStage     int    `json:"bestScoreStage"`
	BestCombo          int    `json:"bestCombo"`
	LifetimeSouls      int    `json:"lifetimeSouls"`
	CampaignsCompleted int    `json:"campaignsCompleted"`
}

func newProfileDTO(name string, persistent bool, p save.Progress) profileDTO {
	return profileDTO{
		Name:               name,
		Persistent:         persistent,
		HighestStage:       p.HighestStage,
		HighestMission:     p.HighestMission,
		BestScore:          p.BestScore,
		BestScoreStage:     p.BestScoreStage,
		BestCombo:          p.BestCombo,
		LifetimeSouls:      p.LifetimeSouls,
		CampaignsCompleted: p.CampaignsCompleted,
	}
}

// stateDTO is the periodic state push.
type stateDTO struct {
	game.Snapshot
	Session   string     `json:"session"`
	Available []string   `json:"available"`
	Ships     []string   `json:"ships"`
	Profile   profileDTO `json:"profile"`
}

func parseEntityClass(raw string) game.EntityClass {
	if raw == "boss" {
		return game.ClassBoss
	}
	return game.ClassEnemy
}

// decodeInput maps an inbound frame onto an engine input. ok is false for
// frames that are commands rather than inputs, or that fail to decode.
func decodeInput(msg inboundMessage) (game.Input, bool, error) {
	switch msg.Type {
	case "fire":
		return game.FireInput{}, true, nil
	case "near_miss":
		return game.NearMissInput{}, true, nil
	case "player_hit":
		return game.PlayerHitInput{}, true, nil
	case "berserk":
		return game.BerserkInput{}, true, nil
	case "reduce_heat", "coolant":
		var p reduceHeatDTO
		if err := decodePayload(msg, &p); err != nil {
			return nil, false, err
		}
		return game.ReduceHeatInput{Amount: p.Amount}, true, nil
	case "damage":
		var p damageDTO
		if err := decodePayload(msg, &p); err != nil {
			return nil, false, err
		}
		return game.DamageInput{Target: parseEntityClass(p.Target), ID: p.ID, Amount: p.Amount}, true, nil
	case "kill":
		var p killDTO
		if err := decodePayload(msg, &p); err != nil {
			return nil, false, err
		}
		return game.KillInput{
			Class:     parseEntityClass(p.EntityClass),
			ID:        p.ID,
			BaseScore: p.BaseScore,
			Position:  game.Vec2{X: p.X, Y: p.Y},
		}, true, nil
	case "player":
		var p playerDTO
		if err := decodePayload(msg, &p); err != nil {
			return nil, false, err
		}
		return game.PlayerPositionInput{X: p.X}, true, nil
	case "escaped":
		var p escapedDTO
		if err := decodePayload(msg, &p); err != nil {
			return nil, false, err
		}
		return game.EscapedInput{ID: p.ID}, true, nil
	case "wave_cleared":
		var p waveClearedDTO
		if err := decodePayload(msg, &p); err != nil {
			return nil, false, err
		}
		return game.WaveClearedInput{Wave: p.Wave}, true, nil
	}
	return nil, false, nil
}

func decodePayload(msg inboundMessage, dst interface{}) error {
	if len(msg.Payload) == 0 {
		return nil
	}
	return json.Unmarshal(msg.Payload, dst)
}
