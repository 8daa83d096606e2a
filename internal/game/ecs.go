package game

import "sort"

type EntityID int64

type ComponentKey string

// World tracks the live non-boss enemies the engine has requested.
// Rendering and physics own the actual objects; the world only keeps what the
// engine needs to resolve damage, kills and wave clearance.
type World struct {
	nextEntity EntityID
	components map[ComponentKey]map[EntityID]any
}

type Transform struct {
	Pos Vec2
	Vel Vec2
}

// EnemyComponent carries the combat data of a spawned wave enemy.
type EnemyComponent struct {
	TypeID    int
	Name      string
	Health    float64
	MaxHealth float64
	Score     int64
	Wave      int
	Behavior  EnemyBehavior
}

const (
	CompTransform ComponentKey = "transform"
	CompEnemy     ComponentKey = "enemy"
)

func NewWorld() *World {
	return &World{
		components: make(map[ComponentKey]map[EntityID]any),
	}
}

func (w *World) Transform(id EntityID) *Transform {
	if v, ok := w.GetComponent(id, CompTransform); ok {
		if t, ok := v.(*Transform); ok {
			return t
		}
	}
	return nil
}

func (w *World) Enemy(id EntityID) *EnemyComponent {
	if v, ok := w.GetComponent(id, CompEnemy); ok {
		if e, ok := v.(*EnemyComponent); ok {
			return e
		}
	}
	return nil
}

func (w *World) NewEntity() EntityID {
	w.nextEntity++
	return w.nextEntity
}

func (w *World) SetComponent(id EntityID, key ComponentKey, value any) {
	store, ok := w.components[key]
	if !ok {
		store = make(map[EntityID]any)
		w.components[key] = store
	}
	store[id] = value
}

func (w *World) GetComponent(id EntityID, key ComponentKey) (any, bool) {
	if store, ok := w.components[key]; ok {
		val, ok := store[id]
		return val, ok
	}
	return nil, false
}

func (w *World) RemoveEntity(id EntityID) {
	for _, store := range w.components {
		delete(store, id)
	}
}

// ForEach visits entities holding every required component in ascending id
// order so that simulation output does not depend on map iteration.
func (w *World) ForEach(required []ComponentKey, fn func(EntityID)) {
	if len(required) == 0 {
		return
	}
	first := w.components[required[0]]
	if first == nil {
		return
	}
	ids := make([]EntityID, 0, len(first))
	for id := range first {
		match := true
		for _, key := range required[1:] {
			if store := w.components[key]; store == nil {
				match = false
				break
			} else if _, ok := store[id]; !ok {
				match = false
				break
			}
		}
		if match {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		fn(id)
	}
}

// SpawnEnemy registers a wave enemy at pos and returns its id.
func (w *World) SpawnEnemy(arch EnemyArchetype, wave int, behavior EnemyBehavior, pos Vec2) EntityID {
	id := w.NewEntity()
	w.SetComponent(id, CompTransform, &Transform{Pos: pos})
	w.SetComponent(id, CompEnemy, &EnemyComponent{
		TypeID:    arch.TypeID,
		Name:      arch.Name,
		Health:    arch.Health,
		MaxHealth: arch.Health,
		Score:     arch.Score,
		Wave:      wave,
		Behavior:  behavior,
	})
	return id
}

// CountWave returns how many tracked enemies belong to the given wave.
func (w *World) CountWave(wave int) int {
	n := 0
	for _, v := range w.components[CompEnemy] {
		if e, ok := v.(*EnemyComponent); ok && e.Wave == wave {
			n++
		}
	}
	return n
}

// EnemyCount returns the number of tracked enemies.
func (w *World) EnemyCount() int {
	return len(w.components[CompEnemy])
}

// Clear drops every tracked entity while keeping id allocation monotonic.
func (w *World) Clear() {
	w.components = make(map[ComponentKey]map[EntityID]any)
}
