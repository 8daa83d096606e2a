package game

// EntityClass distinguishes wave enemies from the active boss.
type EntityClass int

const (
	ClassEnemy EntityClass = iota
	ClassBoss
)

func (c EntityClass) String() string {
	if c == ClassBoss {
		return "boss"
	}
	return "enemy"
}

// Input is an event delivered to the engine by an external collaborator.
type Input interface {
	isInput()
}

// DamageInput reports a collision carrying damage.
type DamageInput struct {
	Target EntityClass
	ID     EntityID
	Amount float64
}

// KillInput reports a destruction decided outside the engine, for example a
// kamikaze that rammed the player. BaseScore 0 means use the archetype value.
type KillInput struct {
	Class     EntityClass
	ID        EntityID
	BaseScore int64
	Position  Vec2
}

// FireInput marks that the player fired this tick.
type FireInput struct{}

// NearMissInput reports a projectile grazing the player.
type NearMissInput struct{}

// PlayerHitInput reports that the player took damage.
type PlayerHitInput struct{}

// PlayerPositionInput updates the X coordinate bosses aim and chase toward.
type PlayerPositionInput struct {
	X float64
}

// BerserkInput requests manual berserk activation.
type BerserkInput struct{}

// ReduceHeatInput vents weapon heat, e.g. from a coolant pickup.
type ReduceHeatInput struct {
	Amount float64
}

// EscapedInput reports an enemy leaving the play field without dying.
type EscapedInput struct {
	ID EntityID
}

// WaveClearedInput is an externally detected wave clearance.
type WaveClearedInput struct {
	Wave int
}

func (DamageInput) isInput()         {}
func (KillInput) isInput()           {}
func (FireInput) isInput()           {}
func (NearMissInput) isInput()       {}
func (PlayerHitInput) isInput()      {}
func (PlayerPositionInput) isInput() {}
func (BerserkInput) isInput()        {}
func (ReduceHeatInput) isInput()     {}
func (EscapedInput) isInput()        {}
func (WaveClearedInput) isInput()    {}
