package game

// comboTiers is ordered from the highest threshold down.
var comboTiers = []struct {
	Min  int
	Mult float64
}{
	{50, 3.0},
	{20, 2.0},
	{10, 1.5},
	{5, 1.2},
}

var comboTierNames = []struct {
	Min  int
	Name string
}{
	{100, "GODLIKE!"},
	{50, "UNSTOPPABLE!"},
	{30, "RAMPAGE!"},
	{20, "DOMINATING!"},
	{10, "KILLING SPREE!"},
	{5, "COMBO!"},
}

// ComboMultiplier returns the score multiplier for a combo count.
func ComboMultiplier(count int) float64 {
	for _, tier := range comboTiers {
		if count >= tier.Min {
			return tier.Mult
		}
	}
	return 1.0
}

// ComboTierName returns the announcer name for a combo count, or "".
func ComboTierName(count int) string {
	for _, tier := range comboTierNames {
		if count >= tier.Min {
			return tier.Name
		}
	}
	return ""
}

// ComboState tracks a chain of kills inside a rolling window.
type ComboState struct {
	Count int
	Timer float64 // seconds before the chain breaks
	Max   int     // best chain, updated when a chain ends
}

// OnKill extends the chain and returns the new multiplier.
func (c *ComboState) OnKill(timeout float64) float64 {
	c.Count++
	c.Timer = timeout
	return ComboMultiplier(c.Count)
}

// Tick runs the chain timer. decay scales how fast it drains.
// Returns true when the chain broke this tick.
func (c *ComboState) Tick(dt, decay float64) bool {
	if c.Count <= 0 || dt <= 0 {
		return false
	}
	if decay <= 0 {
		decay = 1
	}
	c.Timer -= dt * decay
	if c.Timer > 0 {
		return false
	}
	if c.Count > c.Max {
		c.Max = c.Count
	}
	c.Count = 0
	c.Timer = 0
	return true
}

// Best returns the best chain including one still running.
func (c *ComboState) Best() int {
	if c.Count > c.Max {
		return c.Count
	}
	return c.Max
}

// TimerPercent returns the remaining window as a 0..1 fraction.
func (c *ComboState) TimerPercent(timeout float64) float64 {
	if c.Count <= 0 || timeout <= 0 {
		return 0
	}
	return Clamp(c.Timer/timeout, 0, 1)
}
