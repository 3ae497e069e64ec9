package component

type ShipDesign uint8

const (
	DesignStreak ShipDesign = iota
	DesignFighter
	DesignUFO

	ShipDesignCount
)

func (d ShipDesign) String() string {
	switch d {
	case DesignStreak:
		return "streak"
	case DesignFighter:
		return "fighter"
	case DesignUFO:
		return "ufo"
	}
	return "unknown"
}

type Spaceship struct {
	Design     ShipDesign
	LightPhase float64
}
