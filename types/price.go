package types

// PriceModifier is a conditionally-applicable multiplicative price
// adjustment. Empty filter lists apply universally. Composition is
// multiplicative, so modifier order never matters.
type PriceModifier struct {
	ID            string
	ItemTags      []string // empty = any item
	LocationTypes []string // empty = any location type
	Regions       []string // empty = any region
	Conditions    []PriceCondition
	Multiplier    Range
}

// PricingContext carries the economy-facing facts a modifier's conditions
// evaluate against.
type PricingContext struct {
	LocationType    string
	Region          string
	ActiveEvents    []string
	Season          string
	FactionTensions map[string]float64
	Population      int
	DangerLevel     float64
	Features        []string
}

// PriceCondition is the closed set of pricing predicates. A nil condition
// evaluates true (permissive): the loader drops unknown authored condition
// types with a warning rather than rejecting the modifier.
type PriceCondition interface {
	priceCondition()
}

// EventActive is true while the named world event is active.
type EventActive struct {
	Event string
}

// SeasonIs is true during the named season.
type SeasonIs struct {
	Season string
}

// PopulationBelow is true when the location population is under Max.
type PopulationBelow struct {
	Max int
}

// DangerAbove is true when the location danger level exceeds Min.
type DangerAbove struct {
	Min float64
}

// TensionAbove is true when faction tension exceeds Min. An empty Faction
// matches any faction whose tension exceeds Min.
type TensionAbove struct {
	Faction string
	Min     float64
}

// HasFeature is true when the location has the named feature.
type HasFeature struct {
	Feature string
}

func (EventActive) priceCondition()     {}
func (SeasonIs) priceCondition()        {}
func (PopulationBelow) priceCondition() {}
func (DangerAbove) priceCondition()     {}
func (TensionAbove) priceCondition()    {}
func (HasFeature) priceCondition()      {}
