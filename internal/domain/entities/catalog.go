package entities

// AddOnKind tags a catalog entry as a flat charge or a rush modifier.
type AddOnKind string

const (
	AddOnFlat AddOnKind = "flat"
	AddOnRush AddOnKind = "rush"
)

// AddOn is a catalog entry. Flat entries use Price and PerDay; rush entries use Multiplier.
type AddOn struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Kind       AddOnKind `json:"kind"`
	Price      float64   `json:"price,omitempty"`
	PerDay     bool      `json:"per_day,omitempty"`
	Multiplier float64   `json:"multiplier,omitempty"`
}

func NewFlatAddOn(id, name string, price float64, perDay bool) AddOn {
	return AddOn{ID: id, Name: name, Kind: AddOnFlat, Price: price, PerDay: perDay}
}

func NewRushAddOn(id, name string, multiplier float64) AddOn {
	return AddOn{ID: id, Name: name, Kind: AddOnRush, Multiplier: multiplier}
}

// VideoRates prices deliverables: the first item uses Base, every later one Additional,
// and each minute past the first costs PerMinute.
type VideoRates struct {
	Base       float64 `json:"base" yaml:"base"`
	Additional float64 `json:"additional" yaml:"additional"`
	PerMinute  float64 `json:"per_minute" yaml:"per_minute"`
}

// Catalog is the closed set of add-ons offered plus the video rate card.
type Catalog struct {
	AddOns     []AddOn    `json:"addons"`
	VideoRates VideoRates `json:"video_rates"`
}

// Lookup returns the add-on with the given id.
func (c Catalog) Lookup(id string) (AddOn, bool) {
	for _, a := range c.AddOns {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}
