package model

// Carrier identifies the insurer whose submission schema is the formatting target.
type Carrier string

const (
	UnitedHealthcare Carrier = "UnitedHealthcare"
	Aetna            Carrier = "Aetna"
	Allstate         Carrier = "Allstate"
	Chubb            Carrier = "Chubb"

	// ACE is an alias of Chubb and shares its formatter.
	ACE Carrier = "ACE"
)

// AllCarriers lists the supported carrier names in canonical order.
var AllCarriers = []Carrier{UnitedHealthcare, Aetna, Allstate, Chubb, ACE}

// defaultNAICCarriers maps the NAIC numbers applications are filed under to carriers.
var defaultNAICCarriers = map[string]Carrier{
	"79413": UnitedHealthcare,
	"78700": Aetna,
	"72052": Aetna,
	"68500": Aetna,
	"60380": Allstate,
	"82538": Allstate,
	"20699": Chubb,
}

// CarrierByName returns the Carrier for an exact carrier name, or ok=false.
func CarrierByName(name string) (Carrier, bool) {
	for _, c := range AllCarriers {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// NAICCarriers resolves NAIC numbers to carriers.
type NAICCarriers map[string]Carrier

// DefaultNAICCarriers returns a fresh copy of the built-in NAIC map.
func DefaultNAICCarriers() NAICCarriers {
	m := make(NAICCarriers, len(defaultNAICCarriers))
	for k, v := range defaultNAICCarriers {
		m[k] = v
	}
	return m
}

// Carrier returns the carrier filed under naic, or ok=false.
func (m NAICCarriers) Carrier(naic string) (Carrier, bool) {
	c, ok := m[naic]
	return c, ok
}

// CarrierByNAIC resolves a NAIC number using the built-in map.
func CarrierByNAIC(naic string) (Carrier, bool) {
	c, ok := defaultNAICCarriers[naic]
	return c, ok
}
