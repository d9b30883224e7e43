package refdata

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
)

// Place is the city and state a zip code resolves to.
type Place struct {
	City  string
	State string
}

type zipEntry struct {
	Cities []string `json:"cities"`
	State  string   `json:"state"`
}

// ZipTable maps five-digit zip codes to their cities and state.
type ZipTable map[string]zipEntry

// LoadZipTable reads a JSON zip table of the form
// {"90210": {"cities": ["BEVERLY HILLS"], "state": "CA"}}.
func LoadZipTable(path string) (ZipTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read zip table: %w", err)
	}
	var zt ZipTable
	if err := json.Unmarshal(data, &zt); err != nil {
		return nil, fmt.Errorf("parse zip table: %w", err)
	}
	return zt, nil
}

// Resolve returns the first listed city and the state for zip5. Unknown or
// empty zips resolve to an empty Place.
func (zt ZipTable) Resolve(zip5 string) Place {
	zip5 = strings.TrimSpace(zip5)
	if zip5 == "" {
		return Place{}
	}
	e, ok := zt[zip5]
	if !ok {
		return Place{}
	}
	p := Place{State: e.State}
	if len(e.Cities) > 0 {
		p.City = e.Cities[0]
	}
	return p
}
