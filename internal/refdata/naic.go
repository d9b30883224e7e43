package refdata

import (
	"fmt"
	"os"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/medsupp/appformat/internal/company"
)

// LoadNAICDirectory reads the company directory. Both a list of
// {"name", "naic"} objects and a flat {"name": "naic"} object are accepted.
func LoadNAICDirectory(path string) ([]company.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read naic directory: %w", err)
	}

	var list []company.Entry
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("parse naic directory: %w", err)
	}
	names := make([]string, 0, len(flat))
	for name := range flat {
		names = append(names, name)
	}
	sort.Strings(names)
	list = make([]company.Entry, 0, len(flat))
	for _, name := range names {
		list = append(list, company.Entry{Name: name, Code: flat[name]})
	}
	return list, nil
}
