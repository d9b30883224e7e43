package refdata

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// Producer is the writing agent's contact profile.
type Producer struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	AddressLine1 string `json:"address_line1"`
	AddressCity  string `json:"address_city"`
	AddressState string `json:"address_state"`
	AddressZip5  string `json:"address_zip5"`

	// WritingNumbers maps a carrier key (aetna, allstate, uhc) to the
	// producer's writing number with that carrier.
	WritingNumbers map[string]string `json:"writing_numbers"`
}

// WritingNumber returns the producer number for a carrier key, or "".
func (p Producer) WritingNumber(carrierKey string) string {
	return p.WritingNumbers[carrierKey]
}

// LoadProducer reads the producer profile JSON file.
func LoadProducer(path string) (Producer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Producer{}, fmt.Errorf("read producer config: %w", err)
	}
	var p Producer
	if err := json.Unmarshal(data, &p); err != nil {
		return Producer{}, fmt.Errorf("parse producer config: %w", err)
	}
	return p, nil
}
