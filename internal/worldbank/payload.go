package worldbank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// The API answers with a two-element array: paging metadata, then records.
// Errors come back as a one-element array holding a message.

type classification struct {
	ID string `json:"id"`
}

type countryRecord struct {
	Name        string         `json:"name"`
	CapitalCity string         `json:"capitalCity"`
	IncomeLevel classification `json:"incomeLevel"`
	Region      classification `json:"region"`
}

type observation struct {
	Value *float64 `json:"value"`
	Date  string   `json:"date"`
}

// notApplicable marks aggregate pseudo-entities in classification fields.
const notApplicable = "NA"

// records extracts the second element of a payload.
func records(body []byte) (json.RawMessage, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(body, &parts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: %d elements", ErrMalformedPayload, len(parts))
	}

	second := bytes.TrimSpace(parts[1])
	if len(second) == 0 || bytes.Equal(second, []byte("null")) || bytes.Equal(second, []byte("[]")) {
		return nil, ErrEmptyPayload
	}

	return second, nil
}

// decodeCountries keeps real countries and returns their names sorted.
func decodeCountries(body []byte) ([]string, error) {
	raw, err := records(body)
	if err != nil {
		return nil, err
	}

	var list []countryRecord
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	names := make([]string, 0, len(list))

	for _, rec := range list {
		if rec.CapitalCity == "" || rec.IncomeLevel.ID == notApplicable || rec.Region.ID == notApplicable {
			continue
		}

		names = append(names, rec.Name)
	}

	if len(names) == 0 {
		return nil, ErrEmptyPayload
	}

	sort.Strings(names)

	return names, nil
}

// decodeLatest returns the first non-null value. Entries arrive most recent
// first.
func decodeLatest(body []byte) (float64, bool, error) {
	raw, err := records(body)
	if err != nil {
		return 0, false, err
	}

	var list []observation
	if err := json.Unmarshal(raw, &list); err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	for _, obs := range list {
		if obs.Value != nil {
			return *obs.Value, true, nil
		}
	}

	return 0, false, nil
}
