package rules

import (
	"fmt"
	"os"
	"sort"

	"github.com/harborline/clear-to-ship/internal/model"
	"gopkg.in/yaml.v3"
)

// Overlay carries extra country-specific requirements loaded from a YAML
// file, appended after the built-in table at store construction.
//
// File shape:
//
//	countries:
//	  Kenya:
//	    - document: Fumigation Certificate
//	      mandatory: "Yes"          # quote to avoid YAML boolean coercion
//	      responsibility: Shipper
//	      mode: Sea                 # optional, defaults to Any
//	      commodity: Other          # optional, defaults to Any
//	      incoterm: DAP             # optional, defaults to Any
//	      notes: Required for wooden packaging.
type Overlay struct {
	entries []overlayEntry
}

type overlayEntry struct {
	country     string
	requirement model.DocumentRequirement
}

type overlayFile struct {
	Countries map[string][]overlayRequirement `yaml:"countries"`
}

type overlayRequirement struct {
	Document       string `yaml:"document"`
	Mandatory      string `yaml:"mandatory"`
	Responsibility string `yaml:"responsibility"`
	Mode           string `yaml:"mode"`
	Commodity      string `yaml:"commodity"`
	Incoterm       string `yaml:"incoterm"`
	Notes          string `yaml:"notes"`
}

// LoadOverlay reads and validates a rules overlay file. Every entry is parsed
// through the model enum parsers, so a typo fails loudly at startup instead of
// silently never matching.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules overlay: %w", err)
	}

	var file overlayFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rules overlay: %w", err)
	}

	countries := make([]string, 0, len(file.Countries))
	for country := range file.Countries {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	overlay := &Overlay{}
	for _, country := range countries {
		for i, or := range file.Countries[country] {
			r, err := or.toRequirement()
			if err != nil {
				return nil, fmt.Errorf("rules overlay %s[%d]: %w", country, i, err)
			}
			overlay.entries = append(overlay.entries, overlayEntry{country: country, requirement: r})
		}
	}
	return overlay, nil
}

func (or overlayRequirement) toRequirement() (model.DocumentRequirement, error) {
	var r model.DocumentRequirement
	var err error

	r.Document = or.Document
	if r.Document == "" {
		return r, fmt.Errorf("document name is required")
	}

	if r.Mandatory, err = model.ParseMandatory(defaultStr(or.Mandatory, string(model.MandatoryConditional))); err != nil {
		return r, err
	}
	if r.Responsibility, err = model.ParseResponsibility(defaultStr(or.Responsibility, string(model.ResponsibilityShipper))); err != nil {
		return r, err
	}
	if r.Mode, err = model.ParseMode(defaultStr(or.Mode, string(model.ModeAny))); err != nil {
		return r, err
	}
	if r.Commodity, err = model.ParseCommodity(defaultStr(or.Commodity, string(model.CommodityAny))); err != nil {
		return r, err
	}
	if r.Incoterm, err = model.ParseIncoterm(defaultStr(or.Incoterm, string(model.IncotermAny))); err != nil {
		return r, err
	}
	r.Notes = or.Notes

	return r, nil
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
