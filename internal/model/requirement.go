// Package model defines the core data structures for the clear-to-ship application.
package model

import (
	"fmt"

	"github.com/harborline/clear-to-ship/internal/common"
)

// Mandatory indicates whether a requirement always applies or needs judgment.
type Mandatory string

// Mandatory values.
const (
	MandatoryYes         Mandatory = "Yes"
	MandatoryConditional Mandatory = "Conditional"
)

// Responsibility identifies the party expected to produce a document.
type Responsibility string

// Responsibility values.
const (
	ResponsibilityShipper  Responsibility = "Shipper"
	ResponsibilityImporter Responsibility = "Importer"
	ResponsibilityShared   Responsibility = "Shared"
)

// Mode is a transport mode filter. ModeAny matches every concrete mode.
type Mode string

// Mode values.
const (
	ModeAny     Mode = "Any"
	ModeAir     Mode = "Air"
	ModeSea     Mode = "Sea"
	ModeCourier Mode = "Courier"
)

// Commodity is a commodity filter. CommodityAny matches every concrete commodity.
type Commodity string

// Commodity values.
const (
	CommodityAny         Commodity = "Any"
	CommodityElectronics Commodity = "General Electronics"
	CommodityBatteries   Commodity = "Batteries (DG)"
	CommodityChemicals   Commodity = "Chemicals (DG)"
	CommodityTelecom     Commodity = "Telecom/Radio"
	CommodityOther       Commodity = "Other"
)

// Incoterm is an international trade term filter. IncotermAny matches every term.
type Incoterm string

// Incoterm values.
const (
	IncotermAny Incoterm = "Any"
	IncotermEXW Incoterm = "EXW"
	IncotermFCA Incoterm = "FCA"
	IncotermFOB Incoterm = "FOB"
	IncotermCFR Incoterm = "CFR"
	IncotermCIF Incoterm = "CIF"
	IncotermCPT Incoterm = "CPT"
	IncotermCIP Incoterm = "CIP"
	IncotermDAP Incoterm = "DAP"
	IncotermDPU Incoterm = "DPU"
	IncotermDDP Incoterm = "DDP"
)

// Modes returns all concrete transport modes in display order.
func Modes() []Mode {
	return []Mode{ModeAir, ModeSea, ModeCourier}
}

// Commodities returns all concrete commodities in display order.
func Commodities() []Commodity {
	return []Commodity{
		CommodityElectronics,
		CommodityBatteries,
		CommodityChemicals,
		CommodityTelecom,
		CommodityOther,
	}
}

// Incoterms returns all concrete incoterms in display order.
func Incoterms() []Incoterm {
	return []Incoterm{
		IncotermEXW, IncotermFCA, IncotermFOB, IncotermCFR, IncotermCIF,
		IncotermCPT, IncotermCIP, IncotermDAP, IncotermDPU, IncotermDDP,
	}
}

// ParseMode converts a string to a Mode, rejecting unrecognized values.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAny, ModeAir, ModeSea, ModeCourier:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownMode, s)
}

// ParseCommodity converts a string to a Commodity, rejecting unrecognized values.
func ParseCommodity(s string) (Commodity, error) {
	switch Commodity(s) {
	case CommodityAny, CommodityElectronics, CommodityBatteries,
		CommodityChemicals, CommodityTelecom, CommodityOther:
		return Commodity(s), nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownCommodity, s)
}

// ParseIncoterm converts a string to an Incoterm, rejecting unrecognized values.
func ParseIncoterm(s string) (Incoterm, error) {
	switch Incoterm(s) {
	case IncotermAny, IncotermEXW, IncotermFCA, IncotermFOB, IncotermCFR,
		IncotermCIF, IncotermCPT, IncotermCIP, IncotermDAP, IncotermDPU,
		IncotermDDP:
		return Incoterm(s), nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownIncoterm, s)
}

// ParseMandatory converts a string to a Mandatory, rejecting unrecognized values.
func ParseMandatory(s string) (Mandatory, error) {
	switch Mandatory(s) {
	case MandatoryYes, MandatoryConditional:
		return Mandatory(s), nil
	}
	return "", fmt.Errorf("unknown mandatory value: %q", s)
}

// ParseResponsibility converts a string to a Responsibility, rejecting unrecognized values.
func ParseResponsibility(s string) (Responsibility, error) {
	switch Responsibility(s) {
	case ResponsibilityShipper, ResponsibilityImporter, ResponsibilityShared:
		return Responsibility(s), nil
	}
	return "", fmt.Errorf("unknown responsibility: %q", s)
}

// DocumentRequirement describes one document required for an export shipment,
// along with the dimensions it applies to. Filter fields holding the Any value
// match every concrete value of that dimension; no other wildcard semantics
// exist.
type DocumentRequirement struct {
	Document       string
	Mandatory      Mandatory
	Responsibility Responsibility
	Mode           Mode
	Commodity      Commodity
	Incoterm       Incoterm
	Notes          string
}

// AppliesTo reports whether this requirement applies to the given concrete
// mode, commodity, and incoterm. Country matching is the caller's concern.
func (r DocumentRequirement) AppliesTo(mode Mode, commodity Commodity, incoterm Incoterm) bool {
	if r.Mode != ModeAny && r.Mode != mode {
		return false
	}
	if r.Commodity != CommodityAny && r.Commodity != commodity {
		return false
	}
	if r.Incoterm != IncotermAny && r.Incoterm != incoterm {
		return false
	}
	return true
}

// Validate ensures the requirement has valid data. Rule data is static, so a
// failure here is an authoring defect rather than a runtime condition.
func (r DocumentRequirement) Validate() error {
	if r.Document == "" {
		return fmt.Errorf("document name is required")
	}
	if _, err := ParseMandatory(string(r.Mandatory)); err != nil {
		return fmt.Errorf("document %q: %w", r.Document, err)
	}
	if _, err := ParseResponsibility(string(r.Responsibility)); err != nil {
		return fmt.Errorf("document %q: %w", r.Document, err)
	}
	if _, err := ParseMode(string(r.Mode)); err != nil {
		return fmt.Errorf("document %q: %w", r.Document, err)
	}
	if _, err := ParseCommodity(string(r.Commodity)); err != nil {
		return fmt.Errorf("document %q: %w", r.Document, err)
	}
	if _, err := ParseIncoterm(string(r.Incoterm)); err != nil {
		return fmt.Errorf("document %q: %w", r.Document, err)
	}
	return nil
}
