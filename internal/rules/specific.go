package rules

import "github.com/harborline/clear-to-ship/internal/model"

// req is shorthand for building country-specific requirement literals.
func req(doc string, mandatory model.Mandatory, resp model.Responsibility, mode model.Mode, commodity model.Commodity, incoterm model.Incoterm, notes string) model.DocumentRequirement {
	return model.DocumentRequirement{
		Document:       doc,
		Mandatory:      mandatory,
		Responsibility: resp,
		Mode:           mode,
		Commodity:      commodity,
		Incoterm:       incoterm,
		Notes:          notes,
	}
}

// buildCountrySpecific assembles the per-country additions. It runs exactly
// once, at store construction; the resulting map is never mutated afterward.
// Entry order per country is preserved in resolved output.
func buildCountrySpecific() map[string][]model.DocumentRequirement {
	specific := make(map[string][]model.DocumentRequirement)

	add := func(countries []string, reqs ...model.DocumentRequirement) {
		for _, c := range countries {
			specific[c] = append(specific[c], reqs...)
		}
	}

	gcc := []string{"Bahrain", "Kuwait", "Oman", "Qatar", "Saudi Arabia", "United Arab Emirates"}
	add(gcc,
		req("Commercial Invoice (Attested)", model.MandatoryYes, model.ResponsibilityShipper,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Chamber of Commerce attestation commonly requested."),
		req("COO (Legalized)", model.MandatoryConditional, model.ResponsibilityShipper,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Legalize via embassy/consulate if requested by importer."),
	)

	add([]string{"Saudi Arabia"},
		req("SABER/SALEEM CoC (regulated goods)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Conformity & shipment certification via SABER."))
	add([]string{"Qatar"},
		req("Product Compliance Pre-Approval (regulated)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityTelecom, model.IncotermAny,
			"Required for some electronics/telecom."))
	add([]string{"Kuwait"},
		req("KUCAS/PAI Conformity (regulated)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Public Authority for Industry compliance."))
	add([]string{"Oman"},
		req("Import Permit (DG/chemicals)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityBatteries, model.IncotermAny,
			"Check ROP/DGSM based on commodity."))

	add([]string{"Jordan", "Lebanon", "Iraq", "Palestine", "Syria", "Yemen"},
		req("Invoice & COO Legalization", model.MandatoryConditional, model.ResponsibilityShipper,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Embassy legalization often required."))

	add([]string{"Israel"},
		req("SII Approval (regulated electronics)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityTelecom, model.IncotermAny,
			"Israel Standards Institute approvals."))

	add([]string{"Turkey"},
		req("ATR or EUR.1 (if applicable)", model.MandatoryConditional, model.ResponsibilityShipper,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Preferential origin doc for Customs Union/EU origin."),
		req("Import License (telecom/RF, if applicable)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityTelecom, model.IncotermAny,
			"Permit for radio/telecom equipment when required."))

	add([]string{"Egypt"},
		req("ACID Number", model.MandatoryYes, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Advance Cargo Information Declaration (Nafeza)."),
		req("Invoice & COO Legalized", model.MandatoryConditional, model.ResponsibilityShipper,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Arabic details often required; legalize via embassy."))

	add([]string{"Morocco"},
		req("VoC/Conformity (regulated)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Verification of Conformity where applicable."),
		req("Arabic/French Invoice Copy", model.MandatoryConditional, model.ResponsibilityShipper,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Language preference for customs clarity."))
	add([]string{"Tunisia"},
		req("Arabic/French Invoice Copy", model.MandatoryConditional, model.ResponsibilityShipper,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Language preference; legalization may be requested."))
	add([]string{"Algeria"},
		req("Arabic/French Invoice Copy", model.MandatoryConditional, model.ResponsibilityShipper,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Language preference; bank domiciliation may be requested."))
	add([]string{"Libya"},
		req("Legalized Documents", model.MandatoryConditional, model.ResponsibilityShipper,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Embassy legalization commonly required."))

	add([]string{"Kenya", "Tanzania", "Uganda", "Rwanda", "Burundi"},
		req("PVoC Certificate (regulated)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Pre-Export Verification of Conformity."))
	add([]string{"Kenya"},
		req("IDF (Import Declaration Form)", model.MandatoryYes, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Importer obtains; include on docs."))
	add([]string{"Tanzania", "Uganda"},
		req("Import Permit (batteries/chemicals)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityBatteries, model.IncotermAny,
			"Check local authority for hazardous goods."))

	add([]string{"Nigeria"},
		req("Form M", model.MandatoryYes, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Initiated by importer; must match invoice HS."),
		req("SONCAP (regulated)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Standards Org. of Nigeria Conformity Assessment."),
		req("PAAR", model.MandatoryYes, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Pre-Arrival Assessment Report (Customs)."))
	add([]string{"Ghana"},
		req("G-CAP/CoC (regulated)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Conformity programme for selected goods."))
	add([]string{"Ethiopia"},
		req("ECAE CoC (regulated)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Conformity for selected goods."))

	add([]string{"South Africa"},
		req("NRCS LOA/SABS (regulated)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Letters of Authority/Approvals for certain categories."),
		req("Import Permit (batteries/chemicals)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityBatteries, model.IncotermAny,
			"Regulator permits for hazardous goods."))
	add([]string{"Zimbabwe"},
		req("CBCA Certificate (regulated)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Consignment Based Conformity Assessment."))
	add([]string{"Zambia"},
		req("ZABS CoC (regulated)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Bureau of Standards conformity for selected goods."))

	add([]string{"Botswana", "Lesotho", "Namibia", "Eswatini"},
		req("Import Permit (regulated)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Permits for selected goods (SACU)."))

	add([]string{"Senegal", "Cote d'Ivoire", "Mali", "Burkina Faso", "Niger", "Guinea", "Guinea-Bissau", "Togo", "Benin"},
		req("VoC/CoC (regulated)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Verification/Certificate of Conformity via appointed agencies."))
	add([]string{"Cameroon", "Gabon", "Congo (Republic)", "Congo (DRC)", "Chad", "Central African Republic", "Equatorial Guinea"},
		req("VoC/CoC (regulated)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Pre-shipment conformity assessment common."))

	add([]string{"Somalia", "Sudan", "South Sudan", "Eritrea", "Djibouti"},
		req("Legalized Invoice & COO", model.MandatoryConditional, model.ResponsibilityShipper,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Embassy/consulate legalization often required."))

	add([]string{"Mauritius"},
		req("Import Permit (regulated)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Permits for regulated electronics/telecom as required."))
	add([]string{"Seychelles"},
		req("Import Permit (regulated)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Permits for hazardous or regulated goods."))
	add([]string{"Cabo Verde", "Sao Tome and Principe", "Comoros"},
		req("Import Permit (regulated)", model.MandatoryConditional, model.ResponsibilityImporter,
			model.ModeAny, model.CommodityAny, model.IncotermAny,
			"Importer secures permit where required."))

	return specific
}
