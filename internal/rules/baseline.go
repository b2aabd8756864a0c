package rules

import "github.com/harborline/clear-to-ship/internal/model"

// baselineDocs applies to every destination country, subject to each entry's
// mode/commodity/incoterm filters. Order is significant: it determines row
// order in resolved output.
//
// The insurance certificate appears once per incoterm that shifts insurance
// onto the seller (CIF and CIP); filter fields hold a single value each.
var baselineDocs = []model.DocumentRequirement{
	{
		Document:       "Commercial Invoice",
		Mandatory:      model.MandatoryYes,
		Responsibility: model.ResponsibilityShipper,
		Mode:           model.ModeAny,
		Commodity:      model.CommodityAny,
		Incoterm:       model.IncotermAny,
		Notes:          "Signed & stamped; English unless required otherwise.",
	},
	{
		Document:       "Packing List",
		Mandatory:      model.MandatoryYes,
		Responsibility: model.ResponsibilityShipper,
		Mode:           model.ModeAny,
		Commodity:      model.CommodityAny,
		Incoterm:       model.IncotermAny,
		Notes:          "Itemized with qty, net/gross weight, dimensions.",
	},
	{
		Document:       "Certificate of Origin (COO)",
		Mandatory:      model.MandatoryYes,
		Responsibility: model.ResponsibilityShipper,
		Mode:           model.ModeAny,
		Commodity:      model.CommodityAny,
		Incoterm:       model.IncotermAny,
		Notes:          "Chamber of Commerce stamped; legalization may be requested.",
	},
	{
		Document:       "HS Codes Confirmed",
		Mandatory:      model.MandatoryYes,
		Responsibility: model.ResponsibilityShipper,
		Mode:           model.ModeAny,
		Commodity:      model.CommodityAny,
		Incoterm:       model.IncotermAny,
		Notes:          "Ensure correct 8-10 digit HS per line item.",
	},
	{
		Document:       "Product Description & Model/PN",
		Mandatory:      model.MandatoryYes,
		Responsibility: model.ResponsibilityShipper,
		Mode:           model.ModeAny,
		Commodity:      model.CommodityAny,
		Incoterm:       model.IncotermAny,
		Notes:          "Must match invoice & PL exactly.",
	},
	{
		Document:       "Export Declaration (origin)",
		Mandatory:      model.MandatoryYes,
		Responsibility: model.ResponsibilityShipper,
		Mode:           model.ModeAny,
		Commodity:      model.CommodityAny,
		Incoterm:       model.IncotermAny,
		Notes:          "EX1/SAD or origin equivalent.",
	},
	{
		Document:       "Transport Document",
		Mandatory:      model.MandatoryYes,
		Responsibility: model.ResponsibilityShipper,
		Mode:           model.ModeAir,
		Commodity:      model.CommodityAny,
		Incoterm:       model.IncotermAny,
		Notes:          "AWB for Air/Courier.",
	},
	{
		Document:       "Transport Document",
		Mandatory:      model.MandatoryYes,
		Responsibility: model.ResponsibilityShipper,
		Mode:           model.ModeSea,
		Commodity:      model.CommodityAny,
		Incoterm:       model.IncotermAny,
		Notes:          "Original B/L or telex release for Sea.",
	},
	{
		Document:       "Transport Document",
		Mandatory:      model.MandatoryYes,
		Responsibility: model.ResponsibilityShipper,
		Mode:           model.ModeCourier,
		Commodity:      model.CommodityAny,
		Incoterm:       model.IncotermAny,
		Notes:          "Courier waybill/label.",
	},
	{
		Document:       "Insurance Certificate",
		Mandatory:      model.MandatoryConditional,
		Responsibility: model.ResponsibilityShipper,
		Mode:           model.ModeAny,
		Commodity:      model.CommodityAny,
		Incoterm:       model.IncotermCIF,
		Notes:          "Provide if terms require seller insurance.",
	},
	{
		Document:       "Insurance Certificate",
		Mandatory:      model.MandatoryConditional,
		Responsibility: model.ResponsibilityShipper,
		Mode:           model.ModeAny,
		Commodity:      model.CommodityAny,
		Incoterm:       model.IncotermCIP,
		Notes:          "Provide if terms require seller insurance.",
	},
	{
		Document:       "Dangerous Goods Declaration",
		Mandatory:      model.MandatoryConditional,
		Responsibility: model.ResponsibilityShipper,
		Mode:           model.ModeAir,
		Commodity:      model.CommodityBatteries,
		Incoterm:       model.IncotermAny,
		Notes:          "IATA DGD for DG shipments.",
	},
	{
		Document:       "IMDG/Sea DG Declaration",
		Mandatory:      model.MandatoryConditional,
		Responsibility: model.ResponsibilityShipper,
		Mode:           model.ModeSea,
		Commodity:      model.CommodityBatteries,
		Incoterm:       model.IncotermAny,
		Notes:          "IMDG declaration for sea DG.",
	},
	{
		Document:       "MSDS/SDS",
		Mandatory:      model.MandatoryConditional,
		Responsibility: model.ResponsibilityShipper,
		Mode:           model.ModeAny,
		Commodity:      model.CommodityBatteries,
		Incoterm:       model.IncotermAny,
		Notes:          "Safety Data Sheet for batteries/chemicals.",
	},
	{
		Document:       "Radio/Telecom Type Approval",
		Mandatory:      model.MandatoryConditional,
		Responsibility: model.ResponsibilityImporter,
		Mode:           model.ModeAny,
		Commodity:      model.CommodityTelecom,
		Incoterm:       model.IncotermAny,
		Notes:          "Importer may need local approval for RF/telecom.",
	},
}
