package model

// CommodityType classifies how a commodity is traded at a mandi.
type CommodityType string

const (
	TypeCombine CommodityType = "Combine"
	TypeHath    CommodityType = "Hath"
	TypeOther   CommodityType = "Other"
	TypeNA      CommodityType = "N/A"
)

// ParseCommodityType maps free-form input to a known type, defaulting to
// N/A for blank or unknown values.
func ParseCommodityType(s string) CommodityType {
	switch CommodityType(s) {
	case TypeCombine, TypeHath, TypeOther:
		return CommodityType(s)
	default:
		return TypeNA
	}
}
