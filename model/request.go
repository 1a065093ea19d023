package model

import "encoding/json"

// StringList accepts either a JSON string or an array of strings. Bulk
// form fields arrive as a scalar when a single row is submitted and as an
// array otherwise; the union is resolved here, at the boundary.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = StringList(many)
	return nil
}

// SubmitPricesRequest is the bulk daily-rate submission payload. All
// per-row fields are parallel lists.
type SubmitPricesRequest struct {
	State        string     `json:"state" form:"state"`
	Mandi        string     `json:"mandi" form:"mandi"`
	Types        StringList `json:"types"`
	CommodityIDs StringList `json:"commodity_ids"`
	MinRates     StringList `json:"minrates"`
	MaxRates     StringList `json:"maxrates"`
	Arrivals     StringList `json:"arrivals"`
}

// AddPriceRequest is the single-commodity correction payload.
type AddPriceRequest struct {
	MinRate *float64 `json:"minrate" form:"minrate"`
	MaxRate *float64 `json:"maxrate" form:"maxrate"`
	Arrival *float64 `json:"arrival" form:"arrival"`
}

// BulkNamesRequest carries comma/newline separated names for bulk
// reference-data creation.
type BulkNamesRequest struct {
	Names string `json:"names" form:"names"`
}

// RenameRequest updates a single reference-data record.
type RenameRequest struct {
	ID    string `json:"id" form:"id"`
	Name  string `json:"name" form:"name"`
	State string `json:"state" form:"state"`
}

// CreateMandisRequest adds one or more mandis under a state.
type CreateMandisRequest struct {
	State  string     `json:"state" form:"state"`
	Mandis StringList `json:"mandis"`
}

// LoginRequest authenticates the admin user.
type LoginRequest struct {
	UserID   string `json:"userid" form:"userid"`
	Password string `json:"password" form:"password"`
}
