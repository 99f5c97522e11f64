package form

import (
	"net/url"
	"strconv"

	"campaign-admin/internal/core/port"
)

// Field names as they appear in the form and in the API payload.
const (
	FieldCampaignName = "campaignName"
	FieldKeywords     = "keywords"
	FieldBidAmount    = "bidAmount"
	FieldCampaignFund = "campaignFund"
	FieldStatus       = "status"
	FieldTown         = "town"
	FieldRadius       = "radius"
	FieldSellerID     = "sellerId"
)

// Names lists every form field.
var Names = []string{
	FieldCampaignName,
	FieldKeywords,
	FieldBidAmount,
	FieldCampaignFund,
	FieldStatus,
	FieldTown,
	FieldRadius,
	FieldSellerID,
}

// Fields is the raw, as-typed state of a campaign form. Numbers stay
// strings until submit.
type Fields struct {
	CampaignName string
	Keywords     string
	BidAmount    string
	CampaignFund string
	Status       string
	Town         string
	Radius       string
	SellerID     string
}

// CreateDefaults seeds a new-campaign form with the minimum positive
// values the API accepts.
func CreateDefaults() Fields {
	return Fields{
		BidAmount:    "0.01",
		CampaignFund: "1",
		Status:       "ON",
		Radius:       "1",
	}
}

// EditDefaults is the edit form before the campaign has loaded.
func EditDefaults() Fields {
	return Fields{Status: "ON"}
}

// FromCampaign pre-fills an edit form from a stored campaign.
func FromCampaign(c port.CampaignResponse) Fields {
	f := Fields{
		CampaignName: c.CampaignName,
		Keywords:     c.Keywords,
		BidAmount:    strconv.FormatFloat(c.BidAmount, 'f', -1, 64),
		CampaignFund: strconv.FormatFloat(c.CampaignFund, 'f', -1, 64),
		Status:       c.Status,
		Town:         c.Town,
		Radius:       strconv.Itoa(c.Radius),
		SellerID:     strconv.FormatInt(c.SellerID, 10),
	}
	if f.Status == "" {
		f.Status = "ON"
	}
	return f
}

// FromValues overlays the posted form values on base. Fields missing from
// values keep their base value.
func FromValues(base Fields, values url.Values) Fields {
	for _, name := range Names {
		if vs, ok := values[name]; ok && len(vs) > 0 {
			base.Set(name, vs[0])
		}
	}
	return base
}

// Get returns the value of the named field, or "" for unknown names.
func (f Fields) Get(name string) string {
	if p := f.field(name); p != nil {
		return *p
	}
	return ""
}

// Set assigns the named field and reports whether the name is known.
func (f *Fields) Set(name, value string) bool {
	p := f.field(name)
	if p == nil {
		return false
	}
	*p = value
	return true
}

func (f *Fields) field(name string) *string {
	switch name {
	case FieldCampaignName:
		return &f.CampaignName
	case FieldKeywords:
		return &f.Keywords
	case FieldBidAmount:
		return &f.BidAmount
	case FieldCampaignFund:
		return &f.CampaignFund
	case FieldStatus:
		return &f.Status
	case FieldTown:
		return &f.Town
	case FieldRadius:
		return &f.Radius
	case FieldSellerID:
		return &f.SellerID
	}
	return nil
}

// ApplyReferenceDefaults picks the first seller and the first town for
// fields the user has not set yet.
func (f *Fields) ApplyReferenceDefaults(sellers []port.SellerResponse, towns []string) {
	if f.SellerID == "" && len(sellers) > 0 {
		f.SellerID = sellers[0].IDString()
	}
	if f.Town == "" && len(towns) > 0 {
		f.Town = towns[0]
	}
}
