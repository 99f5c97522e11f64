package web

import (
	"campaign-admin/internal/core/form"
	"campaign-admin/internal/core/port"
)

type dashboardView struct {
	Title     string
	Campaigns []port.CampaignResponse
	Sellers   []port.SellerResponse
}

type confirmDeleteView struct {
	Title string
	ID    int64
	Label string
}

// formSuffix is appended to element ids of the edit form so both forms
// keep distinct ids.
const formSuffix = "Edit"

// formView renders a campaign form and its fragments.
type formView struct {
	Title   string
	Heading string
	Action  string
	Suffix  string
	Editing bool

	Fields      form.Fields
	Suggestions []string
	Sellers     []port.SellerResponse
	Towns       []string

	// Autofocus and OOB only apply to fragments.
	Autofocus bool
	OOB       bool
}

func createView(fields form.Fields, sellers []port.SellerResponse, towns []string) formView {
	return formView{
		Title:   "Add Campaign",
		Heading: "Add New Campaign",
		Action:  "/add",
		Fields:  fields,
		Sellers: sellers,
		Towns:   towns,
	}
}

func editView(id string, fields form.Fields, sellers []port.SellerResponse, towns []string) formView {
	return formView{
		Title:   "Edit Campaign",
		Heading: "Edit Campaign (ID: " + id + ")",
		Action:  "/edit/" + id,
		Suffix:  formSuffix,
		Editing: true,
		Fields:  fields,
		Sellers: sellers,
		Towns:   towns,
	}
}
