package request

import "buhuchet_site/internal/domain/entities"

type LogoPatchRequest struct {
	Show     *bool   `json:"show"`
	Text     *string `json:"text"`
	ImageURL *string `json:"image_url"`
}

type ContactsPatchRequest struct {
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

type HeroPatchRequest struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
}

type NavItemRequest struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// SiteContentPatchRequest mirrors the SiteContent document; omitted fields are kept.
// A present "navigation" array replaces the whole menu.
type SiteContentPatchRequest struct {
	Logo       *LogoPatchRequest     `json:"logo"`
	Contacts   *ContactsPatchRequest `json:"contacts"`
	Hero       *HeroPatchRequest     `json:"hero"`
	Navigation *[]NavItemRequest     `json:"navigation"`
}

func (r SiteContentPatchRequest) ToPatch() entities.SiteContentPatch {
	var p entities.SiteContentPatch
	if r.Logo != nil {
		p.LogoShow = r.Logo.Show
		p.LogoText = r.Logo.Text
		p.LogoImageURL = r.Logo.ImageURL
	}
	if r.Contacts != nil {
		p.ContactPhone = r.Contacts.Phone
		p.ContactEmail = r.Contacts.Email
		p.ContactAddress = r.Contacts.Address
	}
	if r.Hero != nil {
		p.HeroTitle = r.Hero.Title
		p.HeroSubtitle = r.Hero.Subtitle
	}
	if r.Navigation != nil {
		items := make([]entities.NavItem, 0, len(*r.Navigation))
		for _, it := range *r.Navigation {
			items = append(items, entities.NavItem{Label: it.Label, URL: it.URL})
		}
		p.Navigation = &items
	}
	return p
}
