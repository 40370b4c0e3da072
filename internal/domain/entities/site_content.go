package entities

import (
	"errors"
	"strings"
)

var ErrInvalidNavItem = errors.New("navigation item needs a label and a url")

type LogoSettings struct {
	Show     bool   `json:"show"`
	Text     string `json:"text"`
	ImageURL string `json:"image_url"`
}

type ContactSettings struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type HeroSettings struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type NavItem struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// SiteContent is the editable copy of the public pages: header logo,
// navigation, contacts and the home page hero block.
type SiteContent struct {
	Logo       LogoSettings    `json:"logo"`
	Contacts   ContactSettings `json:"contacts"`
	Hero       HeroSettings    `json:"hero"`
	Navigation []NavItem       `json:"navigation"`
}

// SiteContentPatch lists every field an admin may change. Nil means "keep".
type SiteContentPatch struct {
	LogoShow       *bool
	LogoText       *string
	LogoImageURL   *string
	ContactPhone   *string
	ContactEmail   *string
	ContactAddress *string
	HeroTitle      *string
	HeroSubtitle   *string
	Navigation     *[]NavItem
}

// Apply returns a copy of c with the patch applied. c is left untouched.
func (c SiteContent) Apply(p SiteContentPatch) (SiteContent, error) {
	out := c
	out.Navigation = append([]NavItem(nil), c.Navigation...)

	if p.LogoShow != nil {
		out.Logo.Show = *p.LogoShow
	}
	if p.LogoText != nil {
		out.Logo.Text = *p.LogoText
	}
	if p.LogoImageURL != nil {
		out.Logo.ImageURL = strings.TrimSpace(*p.LogoImageURL)
	}
	if p.ContactPhone != nil {
		out.Contacts.Phone = strings.TrimSpace(*p.ContactPhone)
	}
	if p.ContactEmail != nil {
		out.Contacts.Email = strings.TrimSpace(*p.ContactEmail)
	}
	if p.ContactAddress != nil {
		out.Contacts.Address = *p.ContactAddress
	}
	if p.HeroTitle != nil {
		out.Hero.Title = *p.HeroTitle
	}
	if p.HeroSubtitle != nil {
		out.Hero.Subtitle = *p.HeroSubtitle
	}
	if p.Navigation != nil {
		nav := make([]NavItem, 0, len(*p.Navigation))
		for _, item := range *p.Navigation {
			item.Label = strings.TrimSpace(item.Label)
			item.URL = strings.TrimSpace(item.URL)
			if item.Label == "" || item.URL == "" {
				return SiteContent{}, ErrInvalidNavItem
			}
			nav = append(nav, item)
		}
		out.Navigation = nav
	}
	return out, nil
}

func DefaultSiteContent() SiteContent {
	return SiteContent{
		Logo: LogoSettings{Show: true, Text: "Бухгалтерия под ключ"},
		Contacts: ContactSettings{
			Phone: "+7 (900) 000-00-00",
			Email: "info@example.ru",
		},
		Hero: HeroSettings{
			Title:    "Бухгалтерское сопровождение бизнеса",
			Subtitle: "Возьмём на себя учёт, отчётность и зарплату",
		},
		Navigation: []NavItem{
			{Label: "Главная", URL: "/"},
			{Label: "Цены", URL: "/pricing"},
			{Label: "Калькулятор", URL: "/calculator"},
			{Label: "Контакты", URL: "/contacts"},
		},
	}
}
