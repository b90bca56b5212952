package domain

import "encoding/json"

// swagger:model domain.Product
type Product struct {
	ID            int      `json:"id" validate:"required,gt=0"`
	Name          string   `json:"name" validate:"required"`
	Price         float64  `json:"price" validate:"gte=0"`
	OriginalPrice float64  `json:"originalPrice,omitempty" validate:"gte=0"`
	Discount      int      `json:"discount,omitempty" validate:"gte=0,lte=100"`
	Image         string   `json:"image" validate:"required"`
	Images        []string `json:"images"`
	Category      string   `json:"category" validate:"required"`
	IsNew         bool     `json:"isNew,omitempty"`
	IsBestseller  bool     `json:"isBestseller,omitempty"`
	Stock         int      `json:"stock" validate:"gte=0"`
	Description   string   `json:"description,omitempty"`
}

type Category struct {
	ID           string `json:"id" validate:"required"`
	Label        string `json:"label" validate:"required"`
	DisplayOrder int    `json:"displayOrder,omitempty"`
}

type Testimonial struct {
	ID       int    `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Rating   int    `json:"rating" validate:"gte=0,lte=5"`
	Text     string `json:"text" validate:"required"`
	IsActive *bool  `json:"isActive,omitempty"`
}

type Feature struct {
	ID           int    `json:"id" validate:"required"`
	Icon         string `json:"icon"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder,omitempty"`
}

type BestsellerProduct struct {
	ID           int     `json:"id" validate:"required"`
	Image        string  `json:"image"`
	Name         string  `json:"name" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
	DisplayOrder int     `json:"displayOrder,omitempty"`
}

type InstagramPost struct {
	ID           int    `json:"id" validate:"required"`
	ImageURL     string `json:"imageUrl" validate:"required"`
	AltText      string `json:"altText,omitempty"`
	DisplayOrder int    `json:"displayOrder,omitempty"`
}

type AboutSection struct {
	ID           int    `json:"id" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Content      string `json:"content"`
	Image        string `json:"image"`
	LinkText     string `json:"linkText"`
	LinkURL      string `json:"linkUrl,omitempty"`
	DisplayOrder int    `json:"displayOrder,omitempty"`
}

type HowItWorksStep struct {
	StepNumber  int    `json:"stepNumber" validate:"gt=0"`
	Emoji       string `json:"emoji"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
}

// SiteContent maps a page section ("hero", "footer", ...) to its editable
// strings.
type SiteContent map[string]map[string]string

type SiteConfig struct {
	FreeShippingThreshold float64 `json:"freeShippingThreshold,omitempty" validate:"gte=0"`
	FlashSaleDuration     float64 `json:"flashSaleDuration,omitempty" validate:"gte=0"`
	DiscountPercentage    float64 `json:"discountPercentage,omitempty" validate:"gte=0,lte=100"`
	InstagramHandle       string  `json:"instagramHandle,omitempty"`
	InstagramURL          string  `json:"instagramUrl,omitempty"`
	CompanyName           string  `json:"companyName,omitempty"`
	Currency              string  `json:"currency,omitempty"`

	// Extra keeps sheet keys that have no typed field above.
	Extra map[string]any `json:"-"`
}

var siteConfigKeys = []string{
	"freeShippingThreshold",
	"flashSaleDuration",
	"discountPercentage",
	"instagramHandle",
	"instagramUrl",
	"companyName",
	"currency",
}

func (c *SiteConfig) UnmarshalJSON(raw []byte) error {
	type typed SiteConfig
	var known typed
	if err := json.Unmarshal(raw, &known); err != nil {
		return err
	}

	var all map[string]any
	if err := json.Unmarshal(raw, &all); err != nil {
		return err
	}
	for _, k := range siteConfigKeys {
		delete(all, k)
	}
	if len(all) > 0 {
		known.Extra = all
	}

	*c = SiteConfig(known)
	return nil
}

// MarshalJSON writes Extra keys next to the typed ones. Typed fields win on a
// name clash.
func (c SiteConfig) MarshalJSON() ([]byte, error) {
	type typed SiteConfig
	raw, err := json.Marshal(typed(c))
	if err != nil || len(c.Extra) == 0 {
		return raw, err
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	for k, v := range c.Extra {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return json.Marshal(out)
}

// AllData is the composite payload served for the "all" key.
type AllData struct {
	Products     []Product           `json:"products" validate:"dive"`
	Categories   []Category          `json:"categories" validate:"dive"`
	Testimonials []Testimonial       `json:"testimonials" validate:"dive"`
	Features     []Feature           `json:"features" validate:"dive"`
	SiteContent  SiteContent         `json:"siteContent"`
	SiteConfig   SiteConfig          `json:"siteConfig"`
	Bestsellers  []BestsellerProduct `json:"bestsellers" validate:"dive"`
	Instagram    []InstagramPost     `json:"instagram" validate:"dive"`
	About        []AboutSection      `json:"about" validate:"dive"`
	HowItWorks   []HowItWorksStep    `json:"howItWorks" validate:"dive"`
}
