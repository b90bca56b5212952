package services

import (
	"context"

	"github.com/natnat/flowershop_content_microservice/internal/core/domain"
	"github.com/natnat/flowershop_content_microservice/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// Catalog groups one binding per storefront section, each seeded with the
// bundled defaults.
type Catalog struct {
	Products     *Binding[[]domain.Product]
	Categories   *Binding[[]domain.Category]
	Testimonials *Binding[[]domain.Testimonial]
	Features     *Binding[[]domain.Feature]
	SiteContent  *Binding[domain.SiteContent]
	SiteConfig   *Binding[domain.SiteConfig]
	Bestsellers  *Binding[[]domain.BestsellerProduct]
	Instagram    *Binding[[]domain.InstagramPost]
	About        *Binding[[]domain.AboutSection]
	HowItWorks   *Binding[[]domain.HowItWorksStep]
	All          *Binding[domain.AllData]

	logger   ports.LoggerPort
	bindings map[domain.ContentKey]ContentBinding
}

func NewCatalog(content ports.ContentService, validate *validator.Validate, logger ports.LoggerPort) *Catalog {
	c := &Catalog{
		Products:     NewBinding(content, domain.KeyProducts, domain.FallbackProducts(), validate, logger),
		Categories:   NewBinding(content, domain.KeyCategories, domain.FallbackCategories(), validate, logger),
		Testimonials: NewBinding(content, domain.KeyTestimonials, domain.FallbackTestimonials(), validate, logger),
		Features:     NewBinding(content, domain.KeyFeatures, domain.FallbackFeatures(), validate, logger),
		SiteContent:  NewBinding(content, domain.KeySiteContent, domain.FallbackSiteContent(), validate, logger),
		SiteConfig:   NewBinding(content, domain.KeySiteConfig, domain.FallbackSiteConfig(), validate, logger),
		Bestsellers:  NewBinding(content, domain.KeyBestsellers, domain.FallbackBestsellers(), validate, logger),
		Instagram:    NewBinding(content, domain.KeyInstagram, domain.FallbackInstagram(), validate, logger),
		About:        NewBinding(content, domain.KeyAbout, domain.FallbackAbout(), validate, logger),
		HowItWorks:   NewBinding(content, domain.KeyHowItWorks, domain.FallbackHowItWorks(), validate, logger),
		All:          NewBinding(content, domain.KeyAll, domain.FallbackAll(), validate, logger),
		logger:       logger,
	}

	c.bindings = map[domain.ContentKey]ContentBinding{
		domain.KeyProducts:     c.Products,
		domain.KeyCategories:   c.Categories,
		domain.KeyTestimonials: c.Testimonials,
		domain.KeyFeatures:     c.Features,
		domain.KeySiteContent:  c.SiteContent,
		domain.KeySiteConfig:   c.SiteConfig,
		domain.KeyBestsellers:  c.Bestsellers,
		domain.KeyInstagram:    c.Instagram,
		domain.KeyAbout:        c.About,
		domain.KeyHowItWorks:   c.HowItWorks,
		domain.KeyAll:          c.All,
	}
	return c
}

func (c *Catalog) Lookup(key domain.ContentKey) (ContentBinding, bool) {
	b, ok := c.bindings[key]
	return b, ok
}

// Refresh refetches every section binding concurrently. All sections are
// attempted; the first error is returned.
func (c *Catalog) Refresh(ctx context.Context) error {
	var g errgroup.Group
	for _, key := range domain.SectionKeys() {
		b := c.bindings[key]
		g.Go(func() error {
			return b.Refetch(ctx)
		})
	}

	err := g.Wait()
	if err != nil {
		c.logger.Warn("Catalog refresh finished with errors", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return err
}

// Snapshot assembles the current section values into the composite shape.
func (c *Catalog) Snapshot() domain.AllData {
	return domain.AllData{
		Products:     c.Products.Snapshot().Data,
		Categories:   c.Categories.Snapshot().Data,
		Testimonials: c.Testimonials.Snapshot().Data,
		Features:     c.Features.Snapshot().Data,
		SiteContent:  c.SiteContent.Snapshot().Data,
		SiteConfig:   c.SiteConfig.Snapshot().Data,
		Bestsellers:  c.Bestsellers.Snapshot().Data,
		Instagram:    c.Instagram.Snapshot().Data,
		About:        c.About.Snapshot().Data,
		HowItWorks:   c.HowItWorks.Snapshot().Data,
	}
}
