package registry

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/propsetu/estate-backend/internal/adapter"
)

// SlugRegistry defines the interface for reserved-slug lookups. SEO slugs
// live in the same URL namespace as the site's own routes, so slugs that
// would shadow a route are rejected at generation time
//
//go:generate mockgen -source=slugs.go -destination=../mocks/slug_registry.go -package=mocks -mock_names=SlugRegistry=MockSlugRegistry
type SlugRegistry interface {
	// IsReserved checks if a slug collides with a reserved path
	IsReserved(slug string) bool
}

// reservedSlugsFile is the structure of the reserved_slugs.json file
type reservedSlugsFile struct {
	Slugs []string `json:"slugs"`
}

type slugRegistry struct {
	// Fast lookup: slug -> true
	slugs map[string]bool
}

// LoadReservedSlugs loads the reserved-slug registry from a JSON file
func LoadReservedSlugs(filePath string, fs adapter.FileSystem, jsonAdapter adapter.JSON) (SlugRegistry, error) {
	data, err := fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read reserved slugs file: %w", err)
	}

	var file reservedSlugsFile
	if err := jsonAdapter.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse reserved slugs JSON: %w", err)
	}

	reg := &slugRegistry{
		slugs: make(map[string]bool, len(file.Slugs)),
	}
	for _, s := range file.Slugs {
		reg.slugs[strings.ToLower(strings.TrimSpace(s))] = true
	}

	return reg, nil
}

// IsReserved checks if a slug collides with a reserved path
func (r *slugRegistry) IsReserved(slug string) bool {
	if r == nil {
		return false
	}
	return r.slugs[strings.ToLower(slug)]
}

var (
	nonSlugChars   = regexp.MustCompile(`[^a-z0-9]+`)
	dashCollapse   = regexp.MustCompile(`-{2,}`)
	maxSlugLength  = 80
	defaultSlugFmt = "property-%d"
)

// Slugify converts a listing title to a URL slug. Empty titles fall back to
// a slug derived from the property id
func Slugify(title string, propertyID uint64) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = dashCollapse.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > maxSlugLength {
		slug = strings.Trim(slug[:maxSlugLength], "-")
	}
	if slug == "" {
		return fmt.Sprintf(defaultSlugFmt, propertyID)
	}
	return slug
}

// WithSuffix disambiguates a slug after a collision. attempt starts at 1
func WithSuffix(slug string, attempt int) string {
	return fmt.Sprintf("%s-%d", slug, attempt)
}
