package content

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"
)

// Permalinks resolves the public URL of a content item.
type Permalinks interface {
	Permalink(kind Kind, locale, slug string) (string, error)
}

// Route names registered in the default route configuration.
const (
	RouteService   = "service"
	RouteCaseStudy = "case_study"
	RoutePost      = "post"
)

// DefaultRouteConfig returns the route groups of the public site: Dutch paths
// at the root and English paths under /en.
func DefaultRouteConfig(baseURL string) *urlkit.Config {
	return &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "site",
				BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
				Paths: map[string]string{
					RouteService:   "/diensten/:slug",
					RouteCaseStudy: "/cases/:slug",
					RoutePost:      "/blog/:slug",
				},
				Groups: []urlkit.GroupConfig{
					{
						Name: "en",
						Path: "/en",
						Paths: map[string]string{
							RouteService:   "/services/:slug",
							RouteCaseStudy: "/case-studies/:slug",
							RoutePost:      "/blog/:slug",
						},
					},
				},
			},
		},
	}
}

// URLKitOptions configures the go-urlkit backed permalink resolver.
type URLKitOptions struct {
	Manager      *urlkit.RouteManager
	DefaultGroup string
	// LocaleGroups maps a locale to a dotted group path, e.g. "en" -> "site.en".
	LocaleGroups map[string]string
	Routes       map[Kind]string
	SlugParam    string
}

// URLKitPermalinks builds permalinks from a go-urlkit RouteManager.
type URLKitPermalinks struct {
	manager      *urlkit.RouteManager
	defaultGroup string
	localeGroups map[string]string
	routes       map[Kind]string
	slugParam    string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

var _ Permalinks = (*URLKitPermalinks)(nil)

// NewURLKitPermalinks constructs a resolver. Missing options default to the
// layout produced by DefaultRouteConfig.
func NewURLKitPermalinks(opts URLKitOptions) *URLKitPermalinks {
	if opts.DefaultGroup == "" {
		opts.DefaultGroup = "site"
	}
	if opts.LocaleGroups == nil {
		opts.LocaleGroups = map[string]string{"nl": "site", "en": "site.en"}
	}
	if opts.Routes == nil {
		opts.Routes = map[Kind]string{
			KindServices:    RouteService,
			KindCaseStudies: RouteCaseStudy,
			KindBlog:        RoutePost,
		}
	}
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}

	return &URLKitPermalinks{
		manager:      opts.Manager,
		defaultGroup: strings.TrimSpace(opts.DefaultGroup),
		localeGroups: opts.LocaleGroups,
		routes:       opts.Routes,
		slugParam:    opts.SlugParam,
		groupCache:   make(map[string]*urlkit.Group),
	}
}

// Permalink returns the URL of slug in the given locale.
func (p *URLKitPermalinks) Permalink(kind Kind, locale, slug string) (string, error) {
	if p == nil || p.manager == nil {
		return "", nil
	}

	routeName, ok := p.routes[kind]
	if !ok || routeName == "" {
		return "", fmt.Errorf("content: no route for kind %q", kind)
	}

	groupPath := p.defaultGroup
	if path, ok := p.localeGroups[strings.ToLower(strings.TrimSpace(locale))]; ok && strings.TrimSpace(path) != "" {
		groupPath = strings.TrimSpace(path)
	}

	group, err := p.groupForPath(groupPath)
	if err != nil {
		return "", err
	}

	builder, err := safeBuilder(group, routeName)
	if err != nil {
		return "", err
	}
	builder.WithParam(p.slugParam, slug)
	return builder.Build()
}

func (p *URLKitPermalinks) groupForPath(path string) (*urlkit.Group, error) {
	p.mu.RLock()
	group, ok := p.groupCache[path]
	p.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	current, err := lookupGroup(p.manager, parts[0])
	if err != nil {
		return nil, err
	}
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	p.mu.Lock()
	p.groupCache[path] = current
	p.mu.Unlock()
	return current, nil
}

// go-urlkit panics on unknown groups and routes; the helpers below turn
// those panics into errors.

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("content: route %q not registered: %v", route, rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("content: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("content: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}
