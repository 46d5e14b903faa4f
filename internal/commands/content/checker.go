package contentcmd

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-agency-site/internal/content"
	"github.com/goliatone/go-agency-site/internal/markdown"
	"github.com/goliatone/go-agency-site/pkg/interfaces"
)

// IssueCode classifies a content problem.
type IssueCode string

const (
	IssueUnreadableDirectory  IssueCode = "unreadable_directory"
	IssueMalformedFrontMatter IssueCode = "malformed_front_matter"
	IssueMissingTitle         IssueCode = "missing_title"
	IssueInvalidSlug          IssueCode = "invalid_slug"
	IssueMissingTranslation   IssueCode = "missing_translation"
)

// Issue is a single finding.
type Issue struct {
	Kind    content.Kind `json:"kind"`
	Path    string       `json:"path"`
	Slug    string       `json:"slug,omitempty"`
	Locale  string       `json:"locale,omitempty"`
	Code    IssueCode    `json:"code"`
	Message string       `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s (%s)", i.Path, i.Message, i.Code)
}

// Report summarises a check run.
type Report struct {
	Checked int     `json:"checked"`
	Issues  []Issue `json:"issues"`
}

// OK reports whether the run found no issues.
func (r *Report) OK() bool {
	return r != nil && len(r.Issues) == 0
}

// Count returns the number of issues with the given code.
func (r *Report) Count(code IssueCode) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, issue := range r.Issues {
		if issue.Code == code {
			n++
		}
	}
	return n
}

// Checker lints content files loaded through a markdown service.
type Checker struct {
	markdown interfaces.MarkdownService
}

// NewChecker constructs a checker.
func NewChecker(md interfaces.MarkdownService) *Checker {
	return &Checker{markdown: md}
}

// Check walks every (kind, locale) directory and reports problems. Only
// context errors abort the run.
func (c *Checker) Check(ctx context.Context, kinds []content.Kind, locales []string) (*Report, error) {
	report := &Report{Issues: []Issue{}}

	for _, kind := range kinds {
		present := map[string]map[string]bool{}
		mark := func(slug, locale string) {
			if present[slug] == nil {
				present[slug] = map[string]bool{}
			}
			present[slug][locale] = true
		}

		for _, locale := range locales {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			result, err := c.markdown.LoadDirectory(ctx, kind.Dir(), locale)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return nil, ctxErr
				}
				report.Issues = append(report.Issues, Issue{
					Kind:    kind,
					Path:    kind.Dir(),
					Locale:  locale,
					Code:    IssueUnreadableDirectory,
					Message: err.Error(),
				})
				break
			}

			for _, skipped := range result.Skipped {
				report.Checked++
				slugValue, _, _ := markdown.SplitName(skipped.Path)
				if slugValue != "" {
					mark(slugValue, locale)
				}
				report.Issues = append(report.Issues, Issue{
					Kind:    kind,
					Path:    skipped.Path,
					Slug:    slugValue,
					Locale:  locale,
					Code:    IssueMalformedFrontMatter,
					Message: skipped.Err.Error(),
				})
			}

			for _, doc := range result.Documents {
				report.Checked++
				mark(doc.Slug, locale)
				report.Issues = append(report.Issues, checkDocument(kind, doc)...)
			}
		}

		report.Issues = append(report.Issues, missingTranslations(kind, present, locales)...)
	}

	sort.SliceStable(report.Issues, func(i, j int) bool {
		if report.Issues[i].Path != report.Issues[j].Path {
			return report.Issues[i].Path < report.Issues[j].Path
		}
		return report.Issues[i].Code < report.Issues[j].Code
	})
	return report, nil
}

func checkDocument(kind content.Kind, doc *interfaces.Document) []Issue {
	var issues []Issue
	base := Issue{Kind: kind, Path: doc.FilePath, Slug: doc.Slug, Locale: doc.Locale}

	if strings.TrimSpace(doc.FrontMatter.Title()) == "" {
		issue := base
		issue.Code = IssueMissingTitle
		issue.Message = "front matter has no title"
		issues = append(issues, issue)
	}

	normalized, err := slug.Normalize(doc.Slug)
	if err != nil || normalized != doc.Slug || !slug.IsValid(doc.Slug) {
		issue := base
		issue.Code = IssueInvalidSlug
		if normalized != "" && normalized != doc.Slug {
			issue.Message = fmt.Sprintf("slug is not normalized, expected %q", normalized)
		} else {
			issue.Message = "slug is not valid"
		}
		issues = append(issues, issue)
	}

	return issues
}

func missingTranslations(kind content.Kind, present map[string]map[string]bool, locales []string) []Issue {
	if len(locales) < 2 {
		return nil
	}
	slugs := make([]string, 0, len(present))
	for slugValue := range present {
		slugs = append(slugs, slugValue)
	}
	sort.Strings(slugs)

	var issues []Issue
	for _, slugValue := range slugs {
		for _, locale := range locales {
			if present[slugValue][locale] {
				continue
			}
			issues = append(issues, Issue{
				Kind:    kind,
				Path:    path.Join(kind.Dir(), markdown.FileName(slugValue, locale)),
				Slug:    slugValue,
				Locale:  locale,
				Code:    IssueMissingTranslation,
				Message: "translation is missing",
			})
		}
	}
	return issues
}
