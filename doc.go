// Package site is the backend of a bilingual (nl/en) agency website. It
// serves services, case studies and blog posts from Markdown files with YAML
// front matter, computes project estimates and records contact submissions.
//
// A Module is built from a Config:
//
//	cfg := site.DefaultConfig()
//	cfg.Content.Dir = "public/content"
//	module, err := site.New(cfg)
//	if err != nil {
//		return err
//	}
//	defer module.Close()
//	handler, err := module.Handler()
package site
