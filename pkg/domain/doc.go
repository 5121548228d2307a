// Package domain contains the core domain entities used by the application.
// These types represent the business concepts (crawl requests, scraped pages,
// stored documents) and are intentionally free of infrastructure concerns so
// they can be shared across packages.
package domain
