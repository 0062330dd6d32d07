// Package imageutil normalizes product and category image references.
// Hosted-storage URLs pass through; anything empty or untrusted resolves
// to the local fallback asset.
package imageutil

import (
	"net/url"
	"strings"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}

// IsValidImageURL reports whether the reference is usable as an image source:
// a site-relative path, a data URL, or an absolute URL with a known image
// extension.
func IsValidImageURL(ref string) bool {
	if ref == "" {
		return false
	}
	if strings.HasPrefix(ref, "/") {
		return true
	}
	if strings.HasPrefix(ref, "data:image/") {
		return true
	}
	parsed, err := url.Parse(ref)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return false
	}
	lower := strings.ToLower(ref)
	for _, ext := range imageExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}

// Resolve returns the reference unchanged when valid, otherwise the fallback.
func Resolve(ref, fallback string) string {
	if IsValidImageURL(strings.TrimSpace(ref)) {
		return strings.TrimSpace(ref)
	}
	return fallback
}

// ProcessImages builds the display image list for a product: the main image
// first, then additional images with invalid entries and duplicates dropped.
// An empty result yields a single fallback entry.
func ProcessImages(mainImage string, additionalImages []string, fallback string) []string {
	var images []string
	seen := make(map[string]bool)

	add := func(ref string) {
		ref = strings.TrimSpace(ref)
		if ref == "" || !IsValidImageURL(ref) || seen[ref] {
			return
		}
		seen[ref] = true
		images = append(images, ref)
	}

	add(mainImage)
	for _, img := range additionalImages {
		add(img)
	}

	if len(images) == 0 {
		images = append(images, fallback)
	}
	return images
}
