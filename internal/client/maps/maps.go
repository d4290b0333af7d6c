// Package maps builds Google Maps embed URLs for site locations.
package maps

import (
	"net/url"
	"strings"
)

const embedBase = "https://www.google.com/maps/embed/v1/place"

// EmbedURL returns a satellite embed URL for location, authorised by key.
func EmbedURL(location, key string) string {
	q := url.Values{}
	q.Set("key", key)
	q.Set("q", strings.TrimSpace(location))
	q.Set("maptype", "satellite")
	return embedBase + "?" + q.Encode()
}
