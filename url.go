package docatlas

import (
	"net/url"
	"regexp"
	"strings"
)

// binaryContentTypeRe matches Content-Type values that identify responses the
// pipeline must never parse for links or text.
var binaryContentTypeRe = regexp.MustCompile(`(?i)(application/(pdf|zip|gzip|x-tar|octet-stream|javascript)|text/(css|javascript)|image/|audio/|video/|font/)`)

// binaryExtensionRe matches URL paths that point at downloadable assets
// rather than pages.
var binaryExtensionRe = regexp.MustCompile(`(?i)\.(pdf|zip|gz|tar|docx?|xlsx?|pptx?|jpg|jpeg|png|gif|svg|webp|ico|mp4|mp3|wav|woff2?|ttf|eot|css|js)$`)

// skipPathRe matches link paths that are never documentation content
// (auth flows, API endpoints).
var skipPathRe = regexp.MustCompile(`(?i)(/login|/logout|/signup|/register|/api/)`)

// CanonicalURL normalizes a URL so that trivially different spellings map to
// a single canonical key for the visited-set and the fetch cache:
// lower-cased scheme and host, default ports stripped, fragment dropped,
// duplicate slashes collapsed, trailing slash removed.
// Only http and https URLs are canonical; anything else is EUNSUPPORTED.
func CanonicalURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", raw, err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", Errorf(EUNSUPPORTED, "unsupported URL scheme %q", u.Scheme)
	}
	u.Scheme = scheme
	u.Host = strings.ToLower(u.Host)

	// Strip default ports.
	if (scheme == "http" && u.Port() == "80") || (scheme == "https" && u.Port() == "443") {
		u.Host = u.Hostname()
	}

	u.Fragment = ""
	u.Path = collapseSlashes(u.Path)
	u.Path = strings.TrimSuffix(u.Path, "/")

	return u.String(), nil
}

// ResolveURL resolves href against base and returns its canonical form.
// Returns empty string if the href does not resolve to a crawlable
// http(s) URL.
func ResolveURL(base string, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	canonical, err := CanonicalURL(b.ResolveReference(ref).String())
	if err != nil {
		return ""
	}
	return canonical
}

// collapseSlashes collapses runs of slashes in a path into one.
func collapseSlashes(path string) string {
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	return path
}

// HostInScope reports whether host matches one of the allowed domains,
// either exactly or as a subdomain.
func HostInScope(host string, allowed []string) bool {
	host = strings.ToLower(host)
	for _, domain := range allowed {
		domain = strings.ToLower(domain)
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// AllowedDomains derives the scope domain set from root URLs,
// preserving first-seen order.
func AllowedDomains(roots []string) []string {
	seen := make(map[string]bool)
	var domains []string
	for _, root := range roots {
		u, err := url.Parse(root)
		if err != nil {
			continue
		}
		host := strings.ToLower(u.Hostname())
		if host == "" || seen[host] {
			continue
		}
		seen[host] = true
		domains = append(domains, host)
	}
	return domains
}

// LooksLikeBinary reports whether a Content-Type identifies a non-page
// response (images, PDFs, archives, scripts, style sheets, media).
func LooksLikeBinary(contentType string) bool {
	if contentType == "" {
		return false
	}
	return binaryContentTypeRe.MatchString(contentType)
}

// IsHTML reports whether a Content-Type identifies an HTML page.
// An empty Content-Type is treated as HTML since some static servers omit it.
func IsHTML(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

// HasBinaryExtension reports whether a URL path points at a downloadable
// asset by suffix alone, before any fetch happens.
func HasBinaryExtension(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return binaryExtensionRe.MatchString(u.Path)
}

// SkippableLink reports whether an href should never be enqueued:
// non-HTTP schemes, bare fragments, and non-content paths.
func SkippableLink(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return true
	}
	lower := strings.ToLower(href)
	if strings.HasPrefix(lower, "mailto:") || strings.HasPrefix(lower, "javascript:") || strings.HasPrefix(lower, "tel:") || strings.HasPrefix(lower, "data:") {
		return true
	}
	return skipPathRe.MatchString(lower)
}

// DedupePreserveOrder returns items with duplicates removed,
// keeping first occurrences in order.
func DedupePreserveOrder(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		result = append(result, item)
	}
	return result
}
