package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	dochttp "github.com/docatlas/docatlas/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("reads urlset entries", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%[1]s/docs/intro</loc></url>
  <url><loc>%[1]s/docs/install</loc></url>
</urlset>`, srv.URL)
		})

		svc := dochttp.NewSitemapService(srv.Client())

		urls, err := svc.DiscoverURLs(context.Background(), srv.URL+"/docs")
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/docs/intro", srv.URL + "/docs/install"}, urls)
	})

	t.Run("follows sitemap index files", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<sitemapindex><sitemap><loc>%s/sitemap-docs.xml</loc></sitemap></sitemapindex>`, srv.URL)
		})
		mux.HandleFunc("/sitemap-docs.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<urlset><url><loc>%s/docs/page</loc></url></urlset>`, srv.URL)
		})

		svc := dochttp.NewSitemapService(srv.Client())

		urls, err := svc.DiscoverURLs(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/docs/page"}, urls)
	})

	t.Run("missing sitemap yields empty slice", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(http.NotFound))
		defer srv.Close()

		svc := dochttp.NewSitemapService(srv.Client())

		urls, err := svc.DiscoverURLs(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Empty(t, urls)
		assert.NotNil(t, urls)
	})

	t.Run("malformed sitemap is treated as missing", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("this is not xml <<<"))
		}))
		defer srv.Close()

		svc := dochttp.NewSitemapService(srv.Client())

		urls, err := svc.DiscoverURLs(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Empty(t, urls)
	})
}
