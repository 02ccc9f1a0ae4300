//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/rentscout/goquery"
	"github.com/fwojciec/rentscout/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Integration_ScriptRenderedListing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html><body>
<div id="app"></div>
<script>
document.getElementById('app').innerHTML =
  '<span id="titletextonly">Loft 1BR</span>' +
  '<div class="mapaddress">9 Pine St</div>' +
  '<div class="attrgroup"><span>1BR / 1Ba</span></div>' +
  '<section id="postingbody">Dogs ok.</section>';
</script>
</body></html>`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(ctx, srv.URL)
	require.NoError(t, err)

	set := goquery.NewRegistryFromSets(goquery.DefaultSelectorSets()).GetForHTML(html)
	fragments, err := goquery.ExtractFragments(html, set)
	require.NoError(t, err)

	assert.Equal(t, "Loft 1BR", fragments.Title)
	assert.Equal(t, "9 Pine St", fragments.MapAddress)
	assert.Equal(t, "1BR / 1Ba", fragments.Attributes)
	assert.Equal(t, "Dogs ok.", fragments.Body)
}
