package remote

import (
	"io"
	"log"
	"net/http"
	"strings"
)

// CatalogProxy forwards catalog reads (/burgers, /drinks and their detail
// routes) to the remote catalog service. The catalog is consumed
// read-only; nothing is cached or rewritten beyond the path prefix.
type CatalogProxy struct {
	BaseURL string
	HTTP    HTTPClient
}

func NewCatalogProxy(baseURL string, client HTTPClient) *CatalogProxy {
	return &CatalogProxy{BaseURL: baseURL, HTTP: client}
}

func (p *CatalogProxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api")
	url := p.BaseURL + path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}
	log.Printf("[storefront] catalog proxy: %s %s -> %s", r.Method, r.URL.Path, url)

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, url, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := p.HTTP.Do(req)
	if err != nil {
		log.Printf("[storefront] catalog unreachable: %v", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("[storefront] failed to copy catalog response: %v", err)
	}
}
