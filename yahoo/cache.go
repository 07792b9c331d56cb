package yahoo

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"stockexplorer"
)

// diskCache implements a simple disk cache for HTTP responses. Entries are
// keyed per day, so quotes and history fetched twice in a session (or twice
// in a day) do not re-hit Yahoo.
type diskCache struct {
	base http.RoundTripper
}

// RoundTrip implements the http.RoundTripper interface. It checks for a cached
// response on disk first. If a fresh cached response is not found, it proceeds
// with the actual HTTP request and caches the new response if it's successful.
func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := cacheKey(req.Method, req.URL.String(), time.Now().UTC().Format(stockexplorer.DateFormat))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// cacheKey builds the per-day cache file name for a request.
func cacheKey(method, url, day string) string {
	return fmt.Sprintf("sdx-%x", sha1.Sum([]byte(day+" "+method+" "+url)))
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(os.TempDir(), key), content, 0644)
}

// newHTTPClient returns the http.Client used for all Yahoo requests, with the
// daily disk cache unless disabled by the configuration.
func newHTTPClient(cfg stockexplorer.Config) *http.Client {
	client := &http.Client{Timeout: cfg.Timeout()}
	if !cfg.DisableCache {
		client.Transport = &diskCache{base: http.DefaultTransport}
	}
	return client
}
