package services

import (
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/immerseindia/backend/domain"
)

// ImageFetcher downloads remote image bytes. It backs both the pass-through
// download endpoint and the orientation classifier.
type ImageFetcher struct {
	client  *fasthttp.Client
	timeout time.Duration
	maxBody int
}

func NewImageFetcher(timeout time.Duration, maxBody int) *ImageFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if maxBody <= 0 {
		maxBody = 10 << 20
	}
	return &ImageFetcher{
		client: &fasthttp.Client{
			MaxResponseBodySize: maxBody,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
		},
		timeout: timeout,
		maxBody: maxBody,
	}
}

// Fetch retrieves the resource at url. Failures are classified as internal
// errors; they surface as notifications and never mutate application state.
func (f *ImageFetcher) Fetch(url string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := f.client.DoTimeout(req, resp, f.timeout); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "image fetch failed", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, domain.WrapError(domain.ErrCodeInternal,
			fmt.Sprintf("image fetch returned status %d", resp.StatusCode()), nil)
	}

	body := append([]byte(nil), resp.Body()...)
	return body, nil
}
