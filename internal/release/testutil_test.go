package release

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

type stubTransport struct {
	res map[string]stubResponse
	err error
}

type stubResponse struct {
	status  int
	body    string
	readErr error // returned once body is exhausted
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func (s stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	r, ok := s.res[req.URL.String()]
	if !ok {
		r = stubResponse{status: http.StatusNotFound}
	}
	status := r.status
	if status == 0 {
		status = http.StatusOK
	}
	var body io.Reader = strings.NewReader(r.body)
	if r.readErr != nil {
		body = io.MultiReader(body, failingReader{r.readErr})
	}
	return &http.Response{
		StatusCode:    status,
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Body:          io.NopCloser(body),
		Header:        make(http.Header),
		Request:       req,
		ContentLength: int64(len(r.body)),
	}, nil
}

func newTestClient(status int, body string) Client {
	tr := stubTransport{res: map[string]stubResponse{
		"https://api.github.com/repos/alvarorichard/GoAnime/releases/latest": {status: status, body: body},
	}}
	cl, _ := NewClient(&http.Client{Transport: tr}, DefaultRepo)
	return cl
}
