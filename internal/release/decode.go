package release

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// maxPayload caps how much of a release response is read.
const maxPayload = 4 << 20

//go:embed release.schema.json
var releaseSchema []byte

var (
	errEmptyPayload = errors.New("empty release payload")

	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

type rawRelease struct {
	Tag        string    `json:"tag_name"`
	Prerelease bool      `json:"prerelease"`
	Published  time.Time `json:"published_at"`
	HTMLURL    string    `json:"html_url"`
	Body       string    `json:"body"`
	Assets     []struct {
		Name string `json:"name"`
		URL  string `json:"browser_download_url"`
		Size int64  `json:"size"`
	} `json:"assets"`
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(releaseSchema))
		if err != nil {
			schemaErr = fmt.Errorf("parse release schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("release.schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("load release schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile("release.schema.json")
	})
	return schema, schemaErr
}

// Decode reads a GitHub style release payload, validates its shape and
// converts it into a Release.
func Decode(r io.Reader) (*Release, error) {
	if r == nil {
		return nil, errEmptyPayload
	}
	data, err := io.ReadAll(io.LimitReader(r, maxPayload))
	if err != nil {
		return nil, fmt.Errorf("read release: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptyPayload
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return nil, fmt.Errorf("invalid release payload: %w", err)
	}

	var raw rawRelease
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	rel := &Release{
		Tag:         raw.Tag,
		Prerelease:  raw.Prerelease,
		PublishedAt: raw.Published.UTC(),
		HTMLURL:     raw.HTMLURL,
		Body:        raw.Body,
	}
	if len(raw.Assets) > 0 {
		rel.Assets = make([]Asset, 0, len(raw.Assets))
		for _, a := range raw.Assets {
			if a.Name == "" || a.URL == "" {
				continue
			}
			rel.Assets = append(rel.Assets, Asset{Name: a.Name, URL: a.URL, Size: a.Size})
		}
	}
	return rel, nil
}
