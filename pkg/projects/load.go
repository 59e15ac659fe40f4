package projects

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

// Load errors.
var (
	ErrFetch       = errors.New("fetch project list")
	ErrInvalidList = errors.New("invalid project list")
)

const maxListBytes = 8 << 20

// Loader reads a project list from a file path or an http(s) URL.
type Loader struct {
	Client *http.Client
}

// Load reads and validates the project list at src with the default client.
func Load(ctx context.Context, src string) ([]Project, error) {
	return Loader{Client: http.DefaultClient}.Load(ctx, src)
}

// Load reads src, validates it against the project list schema and decodes it.
func (l Loader) Load(ctx context.Context, src string) ([]Project, error) {
	data, err := l.read(ctx, src)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse validates and decodes a project list document.
func Parse(data []byte) ([]Project, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidList, err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, verr := range result.Errors() {
			msgs = append(msgs, verr.String())
		}

		return nil, fmt.Errorf("%w: %s", ErrInvalidList, strings.Join(msgs, "; "))
	}

	var list []Project

	err = json.Unmarshal(data, &list)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidList, err)
	}

	return list, nil
}

func (l Loader) read(ctx context.Context, src string) ([]byte, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}

		return data, nil
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrFetch, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxListBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	return data, nil
}
