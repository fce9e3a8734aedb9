package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/tapebf/logs"
	"github.com/reusee/tapebf/nets"
)

const StdinName = "-"

// Load reads a whole program from a file path, "-" for stdin, or an http(s) URL.
type Load func(ctx context.Context, location string) (*Source, error)

func (Module) Load(
	stdin Stdin,
	client nets.HTTPClient,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, location string) (*Source, error) {
		var content []byte
		var err error

		switch {

		case location == StdinName:
			content, err = io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			location = "<stdin>"

		case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
			content, err = fetch(ctx, client, location)
			if err != nil {
				return nil, err
			}

		default:
			content, err = os.ReadFile(location)
			if err != nil {
				return nil, fmt.Errorf("unable to load file `%s`: %w", location, err)
			}

		}

		logger.DebugContext(ctx, "source loaded",
			"location", location,
			"bytes", len(content),
		)
		return NewSource(location, content), nil
	}
}

func fetch(ctx context.Context, client nets.HTTPClient, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	return content, nil
}
