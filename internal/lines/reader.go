package lines

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Raw is a non-empty input line and where it came from.
type Raw struct {
	Number int
	Text   string
}

// ReadFile reads the non-empty lines of path.
func ReadFile(ctx context.Context, path string) ([]Raw, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	out, err := Read(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// Read decodes r as UTF-8, honouring a UTF-8 or UTF-16 byte order mark, and
// returns every line that is not exactly empty. Whitespace-only lines are kept.
// Lines end at "\n", "\r\n" or a lone "\r", and may be of any length.
func Read(ctx context.Context, r io.Reader) ([]Raw, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	br := bufio.NewReader(transform.NewReader(r, decoder))

	var out []Raw
	number := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		chunk, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if chunk == "" && err == io.EOF {
			return out, nil
		}
		chunk = strings.TrimSuffix(chunk, "\n")
		chunk = strings.TrimSuffix(chunk, "\r")
		for _, text := range strings.Split(chunk, "\r") {
			number++
			if text != "" {
				out = append(out, Raw{Number: number, Text: text})
			}
		}
		if err == io.EOF {
			return out, nil
		}
	}
}
