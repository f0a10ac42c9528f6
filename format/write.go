package format

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"

	"github.com/michaeleberhardt310/mllwriter"
)

// WriteFile writes the accumulated content of w to filename. An empty
// encoding name, or any spelling of UTF-8, writes the content as-is; other
// encoding names (e.g. "ISO-8859-1", "windows-1252") are resolved through
// the WHATWG encoding index and the content is transformed on the way out.
func WriteFile(filename string, w mllwriter.Writer, encoding string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing file: %w", cerr)
		}
	}()

	if encoding == "" || strings.EqualFold(encoding, "utf-8") {
		_, err = w.WriteTo(f)
		return err
	}

	enc, _ := charset.Lookup(encoding)
	if enc == nil {
		return fmt.Errorf("format: unsupported encoding %q", encoding)
	}
	tw := transform.NewWriter(f, enc.NewEncoder())
	if _, err = w.WriteTo(tw); err != nil {
		return fmt.Errorf("encoding content: %w", err)
	}
	if err = tw.Close(); err != nil {
		return fmt.Errorf("flushing encoder: %w", err)
	}
	return nil
}
