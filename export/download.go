package export

import (
	"bytes"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/sukharik"
	"github.com/gogpu/sukharik/drawing"
)

// Media types of the exported formats.
const (
	MediaTypeSVG = "image/svg+xml"
	MediaTypePNG = "image/png"
)

// DownloadSVG writes doc to w as an SVG file attachment named filename.
//
// The document is serialized completely before any header is written, so
// an error leaves w untouched and the caller can still reply with an
// error status.
func DownloadSVG(w http.ResponseWriter, doc *drawing.Document, filename string) error {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, doc); err != nil {
		return err
	}
	return attach(w, &buf, MediaTypeSVG, Filename(filename, doc, ".svg"))
}

// DownloadPNG rasterizes doc and writes it to w as a PNG file attachment
// named filename. Like DownloadSVG, nothing is written on error.
func DownloadPNG(w http.ResponseWriter, doc *drawing.Document, filename string, opts ...Option) error {
	var buf bytes.Buffer
	if err := WritePNG(&buf, doc, opts...); err != nil {
		return err
	}
	return attach(w, &buf, MediaTypePNG, Filename(filename, doc, ".png"))
}

func attach(w http.ResponseWriter, buf *bytes.Buffer, mediaType, filename string) error {
	h := w.Header()
	h.Set("Content-Type", mediaType)
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.WriteHeader(http.StatusOK)
	n, err := buf.WriteTo(w)
	sukharik.Logger().Debug("export: download sent", "filename", filename, "type", mediaType, "bytes", n)
	return err
}

// Filename returns a safe download name with the given extension.
// Characters other than ASCII letters, digits, '-' and '_' become '-'.
// An empty name falls back to "drawing-" plus the first eight characters
// of the document ID.
func Filename(name string, doc *drawing.Document, ext string) string {
	name = strings.TrimSuffix(name, ext)
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, name)
	if name == "" {
		name = "drawing"
		if doc != nil && doc.ID != "" {
			id := doc.ID
			if len(id) > 8 {
				id = id[:8]
			}
			name += "-" + Filename(id, nil, "")
		}
	}
	return name + ext
}

// SaveSVG writes doc to an SVG file at path.
func SaveSVG(path string, doc *drawing.Document) error {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, doc); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes())
}

// SavePNG writes doc to a PNG file at path.
func SavePNG(path string, doc *drawing.Document, opts ...Option) error {
	var buf bytes.Buffer
	if err := WritePNG(&buf, doc, opts...); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(filepath.Clean(path), data, 0o644) //nolint:gosec // path is user-provided intentionally
}
