package catalog

import (
	"image"
	_ "image/gif" // GIF decoder
	"image/jpeg"
	_ "image/png" // PNG decoder
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/nfnt/resize"
)

const (
	coverSize    = 500
	coverQuality = 90
)

// processCover resizes the image at src to fit 500x500 and writes it into
// folder. It returns the stored file name.
func processCover(src, folder, id string) (string, error) {
	f, err := os.Open(src)
	if err != nil {
		return "", errors.Wrap(err, "open cover")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", errors.Wrap(err, "decode cover")
	}
	resized := resize.Thumbnail(coverSize, coverSize, img, resize.Lanczos3)

	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", errors.Wrap(err, "create music folder")
	}
	name := "cover_" + id + ".jpg"
	out, err := os.Create(filepath.Join(folder, name))
	if err != nil {
		return "", errors.Wrap(err, "create cover")
	}
	if err := jpeg.Encode(out, resized, &jpeg.Options{Quality: coverQuality}); err != nil {
		out.Close()
		return "", errors.Wrap(err, "encode cover")
	}
	return name, errors.Wrap(out.Close(), "close cover")
}
