package grid

import (
	"os"

	"github.com/disintegration/imaging"

	"github.com/pixvec/pixvec/pkg/errors"
)

// Load decodes the raster image at path into a Grid. PNG, JPEG, GIF, TIFF
// and BMP inputs are supported via the imaging decoders. This is the input
// boundary: the engine itself never reads files.
func Load(path string) (*Grid, error) {
	img, err := imaging.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "no such file: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeDecodeFailed, err, "failed to decode %s", path)
	}
	return FromImage(img), nil
}
