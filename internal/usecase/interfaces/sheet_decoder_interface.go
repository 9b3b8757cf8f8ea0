//go:generate mockgen -source=sheet_decoder_interface.go -destination=mocks/sheet_decoder_interface_mock.go -package=mock_interfaces

package interfaces

import (
	"context"
	"io"
)

// ISheetDecoder turns an uploaded file into the rows of its first sheet.
// A decoding error fails the whole upload; no partial grid is returned.
type ISheetDecoder interface {
	Decode(ctx context.Context, r io.Reader) ([][]string, error)
}
