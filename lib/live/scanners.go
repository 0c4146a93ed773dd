package live

import (
	"github.com/jackc/pgtype"
	"github.com/pkg/errors"
)

// textArrayStrings unpacks a scanned text[]; NULL is an empty list
func textArrayStrings(arr pgtype.TextArray) ([]string, error) {
	if arr.Status != pgtype.Present {
		return nil, nil
	}
	out := []string{}
	if err := arr.AssignTo(&out); err != nil {
		return nil, errors.Wrap(err, "while unpacking text array")
	}
	return out, nil
}
