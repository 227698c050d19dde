package mso

import (
	"github.com/dekarrin/msologic/internal/mso/msoerr"
)

// ErrInputShape reports that an encoded input's Go type did not match the
// shape Mode expects (EncodedWord for ModeWord, *EncodedTree for ModeTree),
// per spec §4.8's fixed encoded-input shapes.
func ErrInputShape(mode Mode) error {
	if mode == ModeTree {
		return msoerr.New(msoerr.ErrArityMismatch, "tree mode requires a *EncodedTree input")
	}
	return msoerr.New(msoerr.ErrArityMismatch, "word mode requires an EncodedWord input")
}
