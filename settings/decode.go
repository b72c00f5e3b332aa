package settings

import (
	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
)

// Decode populates a typed configuration struct from the merged snapshot.
// Fields are matched by `mapstructure` tags, falling back to case-insensitive
// field names. This is the one place runtime-shaped settings cross into
// application types; everything downstream of it works with the struct.
func (s *Settings) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Wrap(err, "building settings decoder")
	}
	if err := dec.Decode(s.merged); err != nil {
		return errors.Wrap(err, "decoding settings")
	}
	return nil
}
