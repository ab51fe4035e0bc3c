package application

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/rejdeboer/dhcp-decoder/internal/configuration"
	"github.com/rejdeboer/dhcp-decoder/internal/layout"
	"github.com/rejdeboer/dhcp-decoder/pkg/decoder"
)

var ErrInputTooLarge = errors.New("input exceeds max buffer size")

type Application struct {
	settings configuration.DecoderSettings
	log      zerolog.Logger
}

func Build(settings configuration.Settings, log zerolog.Logger) *Application {
	return &Application{
		settings: settings.Decoder,
		log:      log,
	}
}

// Decode runs plan over input. The returned result holds the fields decoded
// before any error, so callers can report partial output.
func (app *Application) Decode(input []byte, plan layout.Plan) (layout.Result, error) {
	log := app.log.With().
		Str("run_id", uuid.NewString()).
		Str("layout", plan.Name).
		Logger()

	if limit := app.settings.MaxBufferSize; limit > 0 && len(input) > limit {
		log.Warn().Int("size", len(input)).Int("max_size", limit).Msg("input rejected")
		return layout.Result{Plan: plan}, errors.Wrapf(ErrInputTooLarge, "%d bytes, limit %d", len(input), limit)
	}

	var opts []decoder.Option
	if app.settings.StrictTermination {
		opts = append(opts, decoder.WithStrictTermination())
	}

	res := layout.Result{Plan: plan}
	if err := decoder.Unmarshal(input, &res, opts...); err != nil {
		log.Warn().Err(err).Int("fields", len(res.Fields)).Msg("decode failed")
		return res, err
	}

	for _, f := range res.Fields {
		log.Debug().Object("field", f).Msg("decoded field")
	}
	log.Debug().
		Int("fields", len(res.Fields)).
		Int("consumed", len(input)-len(res.Trailing)).
		Int("trailing", len(res.Trailing)).
		Msg("decode complete")

	return res, nil
}
