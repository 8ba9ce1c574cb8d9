// Package validation provides input validation for seqkit configuration and
// command-line input.
//
// Struct tag validation uses go-playground/validator; field names in error
// messages come from the mapstructure tag so they match the config file.
//
//	type ProductConfig struct {
//	    Format string `mapstructure:"format" validate:"omitempty,oneof=text json"`
//	}
//	err := validation.Validate(cfg)
//
// Programmatic validation collects errors:
//
//	v := validation.New()
//	v.OneOf("format", format, []string{"text", "json"})
//	err := v.Validate()
package validation
