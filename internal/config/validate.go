package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/thoreinstein/modname/internal/errors"
)

var (
	// ErrInvalidValue indicates a configuration value failed validation.
	ErrInvalidValue = errors.New("invalid value")

	// ErrQuietVerbose indicates quiet and verbose were both requested.
	ErrQuietVerbose = errors.New("quiet and verbose are mutually exclusive")

	// ErrSummaryFormatRequired indicates a summary file without a format.
	ErrSummaryFormatRequired = errors.New("a summary file needs a summary format")
)

// Rules reported by the struct-level checks.
const (
	ruleExcludedWithQuiet   = "excluded_with_quiet"
	ruleRequiredWithSumFile = "required_with_summary_file"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report configuration keys rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		cfg := sl.Current().Interface().(Config)
		if cfg.Quiet && cfg.Verbose > 0 {
			sl.ReportError(cfg.Verbose, "verbose", "Verbose", ruleExcludedWithQuiet, "")
		}
		if cfg.SummaryFile != "" && cfg.Summary == "" {
			sl.ReportError(cfg.Summary, "summary", "Summary", ruleRequiredWithSumFile, "")
		}
	}, Config{})

	return v
}

// Validate checks a Config for validity. All failures are joined into the
// returned error; each one is a *FieldError.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.AssertionFailedf("config is nil")
	}

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "running validation")
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		fieldErr := &FieldError{
			Key:   fe.Field(),
			Value: fmt.Sprint(fe.Value()),
			Rule:  fe.Tag(),
			Err:   ErrInvalidValue,
		}
		switch fe.Tag() {
		case ruleExcludedWithQuiet:
			fieldErr.Err = ErrQuietVerbose
		case ruleRequiredWithSumFile:
			fieldErr.Err = ErrSummaryFormatRequired
		}
		errs = append(errs, fieldErr)
	}
	return errors.Join(errs...)
}

// FieldError describes one configuration key that failed validation.
type FieldError struct {
	Key   string
	Value string
	Rule  string
	Err   error
}

func (e *FieldError) Error() string {
	switch e.Rule {
	case "", "oneof", ruleExcludedWithQuiet, ruleRequiredWithSumFile:
		return fmt.Sprintf("%s: %s: %q", e.Key, e.Err, e.Value)
	default:
		return fmt.Sprintf("%s: %s: %q fails %q", e.Key, e.Err, e.Value, e.Rule)
	}
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
