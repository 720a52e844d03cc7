// Package config resolves the modname runtime configuration.
//
// Settings come from command-line flags and MODNAME_* environment variables,
// in that order of precedence, on top of built-in defaults. No configuration
// file is read and nothing is written back.
//
//	MODNAME_PROMPT="rename: " modname *.txt
//	MODNAME_LOG_FORMAT=json modname --verbose notes.md
//
// Call [Init] once at startup, then [Load] with the command's flag set once
// flags have been parsed:
//
//	config.Init()
//	cfg, err := config.Load(cmd.Flags())
//	if err != nil {
//	    return err
//	}
//
// Every loaded configuration is checked by [Validate]. Invalid values are
// reported as [*FieldError] values wrapping [ErrInvalidValue].
package config
