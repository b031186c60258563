// Package config loads formcheck-cli settings with viper: defaults, an
// optional formcheck.{yaml,yml,json} file, FORMCHECK_* environment variables,
// then explicit flags.
package config
