// Package config loads pamctl's own configuration.
//
// Configuration lives in a YAML file named config.yaml searched in the
// working directory and $XDG_CONFIG_HOME/pamctl, with PAMCTL_* environment
// variables taking precedence. Only two keys matter: pam_dir (the PAM
// configuration directory) and backup_dir (the snapshot location). Both
// are optional; unset values fall back to privilege-based defaults from
// the paths package.
package config
